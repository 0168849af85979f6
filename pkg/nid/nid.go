// Package nid holds the value types shared by the per-country national ID
// decoders. Everything here is a pure value: no I/O, no clock, no state.
package nid

import (
	"errors"
	"fmt"
)

// Sex is the biological sex encoded in a national ID.
type Sex int

const (
	Male Sex = iota
	Female
)

// String returns the single-letter form used in registry documents.
func (s Sex) String() string {
	if s == Female {
		return "F"
	}
	return "M"
}

// MarshalJSON encodes the sex as its single-letter form.
func (s Sex) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts the single-letter form produced by MarshalJSON.
func (s *Sex) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"M"`:
		*s = Male
	case `"F"`:
		*s = Female
	default:
		return fmt.Errorf("invalid sex value %s", data)
	}
	return nil
}

// Date is a calendar date. Decoders only construct a Date after verifying it
// is a legal Gregorian date, so a Date taken from a decode result is always
// valid.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// String formats the date in ISO 8601 calendar form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ErrorKind discriminates the failure taxonomy shared by all decoders.
// Every rejection is exactly one of these three kinds.
type ErrorKind string

const (
	// KindFormat means the input length or character class is invalid for
	// the scheme. Raised before any semantic interpretation.
	KindFormat ErrorKind = "format"

	// KindChecksum means the input is well formed but the embedded check
	// character does not match the computed value.
	KindChecksum ErrorKind = "checksum"

	// KindInvalidDate means the input passed format and checksum checks but
	// encodes a calendar date that does not exist.
	KindInvalidDate ErrorKind = "invalid_date"
)

// Error is the typed rejection returned by decoders. Kind is always set;
// Detail names the offending field or position.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindChecksum:
		return "checksum validation failed"
	case KindInvalidDate:
		return "invalid date: " + e.Detail
	default:
		return "format error: " + e.Detail
	}
}

// NewFormatError builds a format-kind rejection.
func NewFormatError(detail string) *Error {
	return &Error{Kind: KindFormat, Detail: detail}
}

// NewChecksumError builds a checksum-kind rejection.
func NewChecksumError() *Error {
	return &Error{Kind: KindChecksum}
}

// NewInvalidDateError builds an invalid-date rejection.
func NewInvalidDateError(detail string) *Error {
	return &Error{Kind: KindInvalidDate, Detail: detail}
}

// KindOf extracts the error kind from a decoder error. The second return is
// false when err is nil or not a decoder error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
