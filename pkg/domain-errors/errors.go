// Package domainerrors defines the error codes exposed at service
// boundaries. Services and handlers return these so transports can translate
// them into wire responses without losing which failure occurred.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code is a machine-readable error discriminant. Codes are stable API
// surface; renaming one is a breaking change.
type Code string

const (
	// CodeBadRequest covers malformed request envelopes (bad JSON, missing
	// fields). Distinct from the NID failure taxonomy below.
	CodeBadRequest Code = "bad_request"

	// The three NID rejection kinds, carried through unchanged from the
	// decoder core.
	CodeFormatError   Code = "format_error"
	CodeChecksumError Code = "checksum_error"
	CodeInvalidDate   Code = "invalid_date"

	CodeRateLimited Code = "rate_limited"
	CodeInternal    Code = "internal_error"
)

// Error pairs a code with a human-readable description.
type Error struct {
	Code        Code
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

// New builds a domain error with the given code and description.
func New(code Code, description string) error {
	return &Error{Code: code, Description: description}
}

// CodeOf extracts the code from an error, defaulting to CodeInternal for
// anything that is not a domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// DescriptionOf extracts the description from a domain error, or "" when the
// error is not a domain error.
func DescriptionOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Description
	}
	return ""
}

// ToHTTPStatus maps a code to its HTTP status. The three NID rejection codes
// all map to 422: the envelope was readable but the code inside it is not a
// valid national ID.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeFormatError, CodeChecksumError, CodeInvalidDate:
		return http.StatusUnprocessableEntity
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
