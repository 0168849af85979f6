// Package albania validates and decodes Albanian National ID (NID) numbers.
//
// Albanian NIDs are 10-character alphanumeric strings that encode date of
// birth, sex, national status, and a checksum:
//
//	[decade][year_digit][month_code (2)][day (2)][serial (3)][checksum]
//
// The decade character maps '0'-'9' to 1800-1890 and 'A'-'T' to 1900-2090.
// The two-digit month code carries both the calendar month and the
// sex/national status: 01-12 male national, 31-42 male foreigner, 51-62
// female national, 81-92 female foreigner. The final character is a weighted
// mod-23 checksum over the first nine characters.
//
// Input is treated case-insensitively. Checks run in a fixed order - format,
// checksum, calendar date - so any input fails with the earliest applicable
// kind.
package albania

import (
	"fmt"
	"strings"

	"verid/pkg/nid"
	"verid/pkg/nid/internal/date"
)

// decadeChars maps the leading character to a base year: index*10 + 1800.
const decadeChars = "0123456789ABCDEFGHIJKLMNOPQRST"

// checksumChars is the alphabet used for checksum computation and the
// trailing check character.
const checksumChars = "WABCDEFGHIJKLMNOPQRSTUV"

// Info is the decoded content of a valid Albanian NID. An Info is only ever
// constructed after the code has passed length, alphabet, checksum, and
// calendar checks.
type Info struct {
	// Birthday is the date of birth.
	Birthday nid.Date `json:"birthday"`
	// Sex is the holder's biological sex.
	Sex nid.Sex `json:"sex"`
	// National is true for Albanian nationals, false for foreign residents.
	National bool `json:"is_national"`
}

// decodeMonthCode resolves a two-digit month code into its range offset, sex,
// and national status.
func decodeMonthCode(code int) (offset int, sex nid.Sex, national, ok bool) {
	switch {
	case code >= 1 && code <= 12:
		return 0, nid.Male, true, true
	case code >= 31 && code <= 42:
		return 30, nid.Male, false, true
	case code >= 51 && code <= 62:
		return 50, nid.Female, true, true
	case code >= 81 && code <= 92:
		return 80, nid.Female, false, true
	default:
		return 0, 0, false, false
	}
}

func verifyChecksum(b []byte) error {
	check := b[9]
	if strings.IndexByte(checksumChars, check) < 0 {
		return nid.NewFormatError("invalid checksum character")
	}

	total := 0
	for i, c := range b[:9] {
		// Position 0 carries weight 1, not 0, so the decade character
		// still contributes to the sum.
		weight := i
		if weight == 0 {
			weight = 1
		}
		var value int
		if c >= '0' && c <= '9' {
			value = int(c - '0')
		} else {
			value = strings.IndexByte(checksumChars, c)
			if value < 0 {
				return nid.NewFormatError("invalid checksum character")
			}
		}
		total += weight * value
	}

	if checksumChars[total%23] != check {
		return nid.NewChecksumError()
	}
	return nil
}

// Decode parses an Albanian NID string into its constituent parts.
//
// It returns a *nid.Error of kind format, checksum, or invalid_date when the
// input is rejected; the kind reflects the earliest failing check.
func Decode(code string) (Info, error) {
	if len(code) != 10 {
		return Info{}, nid.NewFormatError("NID must be exactly 10 characters")
	}
	b := []byte(code)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}

	decadeIndex := strings.IndexByte(decadeChars, b[0])
	if decadeIndex < 0 {
		return Info{}, nid.NewFormatError("first character out of range")
	}

	for _, c := range b[1:9] {
		if c < '0' || c > '9' {
			return Info{}, nid.NewFormatError("characters 2-9 must be ASCII digits")
		}
	}

	if err := verifyChecksum(b); err != nil {
		return Info{}, err
	}

	year := 1800 + decadeIndex*10 + int(b[1]-'0')
	monthCode := int(b[2]-'0')*10 + int(b[3]-'0')

	offset, sex, national, ok := decodeMonthCode(monthCode)
	if !ok {
		return Info{}, nid.NewFormatError(fmt.Sprintf("invalid month code: %d", monthCode))
	}

	month := monthCode - offset
	day := int(b[4]-'0')*10 + int(b[5]-'0')

	if !date.Valid(year, month, day) {
		if month < 1 || month > 12 {
			return Info{}, nid.NewInvalidDateError(fmt.Sprintf("month %d out of range", month))
		}
		return Info{}, nid.NewInvalidDateError(
			fmt.Sprintf("day %d is out of range for %04d-%02d", day, year, month))
	}

	return Info{
		Birthday: nid.Date{Year: year, Month: month, Day: day},
		Sex:      sex,
		National: national,
	}, nil
}

// Validate runs the same gate as Decode but discards the decoded fields.
// For every input it succeeds exactly when Decode succeeds and fails with the
// same error kind.
func Validate(code string) error {
	_, err := Decode(code)
	return err
}

// IsValid reports whether code is a valid Albanian NID. All failure modes
// collapse to false.
func IsValid(code string) bool {
	_, err := Decode(code)
	return err == nil
}
