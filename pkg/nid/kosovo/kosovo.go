// Package kosovo validates Kosovo personal numbers.
//
// Kosovo personal numbers are 10-digit strings assigned by the Civil
// Registration Agency. The first 9 digits are an opaque payload and the 10th
// is a check digit computed with the weights [4 3 2 7 6 5 4 3 2]:
//
//	check = 11 - (sum mod 11)
//	check 10 or 11 -> 0
//
// Numbers starting with '9' belong to a reserved range and bypass check
// digit validation entirely; they are accepted on format alone.
package kosovo

import "verid/pkg/nid"

var weights = [9]int{4, 3, 2, 7, 6, 5, 4, 3, 2}

// Validate checks a Kosovo personal number, returning a *nid.Error of kind
// format or checksum when the input is rejected.
func Validate(code string) error {
	if len(code) != 10 {
		return nid.NewFormatError("personal number must be exactly 10 digits")
	}
	for i := 0; i < 10; i++ {
		if code[i] < '0' || code[i] > '9' {
			return nid.NewFormatError("all characters must be ASCII digits")
		}
	}

	// Reserved numbering range: no check digit to verify.
	if code[0] == '9' {
		return nil
	}

	sum := 0
	for i, w := range weights {
		sum += int(code[i]-'0') * w
	}

	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}

	if check != int(code[9]-'0') {
		return nid.NewChecksumError()
	}
	return nil
}

// IsValid reports whether code is a valid Kosovo personal number. All
// failure modes collapse to false.
func IsValid(code string) bool {
	return Validate(code) == nil
}
