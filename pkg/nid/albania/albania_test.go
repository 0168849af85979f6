package albania

import (
	"strings"
	"testing"

	"verid/pkg/nid"
)

const validNID = "J00101999W"

// makeNID builds a valid NID from 9 content characters by appending the
// computed checksum character.
func makeNID(t *testing.T, partial string) string {
	t.Helper()
	if len(partial) != 9 {
		t.Fatalf("partial must be 9 characters, got %d", len(partial))
	}
	total := 0
	for i := 0; i < 9; i++ {
		weight := i
		if weight == 0 {
			weight = 1
		}
		c := partial[i]
		var value int
		if c >= '0' && c <= '9' {
			value = int(c - '0')
		} else {
			value = strings.IndexByte(checksumChars, c)
			if value < 0 {
				t.Fatalf("character %q not in checksum alphabet", c)
			}
		}
		total += weight * value
	}
	return partial + string(checksumChars[total%23])
}

func TestDecodeValid(t *testing.T) {
	info, err := Decode(validNID)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if info.Birthday != (nid.Date{Year: 1990, Month: 1, Day: 1}) {
		t.Fatalf("unexpected birthday %v", info.Birthday)
	}
	if info.Sex != nid.Male {
		t.Fatalf("expected Male, got %v", info.Sex)
	}
	if !info.National {
		t.Fatal("expected national")
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	upper, err := Decode(validNID)
	if err != nil {
		t.Fatalf("decode upper: %v", err)
	}
	lower, err := Decode(strings.ToLower(validNID))
	if err != nil {
		t.Fatalf("decode lower: %v", err)
	}
	mixed, err := Decode("j00101999W")
	if err != nil {
		t.Fatalf("decode mixed: %v", err)
	}
	if upper != lower || upper != mixed {
		t.Fatal("case variants decoded differently")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid(validNID) {
		t.Fatal("expected valid")
	}
	for _, code := range []string{"", "invalid", "ABCDEFGHIJK", "0000000000", "ZZZZZZZZZZ"} {
		if IsValid(code) {
			t.Fatalf("expected %q to be invalid", code)
		}
	}
}

func TestIsValidBadChecksum(t *testing.T) {
	bad := validNID[:9] + "Z"
	if IsValid(bad) {
		t.Fatal("expected invalid checksum character to be rejected")
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []struct {
		name, code string
	}{
		{"too short", "J00101"},
		{"too long", "J0010199945X"},
		{"invalid decade char", "Z001011230"},
		{"non-digit middle", "J0A101123R"},
		{"invalid month code", makeNID(t, "J01301001")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.code)
			kind, ok := nid.KindOf(err)
			if !ok || kind != nid.KindFormat {
				t.Fatalf("expected format error, got %v", err)
			}
		})
	}
}

func TestChecksumMismatch(t *testing.T) {
	// Valid content with a wrong (but in-alphabet) check character.
	good := makeNID(t, "J00101999")
	badCheck := byte('A')
	if good[9] == badCheck {
		badCheck = 'B'
	}
	_, err := Decode(good[:9] + string(badCheck))
	kind, ok := nid.KindOf(err)
	if !ok || kind != nid.KindChecksum {
		t.Fatalf("expected checksum error, got %v", err)
	}
}

// A wrong-length input that would also fail the checksum must report the
// format error, never the checksum error.
func TestFormatReportedBeforeChecksum(t *testing.T) {
	_, err := Decode("J00101999")
	kind, ok := nid.KindOf(err)
	if !ok || kind != nid.KindFormat {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestInvalidDates(t *testing.T) {
	cases := []struct {
		name, partial string
	}{
		{"feb 30", "J00230123"},
		{"day zero", "J00100001"},
		{"feb 29 non-leap", "J90229001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(makeNID(t, tc.partial))
			kind, ok := nid.KindOf(err)
			if !ok || kind != nid.KindInvalidDate {
				t.Fatalf("expected invalid date error, got %v", err)
			}
		})
	}
}

func TestLeapYearFeb29(t *testing.T) {
	info, err := Decode(makeNID(t, "K00229001"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if info.Birthday != (nid.Date{Year: 2000, Month: 2, Day: 29}) {
		t.Fatalf("unexpected birthday %v", info.Birthday)
	}
}

func TestMonthCodeRanges(t *testing.T) {
	cases := []struct {
		name     string
		partial  string
		sex      nid.Sex
		national bool
		month    int
		day      int
	}{
		{"male national", "J00101001", nid.Male, true, 1, 1},
		{"male foreigner", "J03101001", nid.Male, false, 1, 1},
		{"female national", "J05115001", nid.Female, true, 1, 15},
		{"female foreigner", "J08101001", nid.Female, false, 1, 1},
		{"december national", "J01231001", nid.Male, true, 12, 31},
		{"female december", "J06231001", nid.Female, true, 12, 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Decode(makeNID(t, tc.partial))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if info.Sex != tc.sex || info.National != tc.national {
				t.Fatalf("unexpected sex/national: %v %v", info.Sex, info.National)
			}
			if info.Birthday.Month != tc.month || info.Birthday.Day != tc.day {
				t.Fatalf("unexpected date %v", info.Birthday)
			}
		})
	}
}

func TestDecadeRange(t *testing.T) {
	// '0' maps to the 1800s, 'T' to the 2090s.
	info, err := Decode(makeNID(t, "050101001"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if info.Birthday.Year != 1805 {
		t.Fatalf("expected year 1805, got %d", info.Birthday.Year)
	}

	info, err = Decode(makeNID(t, "T95101001"))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if info.Birthday.Year != 2099 {
		t.Fatalf("expected year 2099, got %d", info.Birthday.Year)
	}
}

// Validate and Decode must agree on outcome and error kind for every input.
func TestValidateAgreesWithDecode(t *testing.T) {
	inputs := []string{
		validNID,
		strings.ToLower(validNID),
		"",
		"invalid",
		"J00101",
		"Z001011230",
		"J0A101123R",
		makeNID(t, "J00230123"),
		makeNID(t, "J01301001"),
		validNID[:9] + "A",
	}
	for _, code := range inputs {
		_, decodeErr := Decode(code)
		validateErr := Validate(code)
		if (decodeErr == nil) != (validateErr == nil) {
			t.Fatalf("outcome disagreement for %q: %v vs %v", code, decodeErr, validateErr)
		}
		if decodeErr != nil {
			dk, _ := nid.KindOf(decodeErr)
			vk, _ := nid.KindOf(validateErr)
			if dk != vk {
				t.Fatalf("kind disagreement for %q: %v vs %v", code, dk, vk)
			}
		}
		if IsValid(code) != (decodeErr == nil) {
			t.Fatalf("IsValid disagreement for %q", code)
		}
	}
}

// Repeated decoding of the same input must always yield the same result.
func TestDecodeIdempotent(t *testing.T) {
	first, err1 := Decode(validNID)
	second, err2 := Decode(validNID)
	if err1 != nil || err2 != nil {
		t.Fatalf("decode failed: %v %v", err1, err2)
	}
	if first != second {
		t.Fatalf("results differ: %+v != %+v", first, second)
	}
}
