package kosovo

import (
	"testing"

	"verid/pkg/nid"
)

// FuzzValidate checks that arbitrary input never panics and that Validate
// and IsValid agree on every outcome.
func FuzzValidate(f *testing.F) {
	f.Add("1234567892")
	f.Add("9000000001")
	f.Add("1234567890")
	f.Add("111111110")
	f.Add("")
	f.Add("12345678901")

	f.Fuzz(func(t *testing.T, number string) {
		err := Validate(number)
		if (err == nil) != IsValid(number) {
			t.Errorf("Validate and IsValid disagree on %q", number)
		}
		if err != nil {
			if _, ok := nid.KindOf(err); !ok {
				t.Errorf("Validate(%q) returned a non-taxonomy error: %v", number, err)
			}
		}
	})
}
