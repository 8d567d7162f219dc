package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseGroupID checks that parsing never panics and that accepted ids
// round-trip through String.
func FuzzParseGroupID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE groups;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseGroupID(input)
		if err == nil {
			if id.IsNil() {
				t.Error("nil group id was accepted")
			}
			roundTrip, err2 := ParseGroupID(id.String())
			if err2 != nil {
				t.Errorf("valid id failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed id value")
			}
		}
		if !utf8.ValidString(input) && err == nil {
			t.Error("non-UTF8 input was accepted")
		}
	})
}

func FuzzParseMovieID(f *testing.F) {
	f.Add("1")
	f.Add("-1")
	f.Add("9223372036854775807")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		m, err := ParseMovieID(input)
		if err == nil && m <= 0 {
			t.Errorf("non-positive movie id accepted: %d", m)
		}
	})
}
