package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{"national number", "(415) 555-2671", "US", "+14155552671"},
		{"already e164", "+14155552671", "US", "+14155552671"},
		{"foreign e164 keeps country", "+31612345678", "US", "+31612345678"},
		{"unparseable returns trimmed", "  not-a-phone  ", "US", "not-a-phone"},
		{"empty stays empty", "   ", "US", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeE164(tc.input, tc.region); got != tc.want {
				t.Fatalf("NormalizeE164(%q, %q) = %q, want %q", tc.input, tc.region, got, tc.want)
			}
		})
	}
}
