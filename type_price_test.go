package stockbroker

import "testing"

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		wantErr bool
		want    string // canonical rendering
	}{
		{name: "two decimals", in: "150.00", want: "150.00"},
		{name: "one decimal", in: "1000.0", want: "1000.00"},
		{name: "no decimals", in: "100", want: "100.00"},
		{name: "three decimals", in: "999.999", want: "1000.00"}, // rounds only for display
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePrice(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePrice(%q) = %v, want error", tc.in, p)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrice(%q) failed: %v", tc.in, err)
			}
			if got := p.String(); got != tc.want {
				t.Errorf("ParsePrice(%q).String() = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPrice_HasCentPrecision(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"150.00", true},
		{"1000.0", true},
		{"100", true},
		{"0.50", true},
		{"999.999", false},
		{"0.501", false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := mustPrice(t, tc.in).HasCentPrecision(); got != tc.want {
				t.Errorf("HasCentPrecision(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPrice_Equal_IsExact(t *testing.T) {
	// "1000.0" and "1000.00" quote the same price and must resolve to the
	// same book key.
	a := mustPrice(t, "1000.0")
	b := mustPrice(t, "1000.00")
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal", a, b)
	}
	if a.String() != b.String() {
		t.Errorf("canonical forms differ: %q vs %q", a.String(), b.String())
	}
}
