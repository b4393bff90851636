package money

import "testing"

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{1.004, 1.0},
		{0, 0},
		{-2.675, -2.68},
		{65179, 65179},
	}
	for _, tc := range cases {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatTotal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{65179, "$65,179.00"},
		{0, "$0.00"},
		{1234567.891, "$1,234,567.89"},
		{999.5, "$999.50"},
		{-1500, "-$1,500.00"},
	}
	for _, tc := range cases {
		if got := FormatTotal(tc.in); got != tc.want {
			t.Errorf("FormatTotal(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1500, "$1,500"},
		{1500.25, "$1,500.25"},
		{0, "$0"},
		{99.10, "$99.10"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
