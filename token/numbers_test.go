package token

import "testing"

func TestNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"x", 0},
		{"-", 0},
		{"-x", 0},
		{".5", 0},
		{"+1", 0},
		{"0", 1},
		{"7", 1},
		{"42", 2},
		{"-0", 2},
		{"-42", 3},
		{"01", 1},
		{"00", 1},
		{"0x", 1},
		{"1.", 1},
		{"1.5", 3},
		{"0.5", 3},
		{"-12.34", 6},
		{"1e", 1},
		{"1e+", 1},
		{"1e5", 3},
		{"1e+5", 4},
		{"1e-5", 4},
		{"1E5", 3},
		{"1e5e", 3},
		{"1.5e10", 6},
		{"-12.34e-56", 10},
		{"1,2", 1},
		{"3}", 1},
		{"42 ", 2},
	}
	for _, tt := range tests {
		if got := Number(tt.in); got != tt.want {
			t.Errorf("Number(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
