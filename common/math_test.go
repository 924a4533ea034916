package common

import "testing"

func TestRoundPixel(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{14.5, 15},
		{-0.5, 0},
		{-0.51, -1},
	}
	for _, c := range cases {
		if got := RoundPixel(c.in); got != c.want {
			t.Fatalf("RoundPixel(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp midpoint = %v, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Fatalf("Lerp start = %v, want 2", got)
	}
}
