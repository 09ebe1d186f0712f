package board

import "testing"

func TestSquareDistance(t *testing.T) {
	cases := []struct {
		a, b Square
		want int
	}{
		{A1, A1, 0},
		{A1, H8, 7},
		{E4, E5, 1},
		{A1, B3, 2},
	}
	for _, c := range cases {
		if got := c.a.Distance(c.b); got != c.want {
			t.Errorf("%s.Distance(%s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSquareMirror(t *testing.T) {
	if A1.Mirror() != A8 {
		t.Errorf("A1.Mirror() = %s, want a8", A1.Mirror())
	}
	if E4.Mirror() != E5 {
		t.Errorf("E4.Mirror() = %s, want e5", E4.Mirror())
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		parsed, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%s): %v", sq, err)
		}
		if parsed != sq {
			t.Errorf("ParseSquare(%s) = %d, want %d", sq, parsed, sq)
		}
	}
}
