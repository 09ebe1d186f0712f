package board

import "testing"

func TestCheckmateDetection(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		mate bool
	}{
		{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", true},
		{"king escapes by capture", "6Rk/8/8/8/8/8/8/K7 b - - 0 1", false},
		{"starting position", StartFEN, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := ParseFEN(c.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", c.fen, err)
			}
			if got := pos.IsCheckmate(); got != c.mate {
				t.Errorf("IsCheckmate() = %v, want %v (legal moves: %d)", got, c.mate, pos.GenerateLegalMoves().Len())
			}
		})
	}
}

func TestStalemateDetection(t *testing.T) {
	// Black king boxed into a8 with no legal moves and not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.InCheck() {
		t.Fatal("position should not be check")
	}
	if !pos.IsStalemate() {
		t.Error("expected stalemate")
	}
	if pos.IsCheckmate() {
		t.Error("stalemate is not checkmate")
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"king vs king", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"king+bishop vs king", "8/8/8/4k3/8/8/8/3BK3 w - - 0 1", true},
		{"king+knight vs king+knight", "8/3n4/8/4k3/8/8/8/3NK3 w - - 0 1", false},
		{"king+rook vs king", "8/8/8/4k3/8/8/8/3RK3 w - - 0 1", false},
		{"starting position", StartFEN, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := ParseFEN(c.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", c.fen, err)
			}
			if got := pos.IsInsufficientMaterial(); got != c.want {
				t.Errorf("IsInsufficientMaterial() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRepeatedIn(t *testing.T) {
	pos := NewPosition()
	history := []uint64{pos.Hash, pos.Hash, 0xdeadbeef}
	if got := pos.RepeatedIn(history); got != 2 {
		t.Errorf("RepeatedIn = %d, want 2", got)
	}
}
