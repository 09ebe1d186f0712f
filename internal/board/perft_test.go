package board

import "testing"

// perft counts leaf nodes at depth by full legal-move enumeration, the
// standard cross-check for a move generator: wrong counts against known
// values mean a missing, extra, or mis-legalized move somewhere upstream.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

// Expected counts are the canonical values from the Chess Programming Wiki's
// perft results page, independent of any one engine's implementation.
func TestPerft(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		byDepth []int64 // index 0 == depth 1
	}{
		{"starting position", StartFEN, []int64{20, 400, 8902, 197281}},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", []int64{48, 2039, 97862}},
		{"position 3 (en passant heavy)", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -", []int64{14, 191, 2812, 43238}},
		{"position 4 (castling + promotion)", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []int64{6, 264, 9467}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := ParseFEN(c.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", c.fen, err)
			}
			for i, want := range c.byDepth {
				depth := i + 1
				if got := perft(pos, depth); got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

// TestPerftEnPassantPin covers the horizontal-pin edge case specifically: a
// black pawn capturing en passant would otherwise expose its own king to a
// rook on the same rank, a legality check that pure "does the destination
// square attack the king" reasoning misses.
// FEN: 8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1 — black pawn e4 could take d3 en
// passant, but doing so removes both the d4 pawn and the e4 pawn from the
// fourth rank, opening Rh4 onto Ka4.
func TestPerftEnPassantPin(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	moves := pos.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		if m := moves.Get(i); m.IsEnPassant() {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	byDepth := []int64{6, 94}
	for i, want := range byDepth {
		depth := i + 1
		if got := perft(pos, depth); got != want {
			t.Errorf("perft(%d) = %d, want %d", depth, got, want)
		}
	}
}
