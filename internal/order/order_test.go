package order

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestKillerRingInvariant(t *testing.T) {
	o := New()
	moves := []board.Move{
		board.NewMove(board.E2, board.E4),
		board.NewMove(board.D2, board.D4),
		board.NewMove(board.G1, board.F3),
		board.NewMove(board.B1, board.C3),
		board.NewMove(board.A2, board.A4),
	}

	for _, m := range moves {
		o.RecordCutoff(3, m)
	}

	if o.killers[3][0] != moves[len(moves)-1] {
		t.Fatalf("slot 0 should hold the last-inserted move")
	}

	seen := map[board.Move]bool{}
	for _, k := range o.killers[3] {
		seen[k] = true
	}
	if len(seen) > KillerSlots {
		t.Fatalf("more than %d distinct killers retained", KillerSlots)
	}
}

func TestKillerPromotedToFrontOfOrdering(t *testing.T) {
	o := New()
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()

	cutoffMove := moves.Get(moves.Len() - 1)
	o.RecordCutoff(1, cutoffMove)

	o.Order(pos, moves, 1)
	if moves.Get(0) != cutoffMove {
		t.Fatalf("expected killer move first, got %v", moves.Get(0))
	}
}

func TestMVVLVAOrdersCapturesByValue(t *testing.T) {
	o := New()
	pos, err := board.ParseFEN("4k3/8/8/4q3/4R3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	o.Order(pos, moves, 0)

	best := moves.Get(0)
	if !best.IsCapture(pos) {
		t.Fatalf("expected a capture to sort first, got %v", best)
	}
	if pos.PieceAt(best.To()).Type() != board.Queen {
		t.Fatalf("expected the rook-takes-queen capture first, got capture of %v", pos.PieceAt(best.To()))
	}
}

func TestMVVLVADeprioritisesLosingCapture(t *testing.T) {
	o := New()
	pos, err := board.ParseFEN("4k3/8/8/3q4/2n1R3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	moves := pos.GenerateLegalMoves()
	o.Order(pos, moves, 0)

	best := moves.Get(0)
	if best.IsCapture(pos) {
		t.Fatalf("rook-for-knight loses material and should not sort first, got capture of %v", pos.PieceAt(best.To()))
	}
}
