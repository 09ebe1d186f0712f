package eval

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestCheckmateDominance(t *testing.T) {
	pos, err := board.ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()
	if moves.Len() != 0 {
		t.Fatalf("expected checkmate position to have no legal moves, got %d", moves.Len())
	}

	// Black to move and mated; at the root Black is also the maximising side.
	score := Evaluate(pos, moves, true)
	if score > -900000 {
		t.Fatalf("expected score <= -900000 for a mated maximising side, got %d", score)
	}
}

func TestStalemateMagnitude(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := pos.GenerateLegalMoves()
	if moves.Len() != 0 {
		t.Fatalf("expected stalemate position to have no legal moves, got %d", moves.Len())
	}

	score := Evaluate(pos, moves, true)
	if abs(score) < 500000 {
		t.Fatalf("expected |score| >= 500000, got %d", score)
	}
}

func TestEvaluationSymmetry(t *testing.T) {
	white, err := board.ParseFEN("4k3/8/8/3p4/3P4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	black, err := board.ParseFEN("4k3/8/8/3P4/3p4/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	whiteMoves := white.GenerateLegalMoves()
	blackMoves := black.GenerateLegalMoves()

	whiteScore := Evaluate(white, whiteMoves, true)
	blackScore := Evaluate(black, blackMoves, true)

	if whiteScore != -blackScore {
		t.Fatalf("expected mirrored evaluations to be equal and opposite, got %d and %d", whiteScore, blackScore)
	}
}

func TestStartingPositionIsRoughlyBalanced(t *testing.T) {
	pos := board.NewPosition()
	moves := pos.GenerateLegalMoves()
	score := Evaluate(pos, moves, true)
	if score < -200 || score > 200 {
		t.Fatalf("expected starting score in [-200, 200], got %d", score)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
