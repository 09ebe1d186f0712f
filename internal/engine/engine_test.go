package engine

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
)

func TestFindsMateInOne(t *testing.T) {
	pos, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(1 << 20)
	e.SetPosition(pos)

	score, best := e.Search(2)
	if best == board.NoMove {
		t.Fatal("expected a move, got NoMove")
	}
	if score < 900000 {
		t.Fatalf("expected a near-mate score, got %d", score)
	}
	if best.From() != board.A1 || best.To() != board.A8 {
		t.Fatalf("expected Ra1-a8, got %v", best)
	}
}

func TestNoLegalMoveReturnsNoMove(t *testing.T) {
	pos, err := board.ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(1 << 20)
	e.SetPosition(pos)

	_, best := e.Search(3)
	if best != board.NoMove {
		t.Fatalf("expected NoMove at a stalemated root, got %v", best)
	}
}

func TestUnsetPositionReturnsNoMove(t *testing.T) {
	e := NewEngine(1 << 20)
	score, best := e.Search(3)
	if best != board.NoMove || score != 0 {
		t.Fatalf("expected zero-value result with no position set, got score=%d best=%v", score, best)
	}
}

func TestPicksObviousFreeCapture(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/4q3/4R3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine(1 << 20)
	e.SetPosition(pos)

	_, best := e.Search(2)
	if pos.PieceAt(best.To()).Type() != board.Queen {
		t.Fatalf("expected the engine to grab the hanging queen, got %v", best)
	}
}

func TestRepeatedSearchReusesTranspositionTable(t *testing.T) {
	pos := board.NewPosition()
	e := NewEngine(1 << 20)
	e.SetPosition(pos)

	e.Search(3)
	first := totalNodes(e.Progress())

	e.SetPosition(pos)
	e.Search(3)
	second := totalNodes(e.Progress())

	if second >= first {
		t.Fatalf("expected the second search to visit strictly fewer nodes than the first: first=%d second=%d", first, second)
	}
}

func TestSearchScoreIndependentOfOrderingState(t *testing.T) {
	pos, err := board.ParseFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	if err != nil {
		t.Fatal(err)
	}

	fresh := NewEngine(1 << 20)
	fresh.SetPosition(pos)
	freshScore, _ := fresh.Search(3)

	warm := NewEngine(1 << 20)
	warm.SetPosition(pos)
	warm.Search(3)
	warm.Reset()
	warm.SetPosition(pos)
	warmScore, _ := warm.Search(3)

	if freshScore != warmScore {
		t.Fatalf("expected alpha-beta pruning to be score-preserving, got %d vs %d", freshScore, warmScore)
	}
}

func TestStartingPositionScoreMatchesEval(t *testing.T) {
	pos := board.NewPosition()
	e := NewEngine(1 << 20)
	e.SetPosition(pos)

	score, _ := e.Search(1)
	moves := pos.GenerateLegalMoves()
	leaf := eval.Evaluate(pos, moves, true)
	if score < leaf-100 || score > leaf+400 {
		t.Fatalf("depth-1 search score %d far from static eval %d", score, leaf)
	}
}

func totalNodes(entries []Entry) uint32 {
	var total uint32
	for _, e := range entries {
		total += e.NodeCount
	}
	return total
}
