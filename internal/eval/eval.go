// Package eval implements the static position evaluator: material balance,
// a tapered piece-square score, and terminal detection for checkmate and
// stalemate.
package eval

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/pesto"
)

// MateScore and StalemateScore bound the magnitude of terminal scores; both
// dwarf any plausible material-plus-positional sum, so terminal positions
// always dominate move ordering at the leaf.
const (
	MateScore      = 999999
	StalemateScore = 555555
)

// startingMaterial is the centipawn material on the board at the start of a
// game, summed over both sides: 8 pawns + 2 knights + 2 bishops + 2 rooks +
// 1 queen, per side, doubled.
const startingMaterial = 2 * (8*100 + 2*300 + 2*300 + 2*500 + 900)

// Evaluate returns a score from the perspective of pos's side to move.
// moves is the legal move list already generated for pos, passed in so a
// terminal position can be recognised without regenerating it. maximising
// indicates whether pos's side to move is the search's top-level
// maximising side; it fixes the sign of a terminal score so that bound
// comparisons stay consistent across plies of either parity.
func Evaluate(pos *board.Position, moves *board.MoveList, maximising bool) int {
	if moves.Len() == 0 {
		sign := 1
		if maximising {
			sign = -1
		}
		if pos.InCheck() {
			return sign * MateScore
		}
		return sign * StalemateScore
	}

	matWhite, matBlack := materialByColor(pos)

	var materialScore int
	if pos.SideToMove == board.White {
		materialScore = matWhite - matBlack
	} else {
		materialScore = matBlack - matWhite
	}

	mgWhite, egWhite, mgBlack, egBlack := pstByColor(pos)

	var mgStm, mgOther, egStm, egOther int
	if pos.SideToMove == board.White {
		mgStm, mgOther, egStm, egOther = mgWhite, mgBlack, egWhite, egBlack
	} else {
		mgStm, mgOther, egStm, egOther = mgBlack, mgWhite, egBlack, egWhite
	}
	mg := mgStm - mgOther
	eg := egStm - egOther

	phase := clamp01(float64(matWhite+matBlack) / float64(startingMaterial))
	positional := phase*float64(mg) + (1-phase)*float64(eg)

	return materialScore + int(positional)
}

func materialByColor(pos *board.Position) (white, black int) {
	for pt := board.Pawn; pt < board.King; pt++ {
		white += pos.Pieces[board.White][pt].PopCount() * board.PieceValue[pt]
		black += pos.Pieces[board.Black][pt].PopCount() * board.PieceValue[pt]
	}
	return white, black
}

func pstByColor(pos *board.Position) (mgWhite, egWhite, mgBlack, egBlack int) {
	for pt := board.Pawn; pt <= board.King; pt++ {
		bb := pos.Pieces[board.White][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			p := pesto.At(pt, board.White, sq)
			mgWhite += p.MG
			egWhite += p.EG
		}

		bb = pos.Pieces[board.Black][pt]
		for bb != 0 {
			sq := bb.PopLSB()
			p := pesto.At(pt, board.Black, sq)
			mgBlack += p.MG
			egBlack += p.EG
		}
	}
	return mgWhite, egWhite, mgBlack, egBlack
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
