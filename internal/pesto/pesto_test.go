package pesto

import (
	"testing"

	"github.com/corvidchess/corvid/internal/board"
)

func TestMirrorMatchesWhiteFlippedVertically(t *testing.T) {
	for pt := board.Pawn; pt <= board.King; pt++ {
		for sq := board.Square(0); sq < 64; sq++ {
			white := At(pt, board.White, sq)
			black := At(pt, board.Black, sq.Mirror())
			if white != black {
				t.Fatalf("pt=%v sq=%v: white=%v black(mirror)=%v", pt, sq, white, black)
			}
		}
	}
}

func TestCornerValuesAreStable(t *testing.T) {
	// Central knight squares score higher than the corners for White.
	corner := At(board.Knight, board.White, board.A1)
	center := At(board.Knight, board.White, board.D4)
	if center.MG <= corner.MG {
		t.Fatalf("expected central knight bonus > corner, got center=%d corner=%d", center.MG, corner.MG)
	}
}
