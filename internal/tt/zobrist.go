package tt

import "github.com/corvidchess/corvid/internal/board"

// prng is a xorshift64* generator, independent of and unrelated to any
// hashing the rules library does internally. Deterministic across runs so
// that hashes (and therefore TT behaviour) are reproducible for a given
// process image.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (r *prng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545F4914F6CDD1D
}

// zobristRandoms holds one independent random value per (square, piece
// kind, colour) tuple plus two side-to-move randoms. Built once and never
// mutated afterward; castling rights and en-passant are deliberately left
// out of the hash (two positions differing only there collide, a cost the
// engine accepts).
type zobristRandoms struct {
	piece       [2][6][64]uint64
	sideToMove  [2]uint64
}

func newZobristRandoms() *zobristRandoms {
	z := &zobristRandoms{}
	r := newPRNG(0x9E3779B97F4A7C15)
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			for sq := board.Square(0); sq < 64; sq++ {
				z.piece[c][pt][sq] = r.next()
			}
		}
	}
	z.sideToMove[board.White] = r.next()
	z.sideToMove[board.Black] = r.next()
	return z
}
