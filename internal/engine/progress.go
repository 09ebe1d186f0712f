package engine

import "github.com/corvidchess/corvid/internal/board"

// Entry is one ply's worth of progress, exposed for UCI Info-line bridging.
type Entry struct {
	Ply       int
	BestMove  board.Move
	NodeCount uint32
}

// Progress tracks, per ply, the current best move and how many times that
// ply's bound has improved during the search in progress. Reset at the
// start of every top-level search.
type Progress struct {
	entries []Entry
}

// NewProgress returns an empty progress record.
func NewProgress() *Progress {
	return &Progress{}
}

// Reset discards all entries, ready for a new top-level search.
func (p *Progress) Reset() {
	p.entries = p.entries[:0]
}

// Update records an improving bound update at ply: the matching entry's
// best move is overwritten and its node count incremented, or a new entry
// is appended if ply hasn't been seen yet this search.
func (p *Progress) Update(ply int, bestMove board.Move) {
	for i := range p.entries {
		if p.entries[i].Ply == ply {
			p.entries[i].BestMove = bestMove
			p.entries[i].NodeCount++
			return
		}
	}
	p.entries = append(p.entries, Entry{Ply: ply, BestMove: bestMove, NodeCount: 1})
}

// Entries returns the full sequence of progress records from the most
// recent search, in discovery order.
func (p *Progress) Entries() []Entry {
	return p.entries
}
