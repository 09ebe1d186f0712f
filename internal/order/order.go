// Package order implements move ordering for the searcher: killer moves,
// MVV-LVA capture scoring, and the history heuristic.
package order

import (
	"math"

	"github.com/corvidchess/corvid/internal/board"
)

const (
	// KillerSlots is the number of killer moves remembered per ply.
	KillerSlots = 4
	// HistoryPlyLimit disables history guidance beyond this ply, where it
	// tends to be noisier than useful.
	HistoryPlyLimit = 10
	// MaxPly bounds the killer table; deeper plies get no killer ordering.
	MaxPly = 128
)

// Orderer owns the killer table and the history heuristic. Both are mutated
// only on a beta cutoff and persist across searches until Reset.
type Orderer struct {
	killers [MaxPly][KillerSlots]board.Move
	history [64][64]int
}

// New returns an empty Orderer.
func New() *Orderer {
	return &Orderer{}
}

// Reset clears killers and history for a fresh search lineage.
func (o *Orderer) Reset() {
	for p := range o.killers {
		for s := range o.killers[p] {
			o.killers[p][s] = board.NoMove
		}
	}
	for i := range o.history {
		for j := range o.history[i] {
			o.history[i][j] = 0
		}
	}
}

// RecordCutoff registers m as a killer at ply and bumps its history score.
// Called once per beta cutoff, regardless of which side is on move.
func (o *Orderer) RecordCutoff(ply int, m board.Move) {
	o.recordKiller(ply, m)
	o.history[m.From()][m.To()]++
}

// recordKiller rotates the killer slots right by one and writes m into
// slot 0. Killers are never deduplicated; membership testing handles
// repeats.
func (o *Orderer) recordKiller(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	for s := KillerSlots - 1; s > 0; s-- {
		o.killers[ply][s] = o.killers[ply][s-1]
	}
	o.killers[ply][0] = m
}

// killerRank returns m's slot index at ply (0 = most recently inserted), or
// -1 if m is not a killer there.
func (o *Orderer) killerRank(ply int, m board.Move) int {
	if ply < 0 || ply >= MaxPly {
		return -1
	}
	for i, k := range o.killers[ply] {
		if k == m {
			return i
		}
	}
	return -1
}

// mvvLvaValue is the attacker/victim weight used by MVV-LVA: cheap
// attackers and valuable victims sort first.
func mvvLvaValue(pt board.PieceType) int {
	switch pt {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return math.MaxInt32
	default:
		return 0
	}
}

// mvvLva scores a capture as victim value minus attacker value; zero for
// non-captures.
func mvvLva(pos *board.Position, m board.Move) int {
	if !m.IsCapture(pos) {
		return 0
	}
	attacker := pos.PieceAt(m.From()).Type()
	var victim board.PieceType
	if m.IsEnPassant() {
		victim = board.Pawn
	} else {
		victim = pos.PieceAt(m.To()).Type()
	}
	return mvvLvaValue(victim) - mvvLvaValue(attacker)
}

// Order reorders moves in place: killers for this ply first (most-recently
// inserted first), then the remainder ascending by
// (-history[src][dst] if ply <= HistoryPlyLimit else 0, -MVV-LVA).
func (o *Orderer) Order(pos *board.Position, moves *board.MoveList, ply int) {
	n := moves.Len()
	killerRank := make([]int, n)
	histKey := make([]int, n)
	mvvKey := make([]int, n)

	for i := 0; i < n; i++ {
		m := moves.Get(i)
		killerRank[i] = o.killerRank(ply, m)
		if ply <= HistoryPlyLimit {
			histKey[i] = -o.history[m.From()][m.To()]
		}
		mvvKey[i] = -mvvLva(pos, m)
	}

	less := func(i, j int) bool {
		iKiller, jKiller := killerRank[i] >= 0, killerRank[j] >= 0
		if iKiller != jKiller {
			return iKiller
		}
		if iKiller && jKiller {
			return killerRank[i] < killerRank[j]
		}
		if histKey[i] != histKey[j] {
			return histKey[i] < histKey[j]
		}
		return mvvKey[i] < mvvKey[j]
	}

	// Selection sort: move lists rarely exceed a few dozen entries.
	for i := 0; i < n-1; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if less(j, best) {
				best = j
			}
		}
		if best != i {
			moves.Swap(i, best)
			killerRank[i], killerRank[best] = killerRank[best], killerRank[i]
			histKey[i], histKey[best] = histKey[best], histKey[i]
			mvvKey[i], mvvKey[best] = mvvKey[best], mvvKey[i]
		}
	}
}
