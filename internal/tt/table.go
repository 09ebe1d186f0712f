// Package tt implements the search's transposition table: a Zobrist-keyed
// memo from position to NodeInfo, bounded by a byte budget and evicted
// strictly FIFO rather than by recency.
package tt

import (
	"container/list"
	"unsafe"

	"github.com/corvidchess/corvid/internal/board"
)

// NodeInfo is the record memoised per position.
type NodeInfo struct {
	Score    int32
	BestMove board.Move
	Depth    uint16
}

const keySize = int(unsafe.Sizeof(uint64(0)))
const entrySize = int(unsafe.Sizeof(NodeInfo{}))

// Table is a Zobrist-hash map bounded to a byte budget and evicted FIFO.
// Not safe for concurrent use; the engine that owns it serialises access.
type Table struct {
	randoms  *zobristRandoms
	capacity int
	entries  map[uint64]NodeInfo
	order    *list.List // FIFO of inserted keys, oldest at Front
}

// New allocates an empty table sized for byteBudget bytes. Capacity is
// byteBudget / (sizeof(key) + sizeof(NodeInfo)); a budget smaller than one
// entry yields a capacity of zero, and every subsequent insert is evicted
// immediately.
func New(byteBudget int) *Table {
	capacity := byteBudget / (keySize + entrySize)
	if capacity < 0 {
		capacity = 0
	}
	return &Table{
		randoms:  newZobristRandoms(),
		capacity: capacity,
		entries:  make(map[uint64]NodeInfo),
		order:    list.New(),
	}
}

// Hash computes the Zobrist key for pos: one random per occupied
// (square, piece kind, colour), XORed with the side-to-move random.
// Castling rights and en passant do not participate.
func (t *Table) Hash(pos *board.Position) uint64 {
	var h uint64
	for c := board.White; c <= board.Black; c++ {
		for pt := board.Pawn; pt <= board.King; pt++ {
			bb := pos.Pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= t.randoms.piece[c][pt][sq]
			}
		}
	}
	h ^= t.randoms.sideToMove[pos.SideToMove]
	return h
}

// Contains reports whether pos has a memoised entry.
func (t *Table) Contains(pos *board.Position) bool {
	_, ok := t.entries[t.Hash(pos)]
	return ok
}

// Get returns the memoised entry for pos, if any.
func (t *Table) Get(pos *board.Position) (NodeInfo, bool) {
	v, ok := t.entries[t.Hash(pos)]
	return v, ok
}

// Insert records info for pos, appending its key to the FIFO and then
// evicting the oldest inserted key while the map exceeds capacity.
func (t *Table) Insert(pos *board.Position, info NodeInfo) {
	key := t.Hash(pos)
	t.order.PushBack(key)
	t.entries[key] = info
	for len(t.entries) > t.capacity {
		front := t.order.Front()
		if front == nil {
			break
		}
		t.order.Remove(front)
		delete(t.entries, front.Value.(uint64))
	}
}

// Len returns the number of entries currently retained.
func (t *Table) Len() int {
	return len(t.entries)
}

// Capacity returns the maximum number of entries the byte budget allows.
func (t *Table) Capacity() int {
	return t.capacity
}

// Clear empties the table without reallocating the Zobrist randoms.
func (t *Table) Clear() {
	t.entries = make(map[uint64]NodeInfo)
	t.order.Init()
}
