// Package engine implements the alpha-beta searcher: it drives move
// generation and evaluation from the board and eval packages, orders moves
// with the order package, and memoises child positions in a tt.Table.
package engine

import (
	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/eval"
	"github.com/corvidchess/corvid/internal/order"
	"github.com/corvidchess/corvid/internal/tt"
)

// infinity bounds alpha and beta at the root. It must exceed eval.MateScore
// by a wide margin so a forced mate never gets clipped against the sentinel.
const infinity = 1 << 30

// Engine holds all state that persists across searches: the current
// position, the transposition table, and the move-ordering heuristics. A
// single Engine is reused for the lifetime of a UCI session.
type Engine struct {
	pos      *board.Position
	tt       *tt.Table
	orderer  *order.Orderer
	progress *Progress
}

// NewEngine returns an Engine with a transposition table sized to
// ttByteBudget bytes. Killers, history, and the position are empty until
// SetPosition and a first Search.
func NewEngine(ttByteBudget int) *Engine {
	return &Engine{
		tt:       tt.New(ttByteBudget),
		orderer:  order.New(),
		progress: NewProgress(),
	}
}

// SetPosition installs pos as the position the next Search will explore.
func (e *Engine) SetPosition(pos *board.Position) {
	e.pos = pos
}

// Position returns the engine's current position, or nil if none is set.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// Reset clears killers and history. The transposition table is left
// intact: a later search of a previously-seen subtree should still benefit
// from earlier work.
func (e *Engine) Reset() {
	e.orderer.Reset()
	e.progress.Reset()
}

// Progress returns the per-ply best-move trail from the most recent Search.
func (e *Engine) Progress() []Entry {
	return e.progress.Entries()
}

// Search runs a fixed-depth alpha-beta search from the current position and
// returns its score and best move. maxDepth must be positive; if it is not,
// or no position has been set, it returns (0, board.NoMove). If no legal
// move exists at the root, it returns the terminal (mate or stalemate)
// score from eval.Evaluate together with board.NoMove.
func (e *Engine) Search(maxDepth int) (int, board.Move) {
	if e.pos == nil || maxDepth <= 0 {
		return 0, board.NoMove
	}
	e.progress.Reset()
	return e.negamax(e.pos, maxDepth, maxDepth, -infinity, infinity, true)
}

// negamax evaluates pos to depthRemaining plies of lookahead out of a total
// search depth of maxDepth, maintaining alpha-beta bounds in alpha/beta.
// maximising is true exactly when pos's side to move is the side that was
// on move at the root.
//
// Despite the name this is a classic explicit-branch minimax, not a
// sign-flipping negamax: scores are never negated between plies, since
// maximising already tracks which side's perspective a node's bound is
// being kept in.
func (e *Engine) negamax(pos *board.Position, maxDepth, depthRemaining, alpha, beta int, maximising bool) (int, board.Move) {
	ply := maxDepth + 1 - depthRemaining

	moves := pos.GenerateLegalMoves()
	e.orderer.Order(pos, moves, ply)

	if depthRemaining == 0 || moves.Len() == 0 {
		return eval.Evaluate(pos, moves, maximising), board.NoMove
	}

	bestMove := moves.Get(0)
	var bestVal int
	if maximising {
		bestVal = -infinity
	} else {
		bestVal = infinity
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		child := pos.Apply(m)

		var childScore int
		if entry, ok := e.tt.Get(child); ok && int(entry.Depth) >= depthRemaining {
			childScore = int(entry.Score)
		} else {
			childScore, _ = e.negamax(child, maxDepth, depthRemaining-1, alpha, beta, !maximising)
		}

		if maximising {
			if childScore > bestVal {
				bestVal = childScore
				bestMove = m
				e.tt.Insert(child, tt.NodeInfo{Score: int32(bestVal), BestMove: bestMove, Depth: uint16(depthRemaining)})
				e.progress.Update(ply, bestMove)
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if childScore < bestVal {
				bestVal = childScore
				bestMove = m
				e.tt.Insert(child, tt.NodeInfo{Score: int32(bestVal), BestMove: bestMove, Depth: uint16(depthRemaining)})
				e.progress.Update(ply, bestMove)
			}
			if bestVal < beta {
				beta = bestVal
			}
		}

		if beta <= alpha {
			e.orderer.RecordCutoff(ply, m)
			break
		}
	}

	return bestVal, bestMove
}
