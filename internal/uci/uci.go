// Package uci bridges the engine's search/evaluation core to the Universal
// Chess Interface wire protocol: a line-oriented text format read from
// standard input and written to standard output.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/corvidchess/corvid/internal/board"
	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine"
)

// UCI holds the bridge's session state: the engine being driven and the
// current position, which persists across "go" calls until the next
// "position" command replaces it.
type UCI struct {
	engine   *engine.Engine
	position *board.Position
	name     string
	author   string
	log      *zap.SugaredLogger
}

// New creates a UCI handler wrapping eng, identifying itself with cfg's
// name and author on the "uci" command. The initial position is the
// standard starting position, matching a client that sends "go" before
// ever sending "position".
func New(eng *engine.Engine, cfg config.Config) *UCI {
	logger, _ := zap.NewProduction()
	pos := board.NewPosition()
	eng.SetPosition(pos)
	return &UCI{
		engine:   eng,
		position: pos,
		name:     cfg.Name,
		author:   cfg.Author,
		log:      logger.Sugar(),
	}
}

// Run reads commands from standard input until EOF or "quit", dispatching
// each to its handler. One command is processed at a time; the engine
// never races with the reader since both run on this single goroutine.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			// Ignored: positions are always given explicitly.
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// No effect: the searcher runs to completion once invoked.
		case "quit":
			return
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Printf("id name %s\n", u.name)
	fmt.Printf("id author %s\n", u.author)
	fmt.Println("uciok")
}

// handlePosition implements "position [startpos|fen ...] [moves ...]". On
// any parse or legality failure it logs the problem and leaves u.position
// untouched, per the InvalidPosition error policy: the client is expected
// to recover by sending a fresh position.
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		u.log.Warnw("position: missing startpos or fen")
		return
	}

	var pos *board.Position
	var rest []string

	switch args[0] {
	case "startpos":
		pos = board.NewPosition()
		rest = args[1:]
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		if fenEnd < 2 {
			u.log.Warnw("position fen: missing FEN string")
			return
		}
		parsed, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			u.log.Warnw("invalid FEN", "error", err)
			return
		}
		pos = parsed
		rest = args[fenEnd:]
	default:
		u.log.Warnw("position: expected startpos or fen", "got", args[0])
		return
	}

	history := []uint64{pos.Hash}
	if len(rest) > 0 && rest[0] == "moves" {
		for _, moveStr := range rest[1:] {
			m, err := board.ParseMove(moveStr, pos)
			if err != nil {
				u.log.Warnw("invalid move in position command", "move", moveStr, "error", err)
				return
			}
			if !pos.GenerateLegalMoves().Contains(m) {
				u.log.Warnw("illegal move in position command", "move", moveStr)
				return
			}
			pos = pos.Apply(m)
			history = append(history, pos.Hash)
		}
	}

	u.position = pos
	u.engine.SetPosition(pos)

	if pos.RepeatedIn(history) >= 3 {
		u.log.Infow("root position has occurred three times in this game", "fen", pos.String())
	}
	if pos.IsInsufficientMaterial() {
		u.log.Infow("root position is a dead draw by insufficient material")
	}
}

// handleGo implements "go depth N": it runs a fixed-depth search, streams
// one info line per ply from the engine's progress record, and concludes
// with a bestmove line. If the root position has no legal moves
// (SearchNoMove), no bestmove line is sent.
func (u *UCI) handleGo(args []string) {
	depth := 1
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
			i++
		}
	}

	_, best := u.engine.Search(depth)

	for _, entry := range u.engine.Progress() {
		fmt.Printf("info depth %d nodes %d pv %s\n", entry.Ply, entry.NodeCount, entry.BestMove.String())
	}

	if best == board.NoMove {
		u.log.Infow("search returned no move at the root", "depth", depth)
		return
	}
	fmt.Printf("bestmove %s\n", best.String())
}
