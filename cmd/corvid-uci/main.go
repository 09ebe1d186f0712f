// Command corvid-uci runs the engine as a UCI chess engine, reading
// commands from standard input and writing responses to standard output.
package main

import (
	"flag"
	"log"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/engine"
	"github.com/corvidchess/corvid/internal/uci"
)

var configPath = flag.String("config", "", "path to a TOML config file (optional)")

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configPath, err)
		}
		cfg = loaded
	}

	eng := engine.NewEngine(cfg.TTByteBudget)
	protocol := uci.New(eng, cfg)
	protocol.Run()
}
