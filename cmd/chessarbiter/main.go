// chessarbiter checks chess moves against the rules, either interactively,
// from a move list, or in batch over a file of FEN positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessarbiter version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *moveList, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to probe mode, move-list mode or the interactive loop.
func run(cfg *config.Config, moves string, in io.Reader) error {
	if cfg.Probe.File != "" {
		return runProbe(cfg)
	}

	state, err := startState(cfg)
	if err != nil {
		return err
	}
	g := newGame(cfg, newArbiter(cfg), state)

	if moves != "" {
		return g.playMoves(moves)
	}
	return g.interact(in)
}

// newArbiter builds the arbiter described by cfg.
func newArbiter(cfg *config.Config) *engine.Arbiter {
	return engine.NewArbiter(
		engine.WithObserver(engine.NewLogObserver(cfg.LogFile, cfg.Verbosity)),
		engine.WithCheckmateDetection(cfg.Rules.DetectCheckmate),
	)
}

func startState(cfg *config.Config) (session.State, error) {
	if cfg.StartFEN == "" {
		return session.New(), nil
	}
	return session.FromFEN(cfg.StartFEN)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessarbiter [options]\n\n")
	fmt.Fprintf(os.Stderr, "Checks chess moves against the rules of the game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
