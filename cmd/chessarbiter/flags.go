// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game setup
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the initial position")
	moveList  = flag.String("moves", "", "Play these moves (e.g. \"e2e4 e7e5\") and print the result instead of reading stdin")
	checkmate = flag.Bool("checkmate", false, "Detect checkmate after checking moves")

	// Batch probing
	probeFile    = flag.String("probe", "", "Probe every FEN in this file (one per line) and report check state")
	workers      = flag.Int("j", 1, "Number of probe workers")
	reportFormat = flag.String("format", "text", "Probe report format: text, json or jsonl")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	noColour   = flag.Bool("nocolor", false, "Disable coloured board output")
	noCoords   = flag.Bool("nocoords", false, "Don't print rank and file labels")
	noBoard    = flag.Bool("noboard", false, "Don't print the board after each move")

	// Logging
	verbosity = flag.Int("v", 0, "Diagnostics: 0=none, 1=rejections and checks, 2=every move")
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values onto cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	cfg.Rules.DetectCheckmate = *checkmate
	applyOutputFlags(cfg)
	applyProbeFlags(cfg)
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Colour = !*noColour
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowBoard = !*noBoard
}

func applyProbeFlags(cfg *config.Config) {
	cfg.Probe.File = *probeFile
	cfg.Probe.Workers = *workers

	format, err := config.ParseReportFormat(*reportFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Probe.Format = format
}
