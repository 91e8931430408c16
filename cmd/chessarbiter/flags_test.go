package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(noColour, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreInt(verbosity, 2)()
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")()
	defer saveRestoreBool(checkmate, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
	}
	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if !cfg.Rules.DetectCheckmate {
		t.Error("DetectCheckmate = false; want true")
	}
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name            string
		noColour        bool
		noCoords        bool
		noBoard         bool
		wantColour      bool
		wantCoordinates bool
		wantShowBoard   bool
	}{
		{"defaults", false, false, false, true, true, true},
		{"nocolor", true, false, false, false, true, true},
		{"nocoords", false, true, false, true, false, true},
		{"noboard", false, false, true, true, true, false},
		{"all off", true, true, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(noColour, tt.noColour)()
			defer saveRestoreBool(noCoords, tt.noCoords)()
			defer saveRestoreBool(noBoard, tt.noBoard)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)

			if cfg.Output.Colour != tt.wantColour {
				t.Errorf("Colour = %v; want %v", cfg.Output.Colour, tt.wantColour)
			}
			if cfg.Output.Coordinates != tt.wantCoordinates {
				t.Errorf("Coordinates = %v; want %v", cfg.Output.Coordinates, tt.wantCoordinates)
			}
			if cfg.Output.ShowBoard != tt.wantShowBoard {
				t.Errorf("ShowBoard = %v; want %v", cfg.Output.ShowBoard, tt.wantShowBoard)
			}
		})
	}
}

func TestApplyProbeFlags(t *testing.T) {
	defer saveRestoreString(probeFile, "positions.fen")()
	defer saveRestoreInt(workers, 4)()
	defer saveRestoreString(reportFormat, "jsonl")()

	cfg := config.NewConfig()
	applyProbeFlags(cfg)

	if cfg.Probe.File != "positions.fen" {
		t.Errorf("Probe.File = %q; want positions.fen", cfg.Probe.File)
	}
	if cfg.Probe.Workers != 4 {
		t.Errorf("Probe.Workers = %d; want 4", cfg.Probe.Workers)
	}
	if cfg.Probe.Format != config.JSONLinesReport {
		t.Errorf("Probe.Format = %d; want JSONLinesReport", cfg.Probe.Format)
	}
}
