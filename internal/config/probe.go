package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxWorkers bounds the size of the probe worker pool.
const MaxWorkers = 256

// ReportFormat selects how probe results are written.
type ReportFormat int

const (
	TextReport      ReportFormat = iota // One line per position
	JSONReport                          // A single JSON document
	JSONLinesReport                     // One JSON object per line
)

// ParseReportFormat converts a format name ("text", "json", "jsonl").
func ParseReportFormat(name string) (ReportFormat, error) {
	switch name {
	case "", "text":
		return TextReport, nil
	case "json":
		return JSONReport, nil
	case "jsonl":
		return JSONLinesReport, nil
	default:
		return TextReport, fmt.Errorf("unknown report format %q: %w", name, errors.ErrInvalidConfig)
	}
}

// ProbeConfig holds settings for batch position probing.
type ProbeConfig struct {
	// File lists one FEN per line; empty disables probing
	File string

	// Workers is the number of goroutines probing positions
	Workers int

	Format ReportFormat
}

// NewProbeConfig creates a ProbeConfig with default values.
func NewProbeConfig() *ProbeConfig {
	return &ProbeConfig{Workers: 1}
}

// Validate checks that the probe configuration is valid.
func (p *ProbeConfig) Validate() error {
	if p.Workers < 1 || p.Workers > MaxWorkers {
		return fmt.Errorf("workers %d outside 1..%d: %w", p.Workers, MaxWorkers, errors.ErrInvalidConfig)
	}
	if p.Format < TextReport || p.Format > JSONLinesReport {
		return fmt.Errorf("report format %d: %w", p.Format, errors.ErrInvalidConfig)
	}
	return nil
}
