// Package config holds the settings of the chessarbiter command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxVerbosity is the highest diagnostic level.
const MaxVerbosity = 2

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=rejections and checks, 2=every move

	// StartFEN is the position games start from; empty means the standard
	// starting position.
	StartFEN string

	Rules  *RulesConfig
	Output *OutputConfig
	Probe  *ProbeConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Probe:      NewProbeConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream boards and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostic stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration and every sub-configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d outside 0..%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	return c.Probe.Validate()
}
