// Package config provides configuration for the chesscore command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per-move commentary

	// Starting position and the moves played from it.
	StartFEN string   // empty means the standard starting position
	Moves    []string // coordinate moves such as "e2e4" or "e7e8q"

	Output *OutputConfig
	Perft  *PerftConfig

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.Perft == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing output or perft settings")
	}
	return c.Perft.Validate()
}

// Logf writes to the log stream when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
