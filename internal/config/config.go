// Package config provides configuration for the chessboard command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// OutputFormat selects how a board is written.
type OutputFormat int

const (
	TextFormat      OutputFormat = iota // Boxed grid
	JSONFormat                          // JSON document
	PlacementFormat                     // FEN piece-placement field
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case PlacementFormat:
		return "placement"
	default:
		return "text"
	}
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "placement", "fen":
		return PlacementFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// DefaultPrompt is printed before each line read from the input.
const DefaultPrompt = ">>> "

// Config holds all program configuration.
type Config struct {
	Verbosity int  // 0=nothing, 1=warnings, 2=running commentary
	Quiet     bool // Suppress the prompt

	Prompt string

	// Board output
	Format OutputFormat
	Glyphs chess.GlyphStyle

	// Starting board: the standard arrangement unless Empty is set or
	// StartPlacement holds a FEN placement field.
	Empty          bool
	StartPlacement string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Prompt:     DefaultPrompt,
		Format:     TextFormat,
		Glyphs:     chess.UnicodeGlyphs,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports settings that cannot be used together.
func (c *Config) Validate() error {
	if c.Empty && c.StartPlacement != "" {
		return fmt.Errorf("empty board and a start placement are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// StartingBoard builds the board the session begins with.
func (c *Config) StartingBoard() (*chess.Board, error) {
	switch {
	case c.Empty:
		return chess.EmptyBoard(), nil
	case c.StartPlacement != "":
		b, err := chess.ParsePlacement(c.StartPlacement)
		if err != nil {
			return nil, errors.Wrap(err, "start placement")
		}
		return b, nil
	default:
		return chess.NewBoard(), nil
	}
}

// Logf writes a diagnostic to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
