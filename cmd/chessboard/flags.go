// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "", "Board format: text, json, placement")
	jsonOutput   = flag.Bool("J", false, "Output the board in JSON format")
	asciiGlyphs  = flag.Bool("ascii", false, "Draw pieces as FEN letters instead of Unicode symbols")

	// Starting board
	startFEN   = flag.String("fen", "", "Start from this FEN piece placement")
	emptyBoard = flag.Bool("empty", false, "Start from an empty board")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=warnings, 2=commentary")
	quiet     = flag.Bool("q", false, "Don't print the prompt or diagnostics")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}
	applyBoardFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Quiet = true
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Format = format
	if *jsonOutput {
		cfg.Format = config.JSONFormat
	}
	if *asciiGlyphs {
		cfg.Glyphs = chess.LetterGlyphs
	}
	return nil
}

func applyBoardFlags(cfg *config.Config) {
	cfg.Empty = *emptyBoard
	cfg.StartPlacement = *startFEN
}
