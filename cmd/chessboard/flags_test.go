package main

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

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

func TestApplyOutputFormatFlags(t *testing.T) {
	t.Run("defaults to text", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "")()
		defer saveRestoreBool(jsonOutput, false)()
		defer saveRestoreBool(asciiGlyphs, false)()
		cfg := config.NewConfig()
		if err := applyOutputFormatFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Format != config.TextFormat {
			t.Errorf("Format = %v; want text", cfg.Format)
		}
		if cfg.Glyphs != chess.UnicodeGlyphs {
			t.Errorf("Glyphs = %v; want UnicodeGlyphs", cfg.Glyphs)
		}
	})

	t.Run("W placement", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "placement")()
		defer saveRestoreBool(jsonOutput, false)()
		cfg := config.NewConfig()
		if err := applyOutputFormatFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Format != config.PlacementFormat {
			t.Errorf("Format = %v; want placement", cfg.Format)
		}
	})

	t.Run("J overrides W", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "text")()
		defer saveRestoreBool(jsonOutput, true)()
		cfg := config.NewConfig()
		if err := applyOutputFormatFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Format != config.JSONFormat {
			t.Errorf("Format = %v; want json", cfg.Format)
		}
	})

	t.Run("ascii glyphs", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "")()
		defer saveRestoreBool(asciiGlyphs, true)()
		cfg := config.NewConfig()
		if err := applyOutputFormatFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Glyphs != chess.LetterGlyphs {
			t.Errorf("Glyphs = %v; want LetterGlyphs", cfg.Glyphs)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "pgn")()
		err := applyOutputFormatFlags(config.NewConfig())
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestApplyFlags(t *testing.T) {
	t.Run("quiet silences diagnostics", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		defer saveRestoreInt(verbosity, 2)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if !cfg.Quiet || cfg.Verbosity != 0 {
			t.Errorf("Quiet = %v, Verbosity = %d; want true, 0", cfg.Quiet, cfg.Verbosity)
		}
	})

	t.Run("verbosity", func(t *testing.T) {
		defer saveRestoreBool(quiet, false)()
		defer saveRestoreInt(verbosity, 2)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})

	t.Run("board flags", func(t *testing.T) {
		defer saveRestoreString(startFEN, "8/8/8/8/8/8/8/8")()
		defer saveRestoreBool(emptyBoard, false)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.StartPlacement != "8/8/8/8/8/8/8/8" {
			t.Errorf("StartPlacement = %q", cfg.StartPlacement)
		}
	})

	t.Run("empty with fen rejected", func(t *testing.T) {
		defer saveRestoreString(startFEN, chess.StartingPlacement)()
		defer saveRestoreBool(emptyBoard, true)()
		err := applyFlags(config.NewConfig())
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("error = %v; want ErrInvalidConfig", err)
		}
	})
}
