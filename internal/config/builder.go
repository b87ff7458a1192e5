package config

import (
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithGlyphs sets the glyph style used for text output.
func (b *ConfigBuilder) WithGlyphs(style chess.GlyphStyle) *ConfigBuilder {
	b.cfg.Glyphs = style
	return b
}

// WithEmptyBoard starts from an empty board.
func (b *ConfigBuilder) WithEmptyBoard(enabled bool) *ConfigBuilder {
	b.cfg.Empty = enabled
	return b
}

// WithStartPlacement starts from a FEN placement field.
func (b *ConfigBuilder) WithStartPlacement(placement string) *ConfigBuilder {
	b.cfg.StartPlacement = placement
	return b
}

// WithQuiet suppresses the prompt.
func (b *ConfigBuilder) WithQuiet(enabled bool) *ConfigBuilder {
	b.cfg.Quiet = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
