// Package output writes boards and square lookups in the supported formats.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats.
type BoardWriter interface {
	// WriteBoard writes a single board to the output.
	WriteBoard(board *chess.Board) error
}

// NewBoardWriter returns the writer for cfg.Format, writing to w.
func NewBoardWriter(w io.Writer, cfg *config.Config) BoardWriter {
	switch cfg.Format {
	case config.JSONFormat:
		return NewJSONWriter(w)
	case config.PlacementFormat:
		return NewPlacementWriter(w)
	default:
		return NewTextWriter(w, cfg.Glyphs)
	}
}

// TextWriter draws boards as a boxed grid.
type TextWriter struct {
	w     io.Writer
	style chess.GlyphStyle
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, style chess.GlyphStyle) *TextWriter {
	return &TextWriter{w: w, style: style}
}

// WriteBoard renders the board followed by a newline.
func (tw *TextWriter) WriteBoard(board *chess.Board) error {
	_, err := fmt.Fprintln(tw.w, board.Render(tw.style))
	return err
}

// PlacementWriter writes boards as a FEN piece-placement field.
type PlacementWriter struct {
	w io.Writer
}

// NewPlacementWriter creates a new placement writer.
func NewPlacementWriter(w io.Writer) *PlacementWriter {
	return &PlacementWriter{w: w}
}

// WriteBoard writes the placement field on its own line.
func (pw *PlacementWriter) WriteBoard(board *chess.Board) error {
	_, err := fmt.Fprintln(pw.w, board.Placement())
	return err
}

// FormatLookup describes the contents of a square, e.g.
// "E1: white king" or "E4: empty".
func FormatLookup(pos chess.Position, piece chess.Piece, ok bool) string {
	if !ok {
		return fmt.Sprintf("%s: empty", pos)
	}
	return fmt.Sprintf("%s: %s %s (%c)", pos,
		strings.ToLower(piece.Colour().String()), strings.ToLower(piece.Kind().String()), piece.Glyph())
}

// WriteLookup writes FormatLookup's text on its own line.
func WriteLookup(w io.Writer, pos chess.Position, piece chess.Piece, ok bool) error {
	_, err := fmt.Fprintln(w, FormatLookup(pos, piece, ok))
	return err
}
