package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	Placement string      `json:"placement"`
	Pieces    []JSONPiece `json:"pieces"`
}

// JSONPiece represents one occupied square in JSON format.
type JSONPiece struct {
	Square string `json:"square"`
	Colour string `json:"colour"` // "white" or "black"
	Kind   string `json:"kind"`
	Glyph  string `json:"glyph"`
}

// BoardToJSON converts a board to JSON format. Pieces are listed in
// storage order, rank 8 first.
func BoardToJSON(board *chess.Board) *JSONBoard {
	jb := &JSONBoard{
		Placement: board.Placement(),
		Pieces:    make([]JSONPiece, 0, chess.NumSquares),
	}
	for _, piece := range board.Pieces() {
		jb.Pieces = append(jb.Pieces, JSONPiece{
			Square: piece.Position().String(),
			Colour: strings.ToLower(piece.Colour().String()),
			Kind:   strings.ToLower(piece.Kind().String()),
			Glyph:  string(piece.Glyph()),
		})
	}
	return jb
}

// JSONWriter writes each board as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteBoard encodes the board immediately.
func (jw *JSONWriter) WriteBoard(board *chess.Board) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(BoardToJSON(board))
}
