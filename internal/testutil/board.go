package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// MustBoard builds a board from a FEN placement field.
// It calls t.Fatal if the placement is malformed.
func MustBoard(t *testing.T, placement string) *chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("failed to parse placement %q: %v", placement, err)
	}
	return b
}

// MustPosition parses square text such as "E4".
// It calls t.Fatal if the text is malformed.
func MustPosition(t *testing.T, text string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(text)
	if err != nil {
		t.Fatalf("failed to parse position %q: %v", text, err)
	}
	return p
}
