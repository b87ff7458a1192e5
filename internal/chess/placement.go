package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// StartingPlacement is the FEN piece-placement field of the standard
// starting arrangement.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Placement encodes the board as a FEN piece-placement field, rank 8 first.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			piece, ok := b.PieceAt(NewPosition(row, col))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ParsePlacement builds a board from a FEN piece-placement field.
// Any fields after the first space are ignored.
func ParsePlacement(text string) (*Board, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &errors.ParseError{
			Err:      errors.ErrInvalidPlacement,
			Input:    text,
			Offset:   -1,
			Expected: "piece placement",
			Got:      "empty string",
		}
	}
	placement := fields[0]

	b := EmptyBoard()
	row, col := BoardSize-1, 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != BoardSize {
				return nil, placementError(placement, i, fmt.Sprintf("rank %d to have 8 files", row+1), fmt.Sprintf("%d", col))
			}
			if row == 0 {
				return nil, placementError(placement, i, "end of placement", "'/'")
			}
			row--
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > BoardSize {
				return nil, placementError(placement, i, "at most 8 files", fmt.Sprintf("%d", col))
			}
		default:
			kind, colour, ok := pieceFromLetter(c)
			if !ok {
				return nil, placementError(placement, i, "piece letter or digit", fmt.Sprintf("%q", c))
			}
			if col >= BoardSize {
				return nil, placementError(placement, i, "at most 8 files", fmt.Sprintf("%q", c))
			}
			b.Place(NewPiece(kind, colour, NewPosition(row, col)))
			col++
		}
	}

	if row != 0 || col != BoardSize {
		return nil, placementError(placement, len(placement), "8 complete ranks", fmt.Sprintf("rank %d file %d", row+1, col))
	}
	return b, nil
}

func placementError(input string, offset int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidPlacement,
		Input:    input,
		Offset:   offset,
		Expected: expected,
		Got:      got,
	}
}
