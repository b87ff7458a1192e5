package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Position is a square coordinate on the board. Row 0 is rank 1 and
// column 0 is file A. Positions are immutable and always in range.
type Position struct {
	row uint8
	col uint8
}

// NewPosition creates the position at row and col.
// It panics if either value is outside 0-7.
func NewPosition(row, col int) Position {
	if row < 0 || row >= BoardSize {
		panic(fmt.Sprintf("chess: row %d out of range 0-7", row))
	}
	if col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("chess: col %d out of range 0-7", col))
	}
	return Position{row: uint8(row), col: uint8(col)}
}

// ParsePosition decodes square text such as "E4": an uppercase file
// letter A-H followed by a rank digit 1-8.
func ParsePosition(text string) (Position, error) {
	if len(text) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    text,
			Offset:   -1,
			Expected: "two characters",
			Got:      fmt.Sprintf("%d", len(text)),
		}
	}

	file, rank := text[0], text[1]
	if file < FirstFile || file > LastFile {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    text,
			Offset:   0,
			Expected: "file A-H",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < '0' || rank > '9' {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    text,
			Offset:   1,
			Expected: "rank digit",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	if rank < FirstRank || rank > LastRank {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidPosition,
			Input:    text,
			Offset:   1,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}

	return Position{row: rank - RankBase, col: file - FileBase}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed text.
func MustParsePosition(text string) Position {
	p, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionFromIndex is the inverse of Position.Index.
// It panics if i is outside 0-63.
func PositionFromIndex(i int) Position {
	if i < 0 || i >= NumSquares {
		panic(fmt.Sprintf("chess: square index %d out of range 0-63", i))
	}
	return NewPosition(BoardSize-1-i/BoardSize, i%BoardSize)
}

// Row returns the 0-indexed row (rank - 1).
func (p Position) Row() int {
	return int(p.row)
}

// Col returns the 0-indexed column (file - 'A').
func (p Position) Col() int {
	return int(p.col)
}

// File returns the file letter, 'A' to 'H'.
func (p Position) File() byte {
	return FileBase + p.col
}

// Rank returns the rank digit, '1' to '8'.
func (p Position) Rank() byte {
	return RankBase + p.row
}

// Index returns the board storage index: rank 8 occupies 0-7, rank 1 56-63.
func (p Position) Index() int {
	return (BoardSize-1-int(p.row))*BoardSize + int(p.col)
}

// Compare orders positions by row, then column.
func (p Position) Compare(other Position) int {
	switch {
	case p.row != other.row:
		if p.row < other.row {
			return -1
		}
		return 1
	case p.col < other.col:
		return -1
	case p.col > other.col:
		return 1
	}
	return 0
}

// String returns the square in file-then-rank form, e.g. "H1".
func (p Position) String() string {
	return string([]byte{p.File(), p.Rank()})
}

// RankFile returns the square in rank-then-file form, e.g. "1H".
func (p Position) RankFile() string {
	return string([]byte{p.Rank(), p.File()})
}
