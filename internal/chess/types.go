// Package chess provides the static chess board model: positions, pieces,
// squares and the 64-square board, plus text rendering.
package chess

// Colour represents the colour of a piece.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies one of the six chess piece types.
type Kind int

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase  = '1'
	FileBase  = 'A'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
)

// Home rows, 0-indexed from rank 1.
const (
	whiteBackRow = 0
	whitePawnRow = 1
	blackPawnRow = 6
	blackBackRow = 7
)

// BackRow returns the row holding a colour's non-pawn pieces at the start.
func BackRow(c Colour) int {
	if c == White {
		return whiteBackRow
	}
	return blackBackRow
}

// PawnRow returns the row holding a colour's pawns at the start.
func PawnRow(c Colour) int {
	if c == White {
		return whitePawnRow
	}
	return blackPawnRow
}
