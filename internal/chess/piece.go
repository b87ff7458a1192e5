package chess

import (
	"fmt"
	"strings"
	"unicode"
)

// Piece is one chess piece: its kind, its colour and the position it
// occupies. Pieces are values; copying a Piece never shares state.
type Piece struct {
	kind   Kind
	colour Colour
	pos    Position
}

// NewPiece creates a piece of the given kind.
func NewPiece(kind Kind, colour Colour, pos Position) Piece {
	return Piece{kind: kind, colour: colour, pos: pos}
}

// NewKing creates a king.
func NewKing(colour Colour, pos Position) Piece { return NewPiece(King, colour, pos) }

// NewQueen creates a queen.
func NewQueen(colour Colour, pos Position) Piece { return NewPiece(Queen, colour, pos) }

// NewRook creates a rook.
func NewRook(colour Colour, pos Position) Piece { return NewPiece(Rook, colour, pos) }

// NewBishop creates a bishop.
func NewBishop(colour Colour, pos Position) Piece { return NewPiece(Bishop, colour, pos) }

// NewKnight creates a knight.
func NewKnight(colour Colour, pos Position) Piece { return NewPiece(Knight, colour, pos) }

// NewPawn creates a pawn.
func NewPawn(colour Colour, pos Position) Piece { return NewPiece(Pawn, colour, pos) }

// backRank lists the non-pawn pieces from file A to file H.
var backRank = [BoardSize]func(Colour, Position) Piece{
	NewRook, NewKnight, NewBishop, NewQueen, NewKing, NewBishop, NewKnight, NewRook,
}

// backRankPiece returns the constructor for the piece starting on col.
func backRankPiece(col int) func(Colour, Position) Piece {
	if col < 0 || col >= BoardSize {
		panic(fmt.Sprintf("chess: back rank column %d out of range 0-7", col))
	}
	return backRank[col]
}

// StandardSetup returns the 16 starting pieces of a colour: the back rank
// from file A to H, then the pawns from file A to H.
func StandardSetup(colour Colour) []Piece {
	pieces := make([]Piece, 0, 2*BoardSize)

	back := BackRow(colour)
	for col := 0; col < BoardSize; col++ {
		pieces = append(pieces, backRankPiece(col)(colour, NewPosition(back, col)))
	}

	pawns := PawnRow(colour)
	for col := 0; col < BoardSize; col++ {
		pieces = append(pieces, NewPawn(colour, NewPosition(pawns, col)))
	}

	return pieces
}

// WhitePieces returns White's starting pieces.
func WhitePieces() []Piece {
	return StandardSetup(White)
}

// BlackPieces returns Black's starting pieces.
func BlackPieces() []Piece {
	return StandardSetup(Black)
}

// Kind returns the piece type.
func (p Piece) Kind() Kind {
	return p.kind
}

// Colour returns the owning colour.
func (p Piece) Colour() Colour {
	return p.colour
}

// Position returns where the piece sits.
func (p Piece) Position() Position {
	return p.pos
}

// At returns a copy of the piece located at pos.
func (p Piece) At(pos Position) Piece {
	p.pos = pos
	return p
}

// glyphs is indexed by colour, then kind.
var glyphs = [2][NumKinds]rune{
	White: {King: '♔', Queen: '♕', Rook: '♖', Bishop: '♗', Knight: '♘', Pawn: '♙'},
	Black: {King: '♚', Queen: '♛', Rook: '♜', Bishop: '♝', Knight: '♞', Pawn: '♟'},
}

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() rune {
	return glyphs[p.colour][p.kind]
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String describes the piece, e.g. "white king on E1".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s on %s",
		strings.ToLower(p.colour.String()), strings.ToLower(p.kind.String()), p.pos)
}

// pieceFromLetter decodes a FEN letter into a kind and colour.
func pieceFromLetter(c byte) (Kind, Colour, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for k := King; k < NumKinds; k++ {
		if k.Letter() == c {
			return k, colour, true
		}
	}
	return 0, 0, false
}
