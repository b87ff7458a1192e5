package chess

// Board holds the 64 squares of a chess board.
type Board struct {
	// Squares in storage order: A8..H8 at 0-7 down to A1..H1 at 56-63.
	squares [NumSquares]Square
}

// NewBoard creates a board with the standard starting arrangement.
func NewBoard() *Board {
	b := EmptyBoard()
	b.SetupInitialPosition()
	return b
}

// EmptyBoard creates a board with no pieces.
func EmptyBoard() *Board {
	return &Board{}
}

// SetupInitialPosition clears the board and places all 32 starting pieces.
func (b *Board) SetupInitialPosition() {
	b.squares = [NumSquares]Square{}
	for _, piece := range WhitePieces() {
		b.Place(piece)
	}
	for _, piece := range BlackPieces() {
		b.Place(piece)
	}
}

// SquareIndex returns the storage index of a position.
func (b *Board) SquareIndex(pos Position) int {
	return pos.Index()
}

// Place puts piece on the square named by its own position, replacing
// whatever was there.
func (b *Board) Place(piece Piece) {
	b.squares[b.SquareIndex(piece.Position())] = OccupiedBy(piece)
}

// PlaceAt puts a copy of piece relocated to pos on that square.
func (b *Board) PlaceAt(pos Position, piece Piece) {
	b.Place(piece.At(pos))
}

// Clear empties the square at pos.
func (b *Board) Clear(pos Position) {
	b.squares[b.SquareIndex(pos)] = EmptySquare()
}

// Square returns the square at pos.
func (b *Board) Square(pos Position) Square {
	return b.squares[b.SquareIndex(pos)]
}

// PieceAt returns the piece at pos, if any.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	return b.Square(pos).Occupant()
}

// Pieces returns every piece on the board in storage order.
func (b *Board) Pieces() []Piece {
	var pieces []Piece
	for _, sq := range b.squares {
		if piece, ok := sq.Occupant(); ok {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
