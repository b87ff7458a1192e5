package chess

// Square is a single board cell holding at most one piece.
type Square struct {
	piece    Piece
	occupied bool
}

// EmptySquare returns an unoccupied square.
func EmptySquare() Square {
	return Square{}
}

// OccupiedBy returns a square holding piece.
func OccupiedBy(piece Piece) Square {
	return Square{piece: piece, occupied: true}
}

// IsEmpty reports whether the square has no occupant.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Occupant returns the piece on the square, if any.
func (s Square) Occupant() (Piece, bool) {
	return s.piece, s.occupied
}
