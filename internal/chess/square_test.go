package chess

import "testing"

func TestSquare(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		sq := EmptySquare()
		if !sq.IsEmpty() {
			t.Error("EmptySquare().IsEmpty() = false")
		}
		if _, ok := sq.Occupant(); ok {
			t.Error("EmptySquare().Occupant() reported a piece")
		}
		if sq != (Square{}) {
			t.Error("EmptySquare() differs from the zero Square")
		}
	})

	t.Run("occupied", func(t *testing.T) {
		piece := NewBishop(Black, NewPosition(7, 2))
		sq := OccupiedBy(piece)
		if sq.IsEmpty() {
			t.Error("OccupiedBy().IsEmpty() = true")
		}
		got, ok := sq.Occupant()
		if !ok || got != piece {
			t.Errorf("Occupant() = %v, %v; want %v, true", got, ok, piece)
		}
	})
}
