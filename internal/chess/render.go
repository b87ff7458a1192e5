package chess

import "strings"

// GlyphStyle selects how pieces are drawn by Render.
type GlyphStyle int

const (
	UnicodeGlyphs GlyphStyle = iota // ♔ ♚ ...
	LetterGlyphs                    // K k ... (FEN letters)
)

// Frame pieces for Render.
const (
	frameHeader  = "\n  ┌───┬───┬───┬───┬───┬───┬───┬───┐  "
	frameMiddle  = "\n  ├───┼───┼───┼───┼───┼───┼───┼───┤  "
	frameFooter  = "\n  └───┴───┴───┴───┴───┴───┴───┴───┘  \n"
	frameDivider = " │ "
	frameColumns = "    A   B   C   D   E   F   G   H    "
)

// Render draws the board as a boxed grid with rank 8 at the top, rank
// numbers on the left and file letters underneath.
func (b *Board) Render(style GlyphStyle) string {
	var sb strings.Builder

	sb.WriteString(frameHeader)
	for visualRow := 0; visualRow < BoardSize; visualRow++ {
		row := BoardSize - 1 - visualRow

		sb.WriteByte('\n')
		sb.WriteByte(byte(RankBase + row))
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(frameDivider)
			sb.WriteString(cellText(b, NewPosition(row, col), style))
		}
		sb.WriteString(frameDivider)

		if visualRow == BoardSize-1 {
			sb.WriteString(frameFooter)
			sb.WriteString(frameColumns)
		} else {
			sb.WriteString(frameMiddle)
		}
	}

	return sb.String()
}

// String renders the board with Unicode glyphs.
func (b *Board) String() string {
	return b.Render(UnicodeGlyphs)
}

func cellText(b *Board, pos Position, style GlyphStyle) string {
	piece, ok := b.PieceAt(pos)
	if !ok {
		return " "
	}
	if style == LetterGlyphs {
		return string(piece.Letter())
	}
	return string(piece.Glyph())
}
