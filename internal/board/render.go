package board

import "strings"

// Glyphs are the characters used to draw a board.
type Glyphs struct {
	Mover rune
	Pawn  rune
	Blank rune
}

var (
	// DefaultGlyphs draws chess symbols.
	DefaultGlyphs = Glyphs{Mover: '♛', Pawn: '♟', Blank: '·'}
	// ASCIIGlyphs is for terminals without the chess symbols.
	ASCIIGlyphs = Glyphs{Mover: 'Q', Pawn: 'P', Blank: '.'}
)

// Rows returns one string per board row, row 0 first.
func (b *Board) Rows(g Glyphs) []string {
	rows := make([]string, Size)
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		sb.Reset()
		for col := 0; col < Size; col++ {
			sq := NewSquare(row, col)
			switch {
			case sq == b.Mover:
				sb.WriteRune(g.Mover)
			case b.Pawns.IsSet(sq):
				sb.WriteRune(g.Pawn)
			default:
				sb.WriteRune(g.Blank)
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// String renders the board with DefaultGlyphs, one row per line.
func (b Board) String() string {
	return strings.Join(b.Rows(DefaultGlyphs), "\n") + "\n"
}
