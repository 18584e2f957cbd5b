// Package board implements the queen-sweep board using bitboards.
package board

import "fmt"

// Square represents a square on the board (0-63).
// Row-major mapping: row 0 is the first layout line, so A8=0, H8=7, A1=56, H1=63.
type Square uint8

// NoSquare marks an absent square.
const NoSquare Square = 64

// Board dimensions.
const (
	Size       = 8
	NumSquares = Size * Size
)

// NewSquare creates a square from row and column (0-indexed).
func NewSquare(row, col int) Square {
	return Square(row*Size + col)
}

// Row returns the row of the square (0-7, top to bottom).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Col returns the column of the square (0-7, left to right).
func (sq Square) Col() int {
	return int(sq) & 7
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "a8" for row 0, col 0).
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col(), '8'-sq.Row())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	if col < 0 || col > 7 || row < 0 || row > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(row, col), nil
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
