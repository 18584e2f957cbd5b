package board

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrLayoutRows      = errors.New("layout must have 8 rows")
	ErrLayoutCols      = errors.New("layout row must have 8 columns")
	ErrNoMover         = errors.New("layout has no mover")
	ErrMultipleMovers  = errors.New("layout has more than one mover")
	ErrUnknownMarker   = errors.New("unknown layout marker")
	ErrDuplicateMarker = errors.New("layout markers must be distinct")
)

// Markers are the characters a layout uses for each kind of square.
type Markers struct {
	Pawn  rune
	Mover rune
	Blank rune
}

// Validate checks that the three markers differ.
func (m Markers) Validate() error {
	switch {
	case m.Pawn == m.Mover:
		return fmt.Errorf("%w: pawn and mover are both %q", ErrDuplicateMarker, m.Pawn)
	case m.Pawn == m.Blank:
		return fmt.Errorf("%w: pawn and blank are both %q", ErrDuplicateMarker, m.Pawn)
	case m.Mover == m.Blank:
		return fmt.Errorf("%w: mover and blank are both %q", ErrDuplicateMarker, m.Mover)
	}
	return nil
}

// DefaultMarkers is the marker set of the built-in puzzle.
var DefaultMarkers = Markers{Pawn: 'P', Mover: 'Q', Blank: ' '}

// DefaultLayout is the 16-pawn puzzle the solver ships with.
var DefaultLayout = []string{
	"QPPP    ",
	"P    P  ",
	"P      P",
	" P    P ",
	"P     P ",
	"P     P ",
	"  P     ",
	"P   P   ",
}

// ParseLayout builds a board from 8 rows of 8 marker characters.
func ParseLayout(rows []string, m Markers) (Board, error) {
	if err := m.Validate(); err != nil {
		return Board{}, err
	}
	if len(rows) != Size {
		return Board{}, fmt.Errorf("%w: got %d", ErrLayoutRows, len(rows))
	}

	pawns := Empty
	mover := NoSquare

	for row, line := range rows {
		if n := utf8.RuneCountInString(line); n != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d", ErrLayoutCols, row, n)
		}

		col := 0
		for _, c := range line {
			sq := NewSquare(row, col)
			switch c {
			case m.Pawn:
				pawns = pawns.Set(sq)
			case m.Mover:
				if mover != NoSquare {
					return Board{}, fmt.Errorf("%w: %s and %s", ErrMultipleMovers, mover, sq)
				}
				mover = sq
			case m.Blank:
			default:
				return Board{}, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownMarker, c, row, col)
			}
			col++
		}
	}

	if mover == NoSquare {
		return Board{}, ErrNoMover
	}

	return NewBoard(pawns, mover), nil
}

// MustParseLayout is like ParseLayout but panics on a malformed layout.
// It is meant for layouts fixed in code.
func MustParseLayout(rows []string, m Markers) Board {
	b, err := ParseLayout(rows, m)
	if err != nil {
		panic(err)
	}
	return b
}

// Default returns the board of the built-in puzzle.
func Default() Board {
	return MustParseLayout(DefaultLayout, DefaultMarkers)
}

// Layout writes the board back out as marker rows.
func (b *Board) Layout(m Markers) []string {
	return b.Rows(Glyphs{Mover: m.Mover, Pawn: m.Pawn, Blank: m.Blank})
}
