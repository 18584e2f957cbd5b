package board

// Direction is one of the eight rays a mover can slide along.
type Direction uint8

// Directions in move generation order. The order fixes the order of
// NextMoves and therefore the order in which solutions are found.
const (
	West Direction = iota
	East
	North
	South
	NorthEast
	SouthEast
	SouthWest
	NorthWest
	NumDirections
)

var directionNames = [NumDirections]string{"W", "E", "N", "S", "NE", "SE", "SW", "NW"}

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	if d >= NumDirections {
		return "?"
	}
	return directionNames[d]
}

// Step returns the row and column delta of one step along the direction.
// North is towards row 0.
func (d Direction) Step() (dRow, dCol int) {
	switch d {
	case West:
		return 0, -1
	case East:
		return 0, 1
	case North:
		return -1, 0
	case South:
		return 1, 0
	case NorthEast:
		return -1, 1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return 1, -1
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}

// increasing reports whether squares along the ray have increasing indices.
// The nearest pawn on an increasing ray is its lowest set bit, otherwise its highest.
func (d Direction) increasing() bool {
	dRow, dCol := d.Step()
	return dRow*Size+dCol > 0
}

// Pre-computed ray tables
var (
	rays       [NumSquares][NumDirections]Bitboard // Squares along the ray, excluding the origin
	increasing [NumDirections]bool
)

func init() {
	initRays()
}

func initRays() {
	for d := West; d < NumDirections; d++ {
		increasing[d] = d.increasing()
	}

	for sq := Square(0); sq < NoSquare; sq++ {
		for d := West; d < NumDirections; d++ {
			dRow, dCol := d.Step()
			ray := Empty
			for r, c := sq.Row()+dRow, sq.Col()+dCol; inBounds(r, c); r, c = r+dRow, c+dCol {
				ray |= SquareBB(NewSquare(r, c))
			}
			rays[sq][d] = ray
		}
	}
}

// Ray returns the squares along direction d from sq, excluding sq itself.
func Ray(sq Square, d Direction) Bitboard {
	return rays[sq][d]
}

// nearest returns the first square of occupied met along direction d from sq,
// or NoSquare if the ray holds none.
func nearest(occupied Bitboard, sq Square, d Direction) Square {
	hits := occupied & rays[sq][d]
	if hits == 0 {
		return NoSquare
	}
	if increasing[d] {
		return hits.LSB()
	}
	return hits.MSB()
}
