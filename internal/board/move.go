package board

import "fmt"

// Move is the square the mover slides to. The origin is implied by the
// board the move was generated on.
type Move uint8

// NoMove represents an invalid or null move.
const NoMove = Move(NoSquare)

// NewMove creates a move to the given row and column.
func NewMove(row, col int) Move {
	return Move(NewSquare(row, col))
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m)
}

// Row returns the destination row.
func (m Move) Row() int {
	return m.To().Row()
}

// Col returns the destination column.
func (m Move) Col() int {
	return m.To().Col()
}

// String returns the move as "(row,col)".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	return fmt.Sprintf("(%d,%d)", m.Row(), m.Col())
}

// Algebraic returns the destination in algebraic notation.
func (m Move) Algebraic() string {
	return m.To().String()
}

// MaxMoves is the most moves a single position can offer, one per direction.
const MaxMoves = int(NumDirections)

// MoveList is a fixed-size list of moves to avoid allocations.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add adds a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains returns true if the list contains the move.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the moves as a slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UndoInfo stores information needed to undo a move.
type UndoInfo struct {
	From Square
}
