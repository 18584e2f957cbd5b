package board

import "fmt"

// Board holds the pawns still on the board and the mover's square.
// The mover's square is never set in Pawns.
type Board struct {
	Pawns Bitboard
	Mover Square
}

// NewBoard creates a board from a pawn set and a mover square.
// A pawn on the mover's square is dropped.
func NewBoard(pawns Bitboard, mover Square) Board {
	return Board{Pawns: pawns.Clear(mover), Mover: mover}
}

// Occupied returns true if a pawn occupies (row, col).
// Coordinates outside the board are a programming error.
func (b *Board) Occupied(row, col int) bool {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("board: square (%d,%d) out of range", row, col))
	}
	return b.Pawns.IsSet(NewSquare(row, col))
}

// MoverRow returns the mover's row.
func (b *Board) MoverRow() int {
	return b.Mover.Row()
}

// MoverCol returns the mover's column.
func (b *Board) MoverCol() int {
	return b.Mover.Col()
}

// PawnCount returns the number of pawns left.
func (b *Board) PawnCount() int {
	return b.Pawns.PopCount()
}

// Empty returns true once every pawn has been taken.
func (b *Board) Empty() bool {
	return b.Pawns.Empty()
}

// MoveTo relocates the mover to sq and removes the pawn there.
// The caller must pass a square produced by NextMoves.
func (b *Board) MoveTo(sq Square) UndoInfo {
	undo := UndoInfo{From: b.Mover}
	b.Mover = sq
	b.Pawns = b.Pawns.Clear(sq)
	return undo
}

// Unmove reverses MoveTo(sq), putting the pawn back and the mover on its old square.
func (b *Board) Unmove(sq Square, undo UndoInfo) {
	b.Pawns = b.Pawns.Set(sq)
	b.Mover = undo.From
}

// Apply returns a copy of the board with m played.
func (b Board) Apply(m Move) Board {
	b.MoveTo(m.To())
	return b
}

// MoveIn returns the nearest pawn along direction d from the mover.
func (b *Board) MoveIn(d Direction) (Move, bool) {
	sq := nearest(b.Pawns, b.Mover, d)
	return Move(sq), sq != NoSquare
}

// NextMoves returns the nearest pawn along each ray from the mover, in
// Direction order. Directions without a pawn contribute nothing.
func (b *Board) NextMoves() MoveList {
	var ml MoveList
	for d := West; d < NumDirections; d++ {
		if m, ok := b.MoveIn(d); ok {
			ml.Add(m)
		}
	}
	return ml
}

// IsLegal returns true if m is one of the board's next moves.
func (b *Board) IsLegal(m Move) bool {
	if !m.To().IsValid() {
		return false
	}
	ml := b.NextMoves()
	return ml.Contains(m)
}
