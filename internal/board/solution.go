package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrPawnsLeft   = errors.New("pawns left on board")
	ErrWrongLength = errors.New("solution length does not match pawn count")
)

// Solution is the ordered list of moves that clears a board.
type Solution []Move

// Replay returns the board after each move of the solution, starting from start.
func (s Solution) Replay(start Board) []Board {
	boards := make([]Board, 0, len(s))
	b := start
	for _, m := range s {
		b.MoveTo(m.To())
		boards = append(boards, b)
	}
	return boards
}

// Valid checks that every move is legal when played from start and that
// the last one takes the last pawn.
func (s Solution) Valid(start Board) error {
	if len(s) != start.PawnCount() {
		return fmt.Errorf("%w: %d moves for %d pawns", ErrWrongLength, len(s), start.PawnCount())
	}

	b := start
	for i, m := range s {
		if !b.IsLegal(m) {
			return fmt.Errorf("%w: move %d %s", ErrIllegalMove, i+1, m)
		}
		b.MoveTo(m.To())
	}

	if !b.Empty() {
		return fmt.Errorf("%w: %d", ErrPawnsLeft, b.PawnCount())
	}
	return nil
}

// Clone returns a copy that does not share storage with s.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	copy(out, s)
	return out
}

// String returns the moves separated by spaces.
func (s Solution) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Bytes packs the solution one square per byte.
func (s Solution) Bytes() []byte {
	out := make([]byte, len(s))
	for i, m := range s {
		out[i] = byte(m)
	}
	return out
}

// SolutionFromBytes unpacks a solution written by Bytes.
func SolutionFromBytes(data []byte) (Solution, error) {
	s := make(Solution, len(data))
	for i, v := range data {
		if !Square(v).IsValid() {
			return nil, fmt.Errorf("invalid square byte %d at %d", v, i)
		}
		s[i] = Move(v)
	}
	return s, nil
}
