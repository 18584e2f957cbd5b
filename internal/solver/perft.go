package solver

import "github.com/hailam/queensweep/internal/board"

// Perft counts the move sequences of exactly depth moves from b.
// This is the standard way to verify move generation correctness.
func Perft(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := b.NextMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := b.MoveTo(m.To())
		nodes += Perft(b, depth-1)
		b.Unmove(m.To(), undo)
	}
	return nodes
}
