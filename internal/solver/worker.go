package solver

import (
	"github.com/hailam/queensweep/internal/board"
)

// Worker walks one subtree depth first on its own board.
// It mutates the board in place and undoes every move before returning,
// so a frame always hands its caller the board it received.
type Worker struct {
	pos   board.Board
	pawns int // pawn count of the search root

	// moves[i] is move number i+1 on the current path
	moves [board.NumSquares]board.Move

	stats *Results
	sink  Sink
}

func newWorker(pos board.Board, pawns int, sink Sink) *Worker {
	return &Worker{
		pos:   pos,
		pawns: pawns,
		stats: newResults(pawns),
		sink:  sink,
	}
}

// recurse expands the current board with left pawns remaining.
func (w *Worker) recurse(left int) error {
	moves := w.pos.NextMoves()
	n := moves.Len()
	depth := w.pawns - left

	w.stats.Nodes++
	w.stats.Branches += uint64(n)
	w.stats.DepthBranches[depth] += uint64(n)
	if n == 0 {
		w.stats.DeadEnds++
		return nil
	}

	for i := 0; i < n; i++ {
		m := moves.Get(i)
		undo := w.pos.MoveTo(m.To())
		w.moves[depth] = m

		var err error
		if left == 1 {
			err = w.emit()
		} else {
			err = w.recurse(left - 1)
		}

		w.pos.Unmove(m.To(), undo)
		if err != nil {
			return err
		}
	}
	return nil
}

// emit records the current path as a solution.
func (w *Worker) emit() error {
	sol := make(board.Solution, w.pawns)
	copy(sol, w.moves[:w.pawns])
	w.stats.Solutions++
	return w.sink.Add(sol)
}
