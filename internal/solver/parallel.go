package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/hailam/queensweep/internal/board"
)

// subtree is the private output of one first-move subtree.
type subtree struct {
	stats *Results
	buf   buffer
}

// runParallel expands the root itself, searches each first-move subtree on
// its own worker, then merges the partial results in first-move order. The
// merged output is identical to a sequential search.
func (s *Solver) runParallel(start board.Board, sink Sink, res *Results) error {
	pawns := start.PawnCount()
	rootMoves := start.NextMoves()
	n := rootMoves.Len()

	res.Workers = max(1, min(s.workers, n))
	res.Nodes++
	res.Branches += uint64(n)
	res.DepthBranches[0] += uint64(n)
	if n == 0 {
		res.DeadEnds++
		return nil
	}

	parts := make([]subtree, n)

	g := errgroup.Group{}
	g.SetLimit(res.Workers)
	for i := 0; i < n; i++ {
		i := i
		m := rootMoves.Get(i)
		part := &parts[i]
		g.Go(func() error {
			s.logger.Debug().Int("worker", i).Str("first", m.String()).Msg("subtree-start")

			w := newWorker(start.Apply(m), pawns, &part.buf)
			w.moves[0] = m
			err := w.recurse(pawns - 1)
			part.stats = w.stats

			s.logger.Debug().Int("worker", i).Str("first", m.String()).
				Uint64("nodes", w.stats.Nodes).Uint64("solutions", w.stats.Solutions).
				Msg("subtree-done")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range parts {
		res.add(parts[i].stats)
		for _, sol := range parts[i].buf.solutions {
			if err := sink.Add(sol); err != nil {
				return err
			}
		}
	}
	return nil
}
