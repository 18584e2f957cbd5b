// Package solver enumerates every way to clear a queen-sweep board.
package solver

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/hailam/queensweep/internal/board"
)

// Sink receives solutions in the order they are found.
type Sink interface {
	Add(board.Solution) error
}

// Results holds the statistics of one complete search.
type Results struct {
	Pawns int
	// Branches is the total number of moves generated over the whole tree.
	Branches uint64
	// DepthBranches[i] is the number of moves generated for move number i+1.
	DepthBranches []uint64
	// Nodes is the number of positions expanded.
	Nodes uint64
	// DeadEnds counts expanded positions that had pawns left but no move.
	DeadEnds  uint64
	Solutions uint64
	// Workers is the number of workers that actually searched.
	Workers   int
	Elapsed   time.Duration
}

func newResults(pawns int) *Results {
	return &Results{
		Pawns:         pawns,
		DepthBranches: make([]uint64, pawns),
	}
}

// Leaves returns the number of leaves of the search tree.
func (r *Results) Leaves() uint64 {
	return r.Solutions + r.DeadEnds
}

// DepthTotal returns the sum of the per-depth branch counts.
func (r *Results) DepthTotal() uint64 {
	return lo.Sum(r.DepthBranches)
}

func (r *Results) add(o *Results) {
	r.Branches += o.Branches
	r.Nodes += o.Nodes
	r.DeadEnds += o.DeadEnds
	r.Solutions += o.Solutions
	for i, n := range o.DepthBranches {
		r.DepthBranches[i] += n
	}
}

// Solver runs the exhaustive search.
type Solver struct {
	workers int
	logger  zerolog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers splits the search over n workers at the first move.
// Values below one mean a single worker, and no more workers run than the
// start board has first moves.
//
// With more than one worker, each first-move subtree buffers its solutions
// in memory and the sink only receives them once every subtree is done, so
// a disk-backed or size-limited sink does not bound memory in that mode.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) {
		s.logger = l
	}
}

// New creates a solver. By default it searches on one worker and logs
// through the global zerolog logger.
func New(opts ...Option) *Solver {
	s := &Solver{
		workers: 1,
		logger:  log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the number of workers the solver uses.
func (s *Solver) Workers() int {
	return s.workers
}

// Run searches every move sequence from start and hands each complete one
// to sink. The only errors come from sink.
func (s *Solver) Run(start board.Board, sink Sink) (*Results, error) {
	began := time.Now()
	pawns := start.PawnCount()
	res := newResults(pawns)
	res.Workers = s.workers

	s.logger.Debug().Int("pawns", pawns).Int("workers", s.workers).
		Str("mover", start.Mover.String()).Msg("search-start")

	var err error
	switch {
	case pawns == 0:
		// Nothing to take: no expansion, no solution.
	case s.workers == 1 || pawns == 1:
		res.Workers = 1
		w := newWorker(start, pawns, sink)
		err = w.recurse(pawns)
		res.add(w.stats)
	default:
		err = s.runParallel(start, sink, res)
	}

	res.Elapsed = time.Since(began)
	if err != nil {
		s.logger.Err(err).Msg("search-aborted")
		return nil, err
	}

	s.logger.Info().
		Uint64("branches", res.Branches).
		Uint64("solutions", res.Solutions).
		Dur("elapsed", res.Elapsed).
		Msg("search-complete")
	return res, nil
}

// Collect runs the search and returns the solutions in memory.
func (s *Solver) Collect(start board.Board) (*Results, []board.Solution) {
	buf := &buffer{}
	res, err := s.Run(start, buf)
	if err != nil {
		// buffer.Add never fails
		panic(err)
	}
	return res, buf.solutions
}

// Solve runs a sequential search and collects the solutions in memory.
func Solve(start board.Board) (*Results, []board.Solution) {
	return New().Collect(start)
}

// buffer is an in-memory Sink.
type buffer struct {
	solutions []board.Solution
}

func (b *buffer) Add(s board.Solution) error {
	b.solutions = append(b.solutions, s)
	return nil
}
