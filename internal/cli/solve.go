package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/report"
	"github.com/hailam/queensweep/internal/solver"
	"github.com/hailam/queensweep/internal/store"
)

var ErrInvalidSolution = errors.New("invalid solution")

func (a *app) newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Search every solution and print the statistics and boards",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve,
	}
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	cfg := a.cfg

	lf, err := cfg.LayoutFile()
	if err != nil {
		return err
	}
	start, err := lf.Board()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := log.With().Str("run", runID).Logger()
	logger.Info().Str("layout", lf.Name).Int("pawns", start.PawnCount()).
		Int("workers", cfg.Workers).Str("store", cfg.Store).Msg("run-start")

	st, err := store.Open(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	s := solver.New(solver.WithWorkers(cfg.Workers), solver.WithLogger(logger))
	res, err := s.Run(start, st)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if cfg.Verify {
		if err := verify(start, st); err != nil {
			return err
		}
		logger.Info().Int("solutions", st.Len()).Msg("solutions-verified")
	}

	width, glyphs := a.width(), a.glyphs()

	out := cmd.OutOrStdout()
	if err := report.WriteSummary(out, res, report.RunInfo{ID: runID, Layout: lf.Name}); err != nil {
		return err
	}
	if cfg.Histogram {
		fmt.Fprintln(out)
		if err := report.WriteHistogram(out, res, width); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)

	err = report.WriteSolutions(out, start, st, report.Options{
		Boards: cfg.Boards,
		Limit:  cfg.Limit,
		Glyphs: glyphs,
		Width:  width,
	})
	if err != nil {
		return err
	}

	if cfg.PNGDir != "" {
		n, err := report.WritePNGs(cfg.PNGDir, start, st, cfg.Limit, report.DefaultImageOptions())
		if err != nil {
			return fmt.Errorf("png export: %w", err)
		}
		logger.Info().Int("files", n).Str("dir", cfg.PNGDir).Msg("png-written")
	}
	return nil
}

// verify replays every stored solution from start.
func verify(start board.Board, st store.Store) error {
	return st.Each(func(i int, sol board.Solution) error {
		if err := sol.Valid(start); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidSolution, i+1, err)
		}
		return nil
	})
}
