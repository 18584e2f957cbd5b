package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/store"
)

// Options controls how solutions are printed.
type Options struct {
	// Boards prints every intermediate board; otherwise only the moves.
	Boards bool
	// Limit caps the number of printed solutions. Zero prints all.
	Limit  int
	Glyphs board.Glyphs
	Width  int
}

// DefaultOptions prints every solution with boards at DefaultWidth.
func DefaultOptions() Options {
	return Options{
		Boards: true,
		Glyphs: board.DefaultGlyphs,
		Width:  DefaultWidth,
	}
}

// MoveCaptions returns the caption of every board of a replayed solution:
// "start" followed by "move j" for each move.
func MoveCaptions(sol board.Solution) []string {
	captions := make([]string, 0, len(sol)+1)
	captions = append(captions, "start")
	for j := range sol {
		captions = append(captions, fmt.Sprintf("move %d", j+1))
	}
	return captions
}

// WriteSolutions prints the solutions held by st in order. Each one is
// introduced by "=== Solution i ===" and followed by the board after
// every move, starting from start.
func WriteSolutions(w io.Writer, start board.Board, st store.Store, opts Options) error {
	total := st.Len()
	if total == 0 {
		_, err := fmt.Fprintln(w, "no solutions")
		return err
	}

	err := st.Each(func(i int, sol board.Solution) error {
		if opts.Limit > 0 && i >= opts.Limit {
			return errLimit
		}
		return writeSolution(w, i, start, sol, opts)
	})
	if err != nil && !errors.Is(err, errLimit) {
		return err
	}

	if opts.Limit > 0 && total > opts.Limit {
		_, err = fmt.Fprintf(w, "... %s more\n", humanize.Comma(int64(total-opts.Limit)))
		return err
	}
	return nil
}

var errLimit = errors.New("limit reached")

func writeSolution(w io.Writer, i int, start board.Board, sol board.Solution, opts Options) error {
	if _, err := fmt.Fprintf(w, "=== Solution %d ===\n", i+1); err != nil {
		return err
	}

	if !opts.Boards {
		_, err := fmt.Fprintln(w, sol.String())
		return err
	}

	boards := append([]board.Board{start}, sol.Replay(start)...)
	if err := WriteGrid(w, boards, MoveCaptions(sol), opts.Glyphs, opts.Width); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
