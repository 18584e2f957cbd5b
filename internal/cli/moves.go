package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/report"
)

func (a *app) newMovesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "moves",
		Short: "Print the starting board and its legal first moves",
		Args:  cobra.NoArgs,
		RunE:  a.runMoves,
	}
}

func (a *app) runMoves(cmd *cobra.Command, _ []string) error {
	lf, err := a.cfg.LayoutFile()
	if err != nil {
		return err
	}
	start, err := lf.Board()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.WriteGrid(out, []board.Board{start}, []string{lf.Name}, a.glyphs(), a.width()); err != nil {
		return err
	}
	fmt.Fprintln(out)

	moves := start.NextMoves()
	fmt.Fprintf(out, "%d moves from %s\n", moves.Len(), start.Mover.String())
	n := 0
	for d := board.West; d < board.NumDirections; d++ {
		m, ok := start.MoveIn(d)
		if !ok {
			continue
		}
		n++
		fmt.Fprintf(out, "%d. %-2s %s %s\n", n, d, m.String(), m.Algebraic())
	}
	return nil
}

func (a *app) glyphs() board.Glyphs {
	if a.cfg.ASCII {
		return board.ASCIIGlyphs
	}
	return board.DefaultGlyphs
}

func (a *app) width() int {
	if a.cfg.Width > 0 {
		return a.cfg.Width
	}
	return report.TerminalWidth(report.DefaultWidth)
}
