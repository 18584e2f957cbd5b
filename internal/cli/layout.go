package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/report"
)

func (a *app) newLayoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the resolved starting layout",
		Args:  cobra.NoArgs,
		RunE:  a.runLayout,
	}
}

func (a *app) runLayout(cmd *cobra.Command, _ []string) error {
	lf, err := a.cfg.LayoutFile()
	if err != nil {
		return err
	}
	start, err := lf.Board()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sets := []struct {
		name   string
		glyphs board.Glyphs
	}{
		{"unicode", board.DefaultGlyphs},
		{"ascii", board.ASCIIGlyphs},
	}
	for _, set := range sets {
		if err := report.WriteGrid(out, []board.Board{start}, []string{set.name}, set.glyphs, a.width()); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	data, err := lf.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
