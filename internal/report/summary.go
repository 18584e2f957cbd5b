// Package report prints search results and solution boards.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/hailam/queensweep/internal/solver"
)

// RunInfo identifies a run in the summary header.
type RunInfo struct {
	ID     string
	Layout string
}

// WriteSummary prints the aggregate statistics of a search followed by
// the branch count of every move number.
func WriteSummary(w io.Writer, res *solver.Results, info RunInfo) error {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)

	if info.ID != "" {
		fmt.Fprintf(tw, "run\t%s\n", info.ID)
	}
	if info.Layout != "" {
		fmt.Fprintf(tw, "layout\t%s\n", info.Layout)
	}
	fmt.Fprintf(tw, "pawns\t%d\n", res.Pawns)
	fmt.Fprintf(tw, "branches\t%s\n", humanize.Comma(int64(res.Branches)))
	fmt.Fprintf(tw, "nodes\t%s\n", humanize.Comma(int64(res.Nodes)))
	fmt.Fprintf(tw, "leaves\t%s (%s dead ends)\n",
		humanize.Comma(int64(res.Leaves())), humanize.Comma(int64(res.DeadEnds)))
	fmt.Fprintf(tw, "solutions\t%s\n", humanize.Comma(int64(res.Solutions)))
	fmt.Fprintf(tw, "workers\t%d\n", res.Workers)
	fmt.Fprintf(tw, "elapsed\t%s\n", res.Elapsed)

	if len(res.DepthBranches) > 0 {
		fmt.Fprintf(tw, "\nmove\tbranches\n")
		for i, n := range res.DepthBranches {
			fmt.Fprintf(tw, "%d\t%s\n", i+1, humanize.Comma(int64(n)))
		}
	}

	return tw.Flush()
}
