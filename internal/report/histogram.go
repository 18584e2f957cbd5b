package report

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"github.com/hailam/queensweep/internal/solver"
)

// labelWidth is the room the histogram needs left of its bars.
const labelWidth = 24

// DepthHistogram turns the per-move branch counts into a histogram with
// one bucket per move number; bucket [n, n+1) holds move n.
func DepthHistogram(res *solver.Results) histogram.Histogram {
	h := histogram.Histogram{
		Count:   int(res.DepthTotal()),
		Buckets: make([]histogram.Bucket, len(res.DepthBranches)),
	}
	for i, n := range res.DepthBranches {
		h.Buckets[i] = histogram.Bucket{
			Count: int(n),
			Min:   float64(i + 1),
			Max:   float64(i + 2),
		}
	}
	h.Max = lo.MaxBy(h.Buckets, func(a, b histogram.Bucket) bool {
		return a.Count > b.Count
	}).Count
	return h
}

// WriteHistogram draws the per-move branch counts as horizontal bars
// that fit in width columns.
func WriteHistogram(w io.Writer, res *solver.Results, width int) error {
	if res.DepthTotal() == 0 {
		_, err := fmt.Fprintln(w, "no branches")
		return err
	}

	bars := width - labelWidth
	if bars < 10 {
		bars = 10
	}

	h := DepthHistogram(res)
	return histogram.Fprintf(w, h, histogram.Linear(bars), func(v float64) string {
		return fmt.Sprintf("%.0f", v)
	})
}
