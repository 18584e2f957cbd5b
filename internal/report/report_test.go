package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/queensweep/internal/board"
	"github.com/hailam/queensweep/internal/solver"
	"github.com/hailam/queensweep/internal/store"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

var squareLayout = []string{
	"Q  P    ",
	"        ",
	"        ",
	"P  P    ",
	"        ",
	"        ",
	"      P ",
	"        ",
}

func solveInto(t *testing.T, rows []string) (board.Board, *solver.Results, store.Store) {
	t.Helper()
	start, err := board.ParseLayout(rows, board.DefaultMarkers)
	require.NoError(t, err)

	st := store.NewMemory()
	res, err := solver.New().Run(start, st)
	require.NoError(t, err)
	return start, res, st
}

func TestWriteSummary(t *testing.T) {
	_, res, _ := solveInto(t, board.DefaultLayout)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, res, RunInfo{ID: "run-1", Layout: "original"}))
	out := buf.String()

	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "original")
	assert.Regexp(t, `branches\s+12,345`, out)
	assert.Regexp(t, `solutions\s+1\n`, out)
	assert.Regexp(t, `\n11\s+2,397\n`, out)
	assert.Regexp(t, `\n16\s+1\n`, out)
}

func TestWriteSummaryEmptyBoard(t *testing.T) {
	res := &solver.Results{Workers: 1, DepthBranches: []uint64{}}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, res, RunInfo{}))
	assert.NotContains(t, buf.String(), "move")
	assert.NotContains(t, buf.String(), "run")
}

func TestDepthHistogram(t *testing.T) {
	_, res, _ := solveInto(t, squareLayout)

	h := DepthHistogram(res)
	assert.Equal(t, 20, h.Count)
	assert.Equal(t, 8, h.Max)
	require.Len(t, h.Buckets, 4)
	assert.Equal(t, 3, h.Buckets[0].Count)
	assert.Equal(t, 1.0, h.Buckets[0].Min)
	assert.Equal(t, 2.0, h.Buckets[0].Max)
	assert.Equal(t, 2, h.Buckets[3].Count)
}

func TestWriteHistogram(t *testing.T) {
	_, res, _ := solveInto(t, squareLayout)

	var buf bytes.Buffer
	require.NoError(t, WriteHistogram(&buf, res, 60))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "8")

	buf.Reset()
	require.NoError(t, WriteHistogram(&buf, &solver.Results{}, 60))
	assert.Equal(t, "no branches\n", buf.String())
}

func TestPerLine(t *testing.T) {
	tests := []struct {
		cell, width, want int
	}{
		{8, 80, 8},
		{8, 8, 1},
		{8, 17, 1},
		{8, 18, 2},
		{8, 3, 1},
		{8, 0, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PerLine(tc.cell, tc.width), "cell %d width %d", tc.cell, tc.width)
	}
}

func TestWriteGridFitsWidth(t *testing.T) {
	start, _, st := solveInto(t, board.DefaultLayout)
	sol, err := st.Get(0)
	require.NoError(t, err)

	boards := append([]board.Board{start}, sol.Replay(start)...)
	captions := MoveCaptions(sol)

	for _, width := range []int{1, 8, 30, 80, 200} {
		var buf bytes.Buffer
		require.NoError(t, WriteGrid(&buf, boards, captions, board.DefaultGlyphs, width))

		for _, line := range strings.Split(buf.String(), "\n") {
			n := utf8.RuneCountInString(line)
			assert.True(t, n <= max(width, board.Size), "line %q wider than %d", line, width)
			assert.Equal(t, strings.TrimRight(line, " "), line)
		}
		assert.Equal(t, len(boards), strings.Count(buf.String(), "♛"))
	}
}

func TestWriteGridLayout(t *testing.T) {
	b := board.MustParseLayout(squareLayout, board.DefaultMarkers)

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(&buf, []board.Board{b, b}, []string{"a", "b"}, board.ASCIIGlyphs, 18))
	lines := strings.Split(buf.String(), "\n")

	assert.Equal(t, "a         b", lines[0])
	assert.Equal(t, "Q..P....  Q..P....", lines[1])
	assert.Equal(t, "......P.  ......P.", lines[7])

	buf.Reset()
	require.NoError(t, WriteGrid(&buf, []board.Board{b, b}, nil, board.ASCIIGlyphs, 17))
	lines = strings.Split(buf.String(), "\n")
	assert.Equal(t, "Q..P....", lines[0])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "Q..P....", lines[9])
}

func TestWriteSolutions(t *testing.T) {
	start, _, st := solveInto(t, squareLayout)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Glyphs = board.ASCIIGlyphs
	require.NoError(t, WriteSolutions(&buf, start, st, opts))
	out := buf.String()

	assert.Contains(t, out, "=== Solution 1 ===")
	assert.Contains(t, out, "=== Solution 2 ===")
	assert.Contains(t, out, "move 4")
	assert.Equal(t, 2*5, strings.Count(out, "Q"))
}

func TestWriteSolutionsCompactAndLimit(t *testing.T) {
	start, _, st := solveInto(t, squareLayout)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Boards = false
	opts.Limit = 1
	require.NoError(t, WriteSolutions(&buf, start, st, opts))

	assert.Equal(t, "=== Solution 1 ===\n(0,3) (3,0) (3,3) (6,6)\n... 1 more\n", buf.String())
}

func TestWriteSolutionsNone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSolutions(&buf, board.Default(), store.NewMemory(), DefaultOptions()))
	assert.Equal(t, "no solutions\n", buf.String())
}

func TestRenderSolution(t *testing.T) {
	start, _, st := solveInto(t, squareLayout)
	sol, err := st.Get(0)
	require.NoError(t, err)

	opts := ImageOptions{Square: 10, PerRow: 2, FontSize: 10}
	img, err := RenderSolution(start, sol, opts)
	require.NoError(t, err)

	// five boards in three rows of two
	boardPx := 8 * opts.Square
	assert.Equal(t, imageMargin+2*(boardPx+imageMargin), img.Bounds().Dx())
	assert.Equal(t, imageMargin+3*(10+imageMargin/2+boardPx+imageMargin), img.Bounds().Dy())
}

func TestWritePNGs(t *testing.T) {
	start, _, st := solveInto(t, squareLayout)
	dir := filepath.Join(t.TempDir(), "png")

	n, err := WritePNGs(dir, start, st, 1, ImageOptions{Square: 8, PerRow: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := os.Open(filepath.Join(dir, PNGName(0)))
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, PNGName(1)))
	assert.True(t, os.IsNotExist(err))
}
