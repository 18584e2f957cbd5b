package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"

	"github.com/hailam/queensweep/internal/board"
)

// gap is the number of blank columns between two boards.
const gap = 2

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// TerminalWidth returns the width of the attached terminal, or fallback
// when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	if w := readline.GetScreenWidth(); w > 0 {
		return w
	}
	return fallback
}

// PerLine returns how many cells of cellWidth columns fit side by side in
// width columns. It is never less than one.
func PerLine(cellWidth, width int) int {
	n := (width + gap) / (cellWidth + gap)
	if n < 1 {
		return 1
	}
	return n
}

// WriteGrid prints boards side by side, as many per line as fit in width
// columns. captions[i], if present, is printed above boards[i].
func WriteGrid(w io.Writer, boards []board.Board, captions []string, g board.Glyphs, width int) error {
	if len(boards) == 0 {
		return nil
	}

	cells := make([][]string, len(boards))
	cellWidth := board.Size
	for i := range boards {
		cells[i] = boards[i].Rows(g)
		if i < len(captions) {
			cellWidth = max(cellWidth, utf8.RuneCountInString(captions[i]))
		}
	}

	hasCaptions := len(captions) > 0
	perLine := PerLine(cellWidth, width)

	for first := 0; first < len(cells); first += perLine {
		last := min(first+perLine, len(cells))

		if hasCaptions {
			line := make([]string, 0, last-first)
			for i := first; i < last; i++ {
				caption := ""
				if i < len(captions) {
					caption = captions[i]
				}
				line = append(line, caption)
			}
			if err := writeLine(w, line, cellWidth); err != nil {
				return err
			}
		}

		for row := 0; row < board.Size; row++ {
			line := make([]string, 0, last-first)
			for i := first; i < last; i++ {
				line = append(line, cells[i][row])
			}
			if err := writeLine(w, line, cellWidth); err != nil {
				return err
			}
		}

		if last < len(cells) {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeLine pads every cell to cellWidth runes, joins them with the gap
// and drops trailing blanks.
func writeLine(w io.Writer, cells []string, cellWidth int) error {
	var sb strings.Builder
	for i, c := range cells {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", gap))
		}
		sb.WriteString(c)
		if pad := cellWidth - utf8.RuneCountInString(c); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	return err
}
