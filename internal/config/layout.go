package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/hailam/queensweep/internal/board"
)

var ErrBadMarker = errors.New("marker must be a single character")

// MarkerSpec is the marker section of a layout file. Empty fields fall
// back to the default markers.
type MarkerSpec struct {
	Pawn  string `yaml:"pawn,omitempty"`
	Mover string `yaml:"mover,omitempty"`
	Blank string `yaml:"blank,omitempty"`
}

// LayoutFile is a puzzle stored as YAML:
//
//	name: original
//	markers: {pawn: "P", mover: "Q", blank: " "}
//	rows: ["QPPP    ", ...]
type LayoutFile struct {
	Name    string     `yaml:"name"`
	Markers MarkerSpec `yaml:"markers,omitempty"`
	Rows    []string   `yaml:"rows"`
}

// DefaultLayoutFile describes the built-in puzzle.
func DefaultLayoutFile() *LayoutFile {
	rows := make([]string, len(board.DefaultLayout))
	copy(rows, board.DefaultLayout)
	return &LayoutFile{
		Name: "default",
		Markers: MarkerSpec{
			Pawn:  string(board.DefaultMarkers.Pawn),
			Mover: string(board.DefaultMarkers.Mover),
			Blank: string(board.DefaultMarkers.Blank),
		},
		Rows: rows,
	}
}

// ParseLayoutFile decodes a YAML layout.
func ParseLayoutFile(data []byte) (*LayoutFile, error) {
	lf := &LayoutFile{}
	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	return lf, nil
}

// LoadLayoutFile reads and decodes a YAML layout file.
func LoadLayoutFile(path string) (*LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	lf, err := ParseLayoutFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if lf.Name == "" {
		lf.Name = path
	}
	return lf, nil
}

// Marshal encodes the layout as YAML.
func (lf *LayoutFile) Marshal() ([]byte, error) {
	return yaml.Marshal(lf)
}

func markerRune(name, s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s marker %q", ErrBadMarker, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// BoardMarkers resolves the marker section against the defaults.
func (lf *LayoutFile) BoardMarkers() (board.Markers, error) {
	var (
		m   board.Markers
		err error
	)
	if m.Pawn, err = markerRune("pawn", lf.Markers.Pawn, board.DefaultMarkers.Pawn); err != nil {
		return m, err
	}
	if m.Mover, err = markerRune("mover", lf.Markers.Mover, board.DefaultMarkers.Mover); err != nil {
		return m, err
	}
	if m.Blank, err = markerRune("blank", lf.Markers.Blank, board.DefaultMarkers.Blank); err != nil {
		return m, err
	}
	if err := m.Validate(); err != nil {
		return m, fmt.Errorf("layout %s: %w", lf.Name, err)
	}
	return m, nil
}

// Board parses the layout rows into a starting board.
func (lf *LayoutFile) Board() (board.Board, error) {
	m, err := lf.BoardMarkers()
	if err != nil {
		return board.Board{}, err
	}
	b, err := board.ParseLayout(lf.Rows, m)
	if err != nil {
		return board.Board{}, fmt.Errorf("layout %s: %w", lf.Name, err)
	}
	return b, nil
}

// LayoutFile returns the layout the config points at, or the built-in one.
func (c *Config) LayoutFile() (*LayoutFile, error) {
	if c.Layout == "" {
		return DefaultLayoutFile(), nil
	}
	return LoadLayoutFile(c.Layout)
}
