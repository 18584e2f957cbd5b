// Package store collects the solutions a search produces.
package store

import (
	"errors"
	"fmt"

	"github.com/hailam/queensweep/internal/board"
)

// Store kinds
const (
	KindMemory = "memory"
	KindBadger = "badger"
)

var (
	ErrNotFound    = errors.New("solution not found")
	ErrUnknownKind = errors.New("unknown store kind")
)

// Store keeps solutions in the order they were added.
type Store interface {
	Add(s board.Solution) error
	Len() int
	Get(i int) (board.Solution, error)
	Each(fn func(i int, s board.Solution) error) error
	Close() error
}

// Kinds lists the accepted store kinds.
func Kinds() []string {
	return []string{KindMemory, KindBadger}
}

// Open creates an empty store of the given kind.
func Open(kind string) (Store, error) {
	switch kind {
	case KindMemory, "":
		return NewMemory(), nil
	case KindBadger:
		return NewBadger()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Memory is a slice-backed Store.
type Memory struct {
	solutions []board.Solution
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Add appends a solution.
func (m *Memory) Add(s board.Solution) error {
	m.solutions = append(m.solutions, s)
	return nil
}

// Len returns the number of stored solutions.
func (m *Memory) Len() int {
	return len(m.solutions)
}

// Get returns solution i, or ErrNotFound when i is out of range.
func (m *Memory) Get(i int) (board.Solution, error) {
	if i < 0 || i >= len(m.solutions) {
		return nil, fmt.Errorf("%w: index %d", ErrNotFound, i)
	}
	return m.solutions[i], nil
}

// Each calls fn for every solution in insertion order and stops at the
// first error fn returns.
func (m *Memory) Each(fn func(i int, s board.Solution) error) error {
	for i, s := range m.solutions {
		if err := fn(i, s); err != nil {
			return err
		}
	}
	return nil
}

// Close drops the stored solutions.
func (m *Memory) Close() error {
	m.solutions = nil
	return nil
}
