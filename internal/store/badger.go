package store

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/queensweep/internal/board"
)

// Key layout: keyPrefix followed by the big-endian solution index, so
// iteration order is insertion order.
const keyPrefix = "sol/"

// Badger keeps solutions in an in-memory BadgerDB. Nothing is written to
// disk and the data is gone after Close.
type Badger struct {
	db      *badger.DB
	wb      *badger.WriteBatch
	count   int
	pending bool
}

// NewBadger opens an empty in-memory store.
func NewBadger() (*Badger, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Badger{db: db, wb: db.NewWriteBatch()}, nil
}

func solutionKey(i int) []byte {
	k := make([]byte, len(keyPrefix)+8)
	copy(k, keyPrefix)
	binary.BigEndian.PutUint64(k[len(keyPrefix):], uint64(i))
	return k
}

// Add queues the solution in the current write batch.
func (s *Badger) Add(sol board.Solution) error {
	if err := s.wb.Set(solutionKey(s.count), sol.Bytes()); err != nil {
		return err
	}
	s.count++
	s.pending = true
	return nil
}

// flush commits queued writes so reads see them.
func (s *Badger) flush() error {
	if !s.pending {
		return nil
	}
	if err := s.wb.Flush(); err != nil {
		return err
	}
	s.wb = s.db.NewWriteBatch()
	s.pending = false
	return nil
}

// Len returns the number of solutions added.
func (s *Badger) Len() int {
	return s.count
}

// Get loads solution i.
func (s *Badger) Get(i int) (board.Solution, error) {
	if err := s.flush(); err != nil {
		return nil, err
	}

	var sol board.Solution
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(solutionKey(i))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: index %d", ErrNotFound, i)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			sol, err = board.SolutionFromBytes(val)
			return err
		})
	})

	return sol, err
}

// Each calls fn for every solution in insertion order.
func (s *Badger) Each(fn func(i int, sol board.Solution) error) error {
	if err := s.flush(); err != nil {
		return err
	}

	prefix := []byte(keyPrefix)
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			idx := int(binary.BigEndian.Uint64(item.Key()[len(keyPrefix):]))

			err := item.Value(func(val []byte) error {
				sol, err := board.SolutionFromBytes(val)
				if err != nil {
					return err
				}
				return fn(idx, sol)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Close drops any queued writes and closes the database.
func (s *Badger) Close() error {
	if s.db == nil {
		return nil
	}
	s.wb.Cancel()
	err := s.db.Close()
	s.db = nil
	return err
}
