// SPDX-License-Identifier: MIT

// Package memory keeps named numeric vectors across training iterations and
// supports speculative updates: Snapshot, mutate, then Revert or Commit.
//
// Snapshots are deep copies and nest: each Snapshot pushes one level, each
// Revert or Commit pops one. Revert restores the mapping exactly as it was,
// keys added since the snapshot included.
//
// A Store is not synchronized; one goroutine owns it at a time.
package memory

import (
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by Revert and Commit when no snapshot is open.
var ErrNoSnapshot = errors.New("memory: no snapshot")

type state struct {
	keys   []string
	values map[string][]float64
}

func (s state) clone() state {
	out := state{
		keys:   append([]string(nil), s.keys...),
		values: make(map[string][]float64, len(s.values)),
	}
	for k, v := range s.values {
		out.values[k] = append([]float64(nil), v...)
	}

	return out
}

// Store is an insertion-ordered map from name to vector.
type Store struct {
	cur   state
	stack []state
}

// New returns an empty Store.
func New() *Store {
	return &Store{cur: state{values: map[string][]float64{}}}
}

// Set stores a copy of v under key. New keys are appended to Keys().
func (s *Store) Set(key string, v []float64) {
	if _, ok := s.cur.values[key]; !ok {
		s.cur.keys = append(s.cur.keys, key)
	}
	s.cur.values[key] = append([]float64(nil), v...)
}

// Get returns a copy of the vector stored under key.
func (s *Store) Get(key string) ([]float64, bool) {
	v, ok := s.cur.values[key]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), v...), true
}

// Delete removes key. Missing keys are ignored.
func (s *Store) Delete(key string) {
	if _, ok := s.cur.values[key]; !ok {
		return
	}
	delete(s.cur.values, key)
	for i, k := range s.cur.keys {
		if k == key {
			s.cur.keys = append(s.cur.keys[:i], s.cur.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string { return append([]string(nil), s.cur.keys...) }

// Len returns the number of keys.
func (s *Store) Len() int { return len(s.cur.keys) }

// Snapshot pushes a deep copy of the current contents.
func (s *Store) Snapshot() { s.stack = append(s.stack, s.cur.clone()) }

// Revert restores the latest snapshot and pops it.
func (s *Store) Revert() error {
	n := len(s.stack)
	if n == 0 {
		return fmt.Errorf("Revert: %w", ErrNoSnapshot)
	}
	s.cur = s.stack[n-1]
	s.stack = s.stack[:n-1]

	return nil
}

// Commit keeps the current contents and pops the latest snapshot.
func (s *Store) Commit() error {
	n := len(s.stack)
	if n == 0 {
		return fmt.Errorf("Commit: %w", ErrNoSnapshot)
	}
	s.stack = s.stack[:n-1]

	return nil
}

// Depth returns the number of open snapshots.
func (s *Store) Depth() int { return len(s.stack) }
