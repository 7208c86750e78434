// Package dummykv provides an in-memory core.Store for tests, with optional
// failure injection.
package dummykv

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
)

var errWriteFailed = errors.New("simulated write failure")

type Store struct {
	mu         sync.RWMutex
	table      map[string][]byte
	failWrites bool
}

var _ core.Store = (*Store)(nil)

func Open() *Store {
	return &Store{table: make(map[string][]byte)}
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.table[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (s *Store) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWrites {
		return errWriteFailed
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.table[key] = cp
	return nil
}

func (s *Store) Close() error { return nil }

// FailWrites makes every subsequent Put fail, simulating a full backing store.
func (s *Store) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = fail
}

// Corrupt replaces whatever is stored under key with a payload that will not
// decode.
func (s *Store) Corrupt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[key] = []byte("{not json")
}
