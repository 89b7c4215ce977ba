// Package memory provides an in-process RunStore, the default backend for
// the engine and the reference implementation for the store contract.
package memory

import (
	"context"
	"sync"

	"github.com/okanara/markov/pkg/domain"
)

// Store keeps run records in a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	runs map[string]domain.RunRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{runs: make(map[string]domain.RunRecord)}
}

// Save stores a copy of the record.
func (s *Store) Save(ctx context.Context, run *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = *run
	return nil
}

// Load returns a copy of the record, or domain.ErrRunNotFound.
func (s *Store) Load(ctx context.Context, id string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &run, nil
}

// Delete removes the record. Deleting a missing record is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
	return nil
}

// List returns the IDs of all stored runs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	return ids, nil
}
