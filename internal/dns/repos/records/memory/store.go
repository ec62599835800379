// Package memory provides an in-memory HashStore adapter. It backs unit
// tests and dependency-free deployments; data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/redstore-dns/redstore/internal/dns/repos/records"
)

// Store is a concurrency-safe in-memory HashStore.
type Store struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
	//   storage key → field tag → raw JSON array
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string]map[string][]byte)}
}

func (s *Store) GetField(_ context.Context, key, field string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	raw, ok := fields[field]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *Store) GetAll(_ context.Context, key string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := s.data[key]
	out := make(map[string][]byte, len(fields))
	for tag, raw := range fields {
		cp := make([]byte, len(raw))
		copy(cp, raw)
		out[tag] = cp
	}
	return out, nil
}

func (s *Store) SetField(_ context.Context, key, field string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.data[key]
	if !ok {
		fields = make(map[string][]byte)
		s.data[key] = fields
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	fields[field] = cp
	return nil
}

func (s *Store) DeleteFields(_ context.Context, key string, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.data[key]
	if !ok {
		return nil
	}
	for _, f := range fields {
		delete(existing, f)
	}
	// no dangling empty keys
	if len(existing) == 0 {
		delete(s.data, key)
	}
	return nil
}

func (s *Store) DeleteKey(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *Store) Close() error { return nil }

// Len returns the number of storage keys currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Ensure Store implements records.HashStore at compile time
var _ records.HashStore = (*Store)(nil)
