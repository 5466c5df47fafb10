package repository

import (
	"context"
	"sync"

	"github.com/retrobank/backoffice/internal/domain"
)

// MemoryStore is the in-process backend used by tests. It round-trips the
// snapshot through its JSON encoding so callers never alias stored state.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore starts empty; the first Load seeds the demo dataset.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// NewMemoryStoreWith starts from the given snapshot instead of the seed.
func NewMemoryStoreWith(snap domain.Snapshot) (*MemoryStore, error) {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{data: data}, nil
}

func (s *MemoryStore) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		snap, err := SeedSnapshot()
		if err != nil {
			return nil, err
		}
		data, err := encodeSnapshot(snap)
		if err != nil {
			return nil, err
		}
		s.data = data
	}
	return decodeSnapshot(s.data)
}

func (s *MemoryStore) Save(_ context.Context, snap domain.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}
