package records

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store, used by tests and
// when running without writable disk.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Record // normalized key -> record
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Record)}
}

// Save stores/overwrites the record under the name's key.
func (s *MemoryStore) Save(ctx context.Context, name Name, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name.Key()] = rec
	return nil
}

// Load returns the record stored under the name's key.
func (s *MemoryStore) Load(ctx context.Context, name Name) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.data[name.Key()]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns display names reconstructed from the stored keys.
func (s *MemoryStore) List(ctx context.Context) ([]Name, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]Name, 0, len(s.data))
	for key := range s.data {
		if name, ok := NameFromFileName(key + fileSuffix); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

var _ Store = (*MemoryStore)(nil)
