package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// Ensure SyncedStore implements the interface.
var _ driven.SyncedStore = (*SyncedStore)(nil)

// SyncedStore is an in-memory implementation of driven.SyncedStore.
type SyncedStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewSyncedStore creates a new in-memory synced-state store.
func NewSyncedStore() *SyncedStore {
	return &SyncedStore{
		values: make(map[string]string),
	}
}

// GetSynced retrieves a sync bookkeeping value.
func (s *SyncedStore) GetSynced(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

// SetSynced stores or updates a sync bookkeeping value.
func (s *SyncedStore) SetSynced(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
