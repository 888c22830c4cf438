package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// Ensure CycleHistoryStore implements the interface.
var _ driven.CycleHistoryStore = (*CycleHistoryStore)(nil)

// CycleHistoryStore is an in-memory implementation of driven.CycleHistoryStore.
type CycleHistoryStore struct {
	mu      sync.RWMutex
	results []domain.CycleResult // Oldest first
}

// NewCycleHistoryStore creates a new in-memory cycle history store.
func NewCycleHistoryStore() *CycleHistoryStore {
	return &CycleHistoryStore{}
}

// RecordResult logs a completed cycle.
func (s *CycleHistoryStore) RecordResult(_ context.Context, result *domain.CycleResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
	return nil
}

// ListResults returns recent cycle results, most recent first.
func (s *CycleHistoryStore) ListResults(_ context.Context, limit int) ([]domain.CycleResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := len(s.results)
	if limit > 0 && limit < count {
		count = limit
	}

	results := make([]domain.CycleResult, 0, count)
	for i := len(s.results) - 1; i >= 0 && len(results) < count; i-- {
		results = append(results, s.results[i])
	}
	return results, nil
}

// PruneHistory keeps only the most recent 'keep' results.
func (s *CycleHistoryStore) PruneHistory(_ context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if excess := len(s.results) - keep; excess > 0 {
		s.results = append([]domain.CycleResult(nil), s.results[excess:]...)
	}
	return nil
}
