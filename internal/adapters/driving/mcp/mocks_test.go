package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// mockLibraryStore is a mock implementation of driven.LibraryStore.
type mockLibraryStore struct {
	books      []domain.Book
	book       *domain.Book
	highlights []domain.Highlight
	err        error

	lastQuery string
	lastLimit int
}

func (m *mockLibraryStore) ListBooks(_ context.Context) ([]domain.Book, error) {
	return m.books, m.err
}

func (m *mockLibraryStore) GetBook(_ context.Context, _ int64) (*domain.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.book == nil {
		return nil, domain.ErrNotFound
	}
	return m.book, nil
}

func (m *mockLibraryStore) SearchHighlights(_ context.Context, query string, limit int) ([]domain.Highlight, error) {
	m.lastQuery = query
	m.lastLimit = limit
	return m.highlights, m.err
}

// mockSyncOrchestrator is a mock implementation of driving.SyncOrchestrator.
type mockSyncOrchestrator struct {
	outcome  domain.Outcome
	lastOpts domain.SyncOptions
}

func (m *mockSyncOrchestrator) RunCycle(_ context.Context, opts domain.SyncOptions) domain.Outcome {
	m.lastOpts = opts
	return m.outcome
}

func (m *mockSyncOrchestrator) LastSyncedAt(_ context.Context) (time.Time, error) {
	return time.Time{}, nil
}
