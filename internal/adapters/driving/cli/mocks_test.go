package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// cliMockOrchestrator implements driving.SyncOrchestrator for testing.
type cliMockOrchestrator struct {
	outcome  domain.Outcome
	lastSync time.Time
	lastOpts domain.SyncOptions
}

func (m *cliMockOrchestrator) RunCycle(_ context.Context, opts domain.SyncOptions) domain.Outcome {
	m.lastOpts = opts
	return m.outcome
}

func (m *cliMockOrchestrator) LastSyncedAt(_ context.Context) (time.Time, error) {
	return m.lastSync, nil
}

// cliMockSettings implements driven.SettingsStore for testing.
type cliMockSettings struct {
	strings map[string]string
	ints    map[string]int
	bools   map[string]bool
	sets    map[string]any
}

func newCLIMockSettings() *cliMockSettings {
	return &cliMockSettings{
		strings: make(map[string]string),
		ints:    make(map[string]int),
		bools:   make(map[string]bool),
		sets:    make(map[string]any),
	}
}

func (m *cliMockSettings) GetString(key string) string { return m.strings[key] }
func (m *cliMockSettings) GetInt(key string) int       { return m.ints[key] }
func (m *cliMockSettings) GetBool(key string) bool     { return m.bools[key] }
func (m *cliMockSettings) Set(key string, value any) error {
	m.sets[key] = value
	return nil
}
func (m *cliMockSettings) Load() error  { return nil }
func (m *cliMockSettings) Path() string { return "/tmp/config.toml" }

// cliMockLibrary implements driven.LibraryStore for testing.
type cliMockLibrary struct {
	books      []domain.Book
	book       *domain.Book
	highlights []domain.Highlight
	err        error
}

func (m *cliMockLibrary) ListBooks(_ context.Context) ([]domain.Book, error) {
	return m.books, m.err
}

func (m *cliMockLibrary) GetBook(_ context.Context, _ int64) (*domain.Book, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.book == nil {
		return nil, domain.ErrNotFound
	}
	return m.book, nil
}

func (m *cliMockLibrary) SearchHighlights(_ context.Context, _ string, _ int) ([]domain.Highlight, error) {
	return m.highlights, m.err
}

// cliMockHistory implements driven.CycleHistoryStore for testing.
type cliMockHistory struct {
	results []domain.CycleResult
	err     error
}

func (m *cliMockHistory) RecordResult(_ context.Context, result *domain.CycleResult) error {
	m.results = append(m.results, *result)
	return m.err
}

func (m *cliMockHistory) ListResults(_ context.Context, _ int) ([]domain.CycleResult, error) {
	return m.results, m.err
}

func (m *cliMockHistory) PruneHistory(_ context.Context, _ int) error {
	return m.err
}
