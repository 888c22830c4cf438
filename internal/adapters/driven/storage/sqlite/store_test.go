package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// newTestStore creates a store in a temp directory, closed on cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleBooks() []domain.Book {
	return []domain.Book{
		{
			ID:        42,
			Title:     "The Go Programming Language",
			Author:    "Donovan & Kernighan",
			Category:  "books",
			UpdatedAt: time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
			Highlights: []domain.Highlight{
				{
					ID:            1001,
					BookID:        42,
					Text:          "Do not communicate by sharing memory.",
					Note:          "classic",
					Location:      312,
					LocationType:  "page",
					HighlightedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
					UpdatedAt:     time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
				},
				{
					ID:       1002,
					BookID:   42,
					Text:     "Clear is better than clever.",
					Location: 40,
				},
			},
		},
		{
			ID:        43,
			Title:     "Thinking in Systems",
			Author:    "Donella Meadows",
			Category:  "books",
			UpdatedAt: time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC),
			Highlights: []domain.Highlight{
				{ID: 2001, BookID: 43, Text: "A system is more than the sum of its parts."},
			},
		},
	}
}

func TestStore_MigratesOnReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must not re-run applied migrations.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}

func TestSyncedStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	synced := store.SyncedStore()
	ctx := context.Background()

	_, err := synced.GetSynced(ctx, driven.SyncedKeyCursor)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, synced.SetSynced(ctx, driven.SyncedKeyCursor, "2026-06-01T12:00:00Z"))
	require.NoError(t, synced.SetSynced(ctx, driven.SyncedKeyCursor, "2026-06-01T12:30:00Z"))

	value, err := synced.GetSynced(ctx, driven.SyncedKeyCursor)
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01T12:30:00Z", value)
}

func TestRecordStore_ImportAndRead(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordImporter().ImportRecords(ctx, sampleBooks()))

	books, err := store.LibraryStore().ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Thinking in Systems", books[0].Title, "most recently updated first")
	assert.Empty(t, books[0].Highlights, "list omits highlights")

	book, err := store.LibraryStore().GetBook(ctx, 42)
	require.NoError(t, err)
	require.Len(t, book.Highlights, 2)
	assert.Equal(t, int64(1002), book.Highlights[0].ID, "ordered by location")
	assert.Equal(t, "classic", book.Highlights[1].Note)
}

func TestRecordStore_ImportIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordImporter().ImportRecords(ctx, sampleBooks()))

	// Re-import an overlapping window with an edited highlight.
	updated := sampleBooks()
	updated[0].Highlights[0].Note = "revised note"
	require.NoError(t, store.RecordImporter().ImportRecords(ctx, updated))

	book, err := store.LibraryStore().GetBook(ctx, 42)
	require.NoError(t, err)
	require.Len(t, book.Highlights, 2, "no duplicates on re-import")
	assert.Equal(t, "revised note", book.Highlights[1].Note)
}

func TestRecordStore_GetBookMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LibraryStore().GetBook(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStore_SearchHighlights(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.RecordImporter().ImportRecords(ctx, sampleBooks()))

	hits, err := store.LibraryStore().SearchHighlights(ctx, "memory", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1001), hits[0].ID)

	// Notes are searched too.
	hits, err = store.LibraryStore().SearchHighlights(ctx, "classic", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hits, err = store.LibraryStore().SearchHighlights(ctx, "no such text", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRecordStore_RegisterKinds(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SchemaRegistrar().RegisterKinds(ctx, domain.DefaultRecordKinds()))

	// Registering again updates in place.
	require.NoError(t, store.SchemaRegistrar().RegisterKinds(ctx, domain.DefaultRecordKinds()))

	err := store.SchemaRegistrar().RegisterKinds(ctx, []domain.RecordKind{{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCycleHistoryStore_RecordListPrune(t *testing.T) {
	store := newTestStore(t)
	history := store.CycleHistoryStore()
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := history.RecordResult(ctx, &domain.CycleResult{
			ID:           string(rune('a' + i)),
			Trigger:      domain.TriggerScheduled,
			StartedAt:    base.Add(time.Duration(i) * time.Hour),
			EndedAt:      base.Add(time.Duration(i)*time.Hour + time.Minute),
			Outcome:      domain.OutcomeSuccess,
			BooksFetched: i,
		})
		require.NoError(t, err)
	}

	results, err := history.ListResults(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "e", results[0].ID, "most recent first")
	assert.Equal(t, 4, results[0].BooksFetched)

	require.NoError(t, history.PruneHistory(ctx, 3))

	results, err = history.ListResults(ctx, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "c", results[2].ID)
}

func TestCycleHistoryStore_RecordInvalid(t *testing.T) {
	store := newTestStore(t)

	err := store.CycleHistoryStore().RecordResult(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.CycleHistoryStore().RecordResult(context.Background(), &domain.CycleResult{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
