package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// syncedStore implements driven.SyncedStore.
type syncedStore struct {
	store *Store
}

var _ driven.SyncedStore = (*syncedStore)(nil)

// GetSynced retrieves a sync bookkeeping value.
func (s *syncedStore) GetSynced(ctx context.Context, key string) (string, error) {
	var value string
	err := s.store.db.QueryRowContext(ctx,
		"SELECT value FROM synced_state WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("reading synced state: %w", err)
	}
	return value, nil
}

// SetSynced stores or updates a sync bookkeeping value.
func (s *syncedStore) SetSynced(ctx context.Context, key, value string) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO synced_state (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing synced state: %w", err)
	}
	return nil
}
