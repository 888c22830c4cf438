package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marginalia-cli/internal/logger"
)

// cursorTimeFormat is the wire format of the persisted cursor.
const cursorTimeFormat = time.RFC3339Nano

// CursorStore reads and writes the sync cursor: the persisted watermark
// timestamp marking the last point the local state is known to be
// caught up with the remote source.
//
// The cursor is written only after a cycle completes successfully, so it
// is monotonically non-decreasing. No locking beyond the backing store's
// own consistency is needed - at most one cycle runs at a time.
type CursorStore struct {
	store driven.SyncedStore
}

// NewCursorStore creates a cursor store over synced storage.
func NewCursorStore(store driven.SyncedStore) *CursorStore {
	return &CursorStore{store: store}
}

// Read returns the cursor and whether it is present. An absent or
// malformed value is treated as absent ("sync everything"), never as
// an error.
func (c *CursorStore) Read(ctx context.Context) (time.Time, bool, error) {
	raw, err := c.store.GetSynced(ctx, driven.SyncedKeyCursor)
	if errors.Is(err, domain.ErrNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading cursor: %w", err)
	}

	t, err := time.Parse(cursorTimeFormat, raw)
	if err != nil {
		logger.Warn("Ignoring malformed sync cursor %q: %v", raw, err)
		return time.Time{}, false, nil
	}
	return t, true, nil
}

// Write persists the cursor.
func (c *CursorStore) Write(ctx context.Context, t time.Time) error {
	if err := c.store.SetSynced(ctx, driven.SyncedKeyCursor, t.Format(cursorTimeFormat)); err != nil {
		return fmt.Errorf("writing cursor: %w", err)
	}
	return nil
}
