package driven

import "context"

// SyncedStore persists small key/value pairs in storage that the host
// knowledge base replicates across the user's devices. The sync cursor
// lives here so every device agrees on the last caught-up point.
type SyncedStore interface {
	// GetSynced retrieves a value by key.
	// Returns domain.ErrNotFound if the key does not exist.
	GetSynced(ctx context.Context, key string) (string, error)

	// SetSynced stores a value under a key, overwriting any previous value.
	SetSynced(ctx context.Context, key, value string) error
}

// SyncedKeyCursor is the fixed key under which the sync cursor is stored.
const SyncedKeyCursor = "sync.last_synced_at"
