package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

func TestSyncedStore_GetMissing(t *testing.T) {
	store := NewSyncedStore()

	_, err := store.GetSynced(context.Background(), driven.SyncedKeyCursor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSyncedStore_SetThenGet(t *testing.T) {
	store := NewSyncedStore()
	ctx := context.Background()

	require.NoError(t, store.SetSynced(ctx, driven.SyncedKeyCursor, "2026-06-01T12:00:00Z"))

	value, err := store.GetSynced(ctx, driven.SyncedKeyCursor)
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01T12:00:00Z", value)
}

func TestSyncedStore_Overwrite(t *testing.T) {
	store := NewSyncedStore()
	ctx := context.Background()

	require.NoError(t, store.SetSynced(ctx, driven.SyncedKeyCursor, "first"))
	require.NoError(t, store.SetSynced(ctx, driven.SyncedKeyCursor, "second"))

	value, err := store.GetSynced(ctx, driven.SyncedKeyCursor)
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}
