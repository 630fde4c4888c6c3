package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

type hookRecorder struct {
	targets []models.SyncTarget
	deleted []bool
	events  []string
}

func (r *hookRecorder) onMutate(_ context.Context, target models.SyncTarget, deleted bool) {
	r.targets = append(r.targets, target)
	r.deleted = append(r.deleted, deleted)
}

func (r *hookRecorder) onEvent(_ models.DataType, targetID string) {
	r.events = append(r.events, targetID)
}

func userOrigin() models.MutationOptions {
	return models.MutationOptions{Origin: models.OriginUser}
}

func syncOrigin() models.MutationOptions {
	return models.MutationOptions{Origin: models.OriginSyncApplied}
}

func TestBookmarkStore_UserMutationsFireHooks(t *testing.T) {
	store := NewBookmarkStore()
	rec := &hookRecorder{}
	store.SetHooks(rec.onMutate, rec.onEvent)
	ctx := context.Background()

	bookmark := models.BrowserBookmark{URL: "https://app.example.org", Title: "App"}
	store.Upsert(ctx, bookmark, userOrigin())
	store.Remove(ctx, bookmark.URL, userOrigin())

	require.Len(t, rec.targets, 2)
	assert.False(t, rec.deleted[0])
	assert.True(t, rec.deleted[1], "removal should push a tombstone")
	assert.Equal(t, []string{"https://app.example.org", "https://app.example.org"}, rec.events)
}

func TestBookmarkStore_SyncAppliedMutationsAreSilent(t *testing.T) {
	store := NewBookmarkStore()
	rec := &hookRecorder{}
	store.SetHooks(rec.onMutate, rec.onEvent)

	store.Upsert(context.Background(), models.BrowserBookmark{URL: "https://app.example.org"}, syncOrigin())

	assert.Empty(t, rec.targets, "sync-applied changes must not feed back into the push pipeline")
	assert.Empty(t, rec.events)

	_, ok := store.Get("https://app.example.org")
	assert.True(t, ok)
}

func TestWatchlistStore_UpsertAndRemove(t *testing.T) {
	store := NewWatchlistStore()
	ctx := context.Background()

	store.Upsert(ctx, models.MarketWatchItem{CoingeckoID: "bitcoin", SortIndex: 1}, syncOrigin())
	store.Upsert(ctx, models.MarketWatchItem{CoingeckoID: "ethereum", SortIndex: 2}, syncOrigin())

	item, ok := store.Get("bitcoin")
	require.True(t, ok)
	assert.Equal(t, 1, item.SortIndex)
	assert.Len(t, store.List(), 2)

	store.Remove(ctx, "bitcoin", syncOrigin())
	_, ok = store.Get("bitcoin")
	assert.False(t, ok)
}

func TestAddressBookStore_IntegritySignature(t *testing.T) {
	store := NewAddressBookStore(logger.Nop(), "test-hash-key")
	ctx := context.Background()

	entry := models.AddressBookEntry{ID: "uuid-1", NetworkID: "evm--1", Address: "0xAbCd", Name: "alice"}
	store.AddEntry(ctx, entry, userOrigin())
	require.NoError(t, store.VerifyIntegrity())

	entry.Name = "renamed"
	require.NoError(t, store.UpdateEntry(ctx, entry, userOrigin()))
	require.NoError(t, store.VerifyIntegrity())

	// out-of-band edit bypassing the store API
	store.mu.Lock()
	tampered := store.entries["uuid-1"]
	tampered.Address = "0xEvil"
	store.entries["uuid-1"] = tampered
	store.mu.Unlock()

	assert.ErrorIs(t, store.VerifyIntegrity(), ErrAddressBookTampered)
}

func TestAddressBookStore_UnknownEntryErrors(t *testing.T) {
	store := NewAddressBookStore(logger.Nop(), "test-hash-key")
	ctx := context.Background()

	missing := models.AddressBookEntry{ID: "uuid-404"}
	assert.ErrorIs(t, store.UpdateEntry(ctx, missing, userOrigin()), ErrAddressBookEntryNotFound)
	assert.ErrorIs(t, store.RemoveEntry(ctx, missing, userOrigin()), ErrAddressBookEntryNotFound)
}

func TestSettingsStore_EnableMirrorsThroughLockTarget(t *testing.T) {
	store := NewSettingsStore()
	rec := &hookRecorder{}
	store.SetHooks(rec.onMutate, rec.onEvent)
	ctx := context.Background()

	assert.False(t, store.IsCloudSyncEnabled())

	store.SetCloudSyncEnabled(ctx, true, userOrigin())
	assert.True(t, store.IsCloudSyncEnabled())

	require.Len(t, rec.targets, 1)
	assert.Equal(t, models.TargetLock{Enabled: true}, rec.targets[0])

	store.SetCloudSyncEnabled(ctx, false, syncOrigin())
	assert.False(t, store.IsCloudSyncEnabled())
	assert.Len(t, rec.targets, 1, "sync-applied toggle must not push")
}
