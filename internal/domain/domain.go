// Package domain holds the local stores for the record kinds covered by
// cloud sync: wallets and their derived accounts, the address book, browser
// bookmarks, custom networks/RPCs/tokens, the market watchlist, and the
// sync-enablement setting.
//
// Every store is the single owner of its record state and serializes its
// own read-modify-write with a per-store mutex, so a remote-applied change
// and a concurrent local edit cannot interleave destructively. Mutations
// carry models.MutationOptions: user-origin mutations feed the sync push
// path through the store's mutation hook, sync-applied mutations do not —
// that is what keeps a pulled change from looping straight back into an
// upload.
package domain

import (
	"context"

	"github.com/enzg/one-big-key-sub004/models"
)

// MutationHook is invoked after a committed user-origin mutation so the
// sync engine can build and persist the corresponding sync item. deleted is
// true when the mutation removed the record (the hook should produce a
// tombstone).
type MutationHook func(ctx context.Context, target models.SyncTarget, deleted bool)

// EventHook is invoked for user-origin mutations that should notify UI or
// other listeners.
type EventHook func(dataType models.DataType, targetID string)

func noopMutation(context.Context, models.SyncTarget, bool) {}

func noopEvent(models.DataType, string) {}
