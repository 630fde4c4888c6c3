package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/enzg/one-big-key-sub004/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FlowManager is the per-data-type handler contract. One implementation
// exists for each [models.DataType]; the generic [Flow] orchestrator drives
// push, pull and bootstrap through this interface and never touches domain
// stores directly.
type FlowManager interface {
	DataType() models.DataType

	// RemoveSyncItemIfServerDeleted reports whether a tombstone row may be
	// purged locally once the relay has confirmed it.
	RemoveSyncItemIfServerDeleted() bool

	// SupportsOfflineSync reports whether items of this type may be stored
	// as plaintext when no credential is available.
	SupportsOfflineSync() bool

	// UseCreateGenesisTime reports whether brand-new items built during
	// bootstrap should be stamped with the genesis timestamp instead of the
	// current time, so a first-time enablement cannot clobber a genuinely
	// newer edit from another device.
	UseCreateGenesisTime(target models.SyncTarget) bool

	// IsSupportSync gates whether this particular instance is eligible for
	// sync at all. Returning false is a silent no-op, not an error.
	IsSupportSync(target models.SyncTarget) (bool, error)

	// BuildSyncRawKey composes the per-type semantic key from stable
	// identity only, never a local database id.
	BuildSyncRawKey(target models.SyncTarget) (string, error)

	// BuildSyncPayload projects the target into its portable payload.
	BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error)

	// BuildSyncTargetsByDBQuery enumerates every local domain record of
	// this type as a sync target (push and bootstrap direction).
	BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error)

	// BuildSyncTargetByPayload rebuilds a target from a decrypted payload
	// (pull direction). Types where remote data must not silently create
	// local records perform a domain lookup here and return (nil, nil)
	// when no local match exists.
	BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error)

	// SyncToSceneEachItem applies one decrypted remote change to the domain
	// store with reentry guards, so the write does not loop back into the
	// push path. Returns whether the item was applied.
	SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error)
}

// CredentialProvider supplies the per-operation secret material. A nil
// credential with a nil error means no-credential mode: only data types that
// support offline sync can be built.
type CredentialProvider interface {
	GetSyncCredential(ctx context.Context) (*models.SyncCredential, error)
}

// Clock is the logical clock source for dataTime stamps.
type Clock interface {
	TimeNow() int64
}

// ClientSyncService drives the device-side sync engine.
type ClientSyncService interface {
	// FullSync fetches from the relay, merges by last-write-wins, applies
	// eligible items to the local scene, uploads pending items and purges
	// confirmed tombstones.
	FullSync(ctx context.Context) error

	// PushTarget builds a sync item for one mutated domain record and
	// persists it. Upload happens asynchronously, never blocking the
	// caller.
	PushTarget(ctx context.Context, target models.SyncTarget, deleted bool) error

	// EnableCloudSync bootstraps sync: reconciles every local domain
	// record against stored items, persists the result and uploads it,
	// then flips the Lock sentinel on.
	EnableCloudSync(ctx context.Context) error
}

// ClientSyncJob periodically runs FullSync in the background.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// RelaySyncService is the server-side conflict resolver and fan-out store.
type RelaySyncService interface {
	Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.UploadResponse, error)
	Fetch(ctx context.Context, userID int64, req models.FetchRequest) (models.FetchResponse, error)
}

// AuthService handles relay account lifecycle and token issuance.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
