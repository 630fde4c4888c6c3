package store

import (
	"context"
	"database/sql"

	"github.com/enzg/one-big-key-sub004/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncItemStore is the durable client-side store for sync items. All writes
// are transactional; WithTransaction lets callers bundle sync-item writes
// with their own work so a domain mutation and its sync item commit or roll
// back together.
type SyncItemStore interface {
	// WithTransaction runs fn inside a transaction, committing when fn
	// returns nil and rolling back otherwise.
	WithTransaction(ctx context.Context, readOnly bool, fn func(tx *sql.Tx) error) error

	// GetItemByID returns the item with the given id, or nil when absent.
	GetItemByID(ctx context.Context, id string) (*models.SyncItem, error)

	// TxGetItemByID is GetItemByID inside an existing transaction.
	TxGetItemByID(ctx context.Context, tx *sql.Tx, id string) (*models.SyncItem, error)

	// PutItems upserts items in one transaction.
	PutItems(ctx context.Context, items ...models.SyncItem) error

	// TxPutItems is PutItems inside an existing transaction.
	TxPutItems(ctx context.Context, tx *sql.Tx, items ...models.SyncItem) error

	// MarkSceneApplied records that an item's payload has been applied to
	// the local scene, persisting the decrypted raw data and key back onto
	// the row so later reconciliation can skip re-decryption.
	MarkSceneApplied(ctx context.Context, id, pwdHash, rawData, rawKey string) error

	// MarkUploaded flags items as confirmed by the relay.
	MarkUploaded(ctx context.Context, ids []string) error

	// ListPendingUpload returns items with serverUploaded = false.
	ListPendingUpload(ctx context.Context) ([]models.SyncItem, error)

	// ListUnapplied returns items with localSceneUpdated = false.
	ListUnapplied(ctx context.Context) ([]models.SyncItem, error)

	// ListAll returns every stored item.
	ListAll(ctx context.Context) ([]models.SyncItem, error)

	// DeleteItems removes rows outright. Only used for tombstones whose
	// type policy allows purging after relay confirmation.
	DeleteItems(ctx context.Context, ids []string) error
}

// RelayItemRepository is the relay-side per-user item store.
type RelayItemRepository interface {
	// GetItem returns the stored row for (userID, id), or nil when absent.
	GetItem(ctx context.Context, userID int64, id string) (*models.RelayItem, error)

	// SaveItem unconditionally upserts a row. Conflict resolution happens
	// in the relay service before this is called.
	SaveItem(ctx context.Context, userID int64, item models.RelayItem) error

	// FetchItems returns rows matching the request filters.
	FetchItems(ctx context.Context, userID int64, req models.FetchRequest) ([]models.RelayItem, error)
}

// UserRepository is the relay-side account store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}
