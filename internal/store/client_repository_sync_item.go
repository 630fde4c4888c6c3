package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

// syncItemRepository is the SQLite-backed implementation of [SyncItemStore].
// It executes all sync-item CRUD operations against the "sync_items" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (item id, data type, affected row counts).
type syncItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncItemStore constructs a [SyncItemStore] backed by the provided
// database connection and logger.
func NewSyncItemStore(db *DB, logger *logger.Logger) SyncItemStore {
	logger.Debug().Msg("creating sync item store")
	return &syncItemRepository{
		DB:     db,
		logger: logger,
	}
}

// WithTransaction runs fn inside a transaction. The transaction commits when
// fn returns nil and rolls back otherwise.
func (r *syncItemRepository) WithTransaction(ctx context.Context, readOnly bool, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: readOnly})
	if err != nil {
		log.Err(err).Str("func", "syncItemRepository.WithTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "syncItemRepository.WithTransaction").Msg("rollback failed")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "syncItemRepository.WithTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetItemByID retrieves a single sync item. A nil item with a nil error
// means the row does not exist.
func (r *syncItemRepository) GetItemByID(ctx context.Context, id string) (*models.SyncItem, error) {
	row := r.DB.QueryRowContext(ctx, getSyncItemByID, id)
	return r.scanItem(ctx, row)
}

// TxGetItemByID is [syncItemRepository.GetItemByID] inside an existing
// transaction.
func (r *syncItemRepository) TxGetItemByID(ctx context.Context, tx *sql.Tx, id string) (*models.SyncItem, error) {
	row := tx.QueryRowContext(ctx, getSyncItemByID, id)
	return r.scanItem(ctx, row)
}

func (r *syncItemRepository) scanItem(ctx context.Context, row *sql.Row) (*models.SyncItem, error) {
	log := logger.FromContext(ctx)

	var item models.SyncItem
	err := row.Scan(
		&item.ID,
		&item.DataType,
		&item.RawKey,
		&item.Data,
		&item.RawData,
		&item.DataTime,
		&item.IsDeleted,
		&item.PwdHash,
		&item.DeviceID,
		&item.LocalSceneUpdated,
		&item.ServerUploaded,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "syncItemRepository.scanItem").Msg("failed to scan sync item row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &item, nil
}

// PutItems upserts the given items inside a single transaction.
func (r *syncItemRepository) PutItems(ctx context.Context, items ...models.SyncItem) error {
	return r.WithTransaction(ctx, false, func(tx *sql.Tx) error {
		return r.TxPutItems(ctx, tx, items...)
	})
}

// TxPutItems upserts the given items using an existing transaction.
func (r *syncItemRepository) TxPutItems(ctx context.Context, tx *sql.Tx, items ...models.SyncItem) error {
	log := logger.FromContext(ctx)

	for _, item := range items {
		_, err := tx.ExecContext(ctx, upsertSyncItem,
			item.ID,
			item.DataType,
			item.RawKey,
			item.Data,
			item.RawData,
			item.DataTime,
			item.IsDeleted,
			item.PwdHash,
			item.DeviceID,
			item.LocalSceneUpdated,
			item.ServerUploaded,
		)
		if err != nil {
			log.Err(err).
				Str("func", "syncItemRepository.TxPutItems").
				Str("item_id", item.ID).
				Str("data_type", string(item.DataType)).
				Msg("failed to upsert sync item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// MarkSceneApplied records that the item's payload reached the local domain
// stores and persists the decrypted plaintext back onto the row.
func (r *syncItemRepository) MarkSceneApplied(ctx context.Context, id, pwdHash, rawData, rawKey string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, markSyncItemSceneApplied, pwdHash, rawData, rawKey, id)
	if err != nil {
		log.Err(err).
			Str("func", "syncItemRepository.MarkSceneApplied").
			Str("item_id", id).
			Msg("failed to mark sync item applied")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

// MarkUploaded flags the given items as confirmed by the relay.
func (r *syncItemRepository) MarkUploaded(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	return r.WithTransaction(ctx, false, func(tx *sql.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, markSyncItemUploaded, id); err != nil {
				log.Err(err).
					Str("func", "syncItemRepository.MarkUploaded").
					Str("item_id", id).
					Msg("failed to mark sync item uploaded")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// ListPendingUpload returns every item the relay has not yet confirmed.
func (r *syncItemRepository) ListPendingUpload(ctx context.Context) ([]models.SyncItem, error) {
	return r.listItems(ctx, listPendingUploadSyncItems)
}

// ListUnapplied returns every item whose payload has not been applied to the
// local scene.
func (r *syncItemRepository) ListUnapplied(ctx context.Context) ([]models.SyncItem, error) {
	return r.listItems(ctx, listUnappliedSyncItems)
}

// ListAll returns every stored sync item.
func (r *syncItemRepository) ListAll(ctx context.Context) ([]models.SyncItem, error) {
	return r.listItems(ctx, listAllSyncItems)
}

func (r *syncItemRepository) listItems(ctx context.Context, query string) ([]models.SyncItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "syncItemRepository.listItems").Msg("failed to execute sync item list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.SyncItem, 0, 50)

	for rows.Next() {
		var item models.SyncItem

		scanErr := rows.Scan(
			&item.ID,
			&item.DataType,
			&item.RawKey,
			&item.Data,
			&item.RawData,
			&item.DataTime,
			&item.IsDeleted,
			&item.PwdHash,
			&item.DeviceID,
			&item.LocalSceneUpdated,
			&item.ServerUploaded,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "syncItemRepository.listItems").Msg("failed to scan sync item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "syncItemRepository.listItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteItems removes rows outright.
func (r *syncItemRepository) DeleteItems(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	return r.WithTransaction(ctx, false, func(tx *sql.Tx) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, deleteSyncItem, id); err != nil {
				log.Err(err).
					Str("func", "syncItemRepository.DeleteItems").
					Str("item_id", id).
					Msg("failed to delete sync item")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}
