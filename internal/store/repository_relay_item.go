package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

// relayItemRepository is the PostgreSQL-backed implementation of
// [RelayItemRepository]. Rows live in the relay "sync_items" table, keyed by
// (user_id, id); the relay never sees plaintext, only ciphertext and
// ordering metadata.
type relayItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewRelayItemRepository constructs a [RelayItemRepository] backed by the
// provided database connection and logger.
func NewRelayItemRepository(db *DB, logger *logger.Logger) RelayItemRepository {
	logger.Debug().Msg("creating relay item repository")
	return &relayItemRepository{
		DB:     db,
		logger: logger,
	}
}

// GetItem retrieves the stored row for (userID, id). A nil item with a nil
// error means the row does not exist.
func (r *relayItemRepository) GetItem(ctx context.Context, userID int64, id string) (*models.RelayItem, error) {
	log := logger.FromContext(ctx)

	var item models.RelayItem
	row := r.DB.QueryRowContext(ctx, getRelayItem, userID, id)

	err := row.Scan(
		&item.ID,
		&item.DataType,
		&item.Data,
		&item.DataTime,
		&item.IsDeleted,
		&item.PwdHash,
		&item.DeviceID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).
			Str("func", "relayItemRepository.GetItem").
			Int64("user_id", userID).
			Str("item_id", id).
			Msg("failed to scan relay item row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &item, nil
}

// SaveItem unconditionally upserts the row. The caller resolves conflicts
// before invoking SaveItem.
func (r *relayItemRepository) SaveItem(ctx context.Context, userID int64, item models.RelayItem) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, upsertRelayItem,
		userID,
		item.ID,
		item.DataType,
		item.Data,
		item.DataTime,
		item.IsDeleted,
		item.PwdHash,
		item.DeviceID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "relayItemRepository.SaveItem").
			Int64("user_id", userID).
			Str("item_id", item.ID).
			Msg("failed to upsert relay item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrItemNotSaved
	}

	return nil
}

// FetchItems returns rows matching the request filters. The query is built
// dynamically: user_id always applies, data_time > Since applies when Since
// is positive, and data_type narrows to the requested types when provided.
func (r *relayItemRepository) FetchItems(ctx context.Context, userID int64, req models.FetchRequest) ([]models.RelayItem, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"id",
		"data_type",
		"data",
		"data_time",
		"is_deleted",
		"pwd_hash",
		"device_id",
	).
		From("sync_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("data_type", "id").
		PlaceholderFormat(sq.Dollar)

	if req.Since > 0 {
		builder = builder.Where(sq.Gt{"data_time": req.Since})
	}
	if len(req.DataTypes) > 0 {
		builder = builder.Where(sq.Eq{"data_type": req.DataTypes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "relayItemRepository.FetchItems").
			Int64("user_id", userID).
			Msg("failed to build fetch query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "relayItemRepository.FetchItems").
			Int64("user_id", userID).
			Int("data types count", len(req.DataTypes)).
			Msg("failed to execute fetch query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RelayItem, 0, 50)

	for rows.Next() {
		var item models.RelayItem

		scanErr := rows.Scan(
			&item.ID,
			&item.DataType,
			&item.Data,
			&item.DataTime,
			&item.IsDeleted,
			&item.PwdHash,
			&item.DeviceID,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "relayItemRepository.FetchItems").
				Int64("user_id", userID).
				Msg("failed to scan relay item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "relayItemRepository.FetchItems").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
