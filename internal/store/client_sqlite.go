package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/logger"
)

const createSyncItemsTable = `
	CREATE TABLE IF NOT EXISTS sync_items (
		id                  TEXT PRIMARY KEY,
		data_type           TEXT NOT NULL,
		raw_key             TEXT NOT NULL DEFAULT '',
		data                TEXT,
		raw_data            TEXT,
		data_time           INTEGER NOT NULL DEFAULT 0,
		is_deleted          INTEGER NOT NULL DEFAULT 0,
		pwd_hash            TEXT NOT NULL DEFAULT '',
		device_id           TEXT NOT NULL DEFAULT '',
		local_scene_updated INTEGER NOT NULL DEFAULT 0,
		server_uploaded     INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sync_items_pending
		ON sync_items (server_uploaded);
	CREATE INDEX IF NOT EXISTS idx_sync_items_unapplied
		ON sync_items (local_scene_updated);`

// NewConnectSQLite opens (creating if needed) the local sync database and
// ensures the sync_items schema exists.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	// bootstrap schema
	if _, err = conn.ExecContext(ctx, createSyncItemsTable); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating sync_items schema")
		return nil, fmt.Errorf("error creating sync_items schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
