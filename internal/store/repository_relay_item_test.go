package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

func newTestRelayItemRepo(t *testing.T) (*relayItemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &relayItemRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func relayItemColumns() []string {
	return []string{"id", "data_type", "data", "data_time", "is_deleted", "pwd_hash", "device_id"}
}

func TestRelayGetItem_Found(t *testing.T) {
	repo, mock, db := newTestRelayItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(relayItemColumns()).
		AddRow("abc", "Wallet", "ciphertext", int64(100), false, "epoch-1", "device-a")

	mock.ExpectQuery("SELECT (.+) FROM sync_items").
		WithArgs(int64(1), "abc").
		WillReturnRows(rows)

	item, err := repo.GetItem(context.Background(), 1, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item == nil {
		t.Fatal("expected item, got nil")
	}
	if item.DataTime != 100 || item.DeviceID != "device-a" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestRelayGetItem_Absent(t *testing.T) {
	repo, mock, db := newTestRelayItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_items").
		WithArgs(int64(1), "missing").
		WillReturnRows(sqlmock.NewRows(relayItemColumns()))

	item, err := repo.GetItem(context.Background(), 1, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for absent row, got %+v", item)
	}
}

func TestRelaySaveItem_Upsert(t *testing.T) {
	repo, mock, db := newTestRelayItemRepo(t)
	defer db.Close()

	item := models.RelayItem{
		ID:       "abc",
		DataType: models.DataTypeAddressBook,
		Data:     "ciphertext",
		DataTime: 200,
		PwdHash:  "epoch-1",
		DeviceID: "device-b",
	}

	mock.ExpectExec("INSERT INTO sync_items").
		WithArgs(int64(1), item.ID, item.DataType, item.Data, item.DataTime, item.IsDeleted, item.PwdHash, item.DeviceID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveItem(context.Background(), 1, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRelayFetchItems_Filters(t *testing.T) {
	repo, mock, db := newTestRelayItemRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(relayItemColumns()).
		AddRow("abc", "Wallet", "ct1", int64(300), false, "", "device-a").
		AddRow("def", "Wallet", "ct2", int64(400), true, "", "device-b")

	// since and data type filters both applied
	mock.ExpectQuery("SELECT (.+) FROM sync_items WHERE user_id = (.+) AND data_time > (.+) AND data_type IN").
		WithArgs(int64(1), int64(250), "Wallet").
		WillReturnRows(rows)

	items, err := repo.FetchItems(context.Background(), 1, models.FetchRequest{
		Since:     250,
		DataTypes: []models.DataType{models.DataTypeWallet},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[1].IsDeleted {
		t.Error("expected second item to be a tombstone")
	}
}

func TestRelayFetchItems_NoFilters(t *testing.T) {
	repo, mock, db := newTestRelayItemRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_items WHERE user_id = ").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(relayItemColumns()))

	items, err := repo.FetchItems(context.Background(), 2, models.FetchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d items", len(items))
	}
}
