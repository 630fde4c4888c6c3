package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/models"
)

func newTestSyncItemStore(t *testing.T) (*syncItemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &syncItemRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func syncItemColumns() []string {
	return []string{
		"id", "data_type", "raw_key", "data", "raw_data",
		"data_time", "is_deleted", "pwd_hash", "device_id", "local_scene_updated", "server_uploaded",
	}
}

func TestGetItemByID_Found(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	rows := sqlmock.NewRows(syncItemColumns()).
		AddRow("abc", "AddressBook", "AddressBook >> evm__0xabc", "ct", "pt", int64(10), false, "", "device-B", true, true)

	mock.ExpectQuery("SELECT (.+) FROM sync_items").
		WithArgs("abc").
		WillReturnRows(rows)

	item, err := repo.GetItemByID(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item == nil {
		t.Fatal("expected item, got nil")
	}
	if item.DataType != models.DataTypeAddressBook {
		t.Errorf("unexpected data type: %s", item.DataType)
	}
	if !item.LocalSceneUpdated || !item.ServerUploaded {
		t.Errorf("unexpected flags: %+v", item)
	}
	if item.DeviceID != "device-B" {
		t.Errorf("unexpected device id: %q", item.DeviceID)
	}
}

func TestGetItemByID_Absent(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sync_items").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(syncItemColumns()))

	item, err := repo.GetItemByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil for absent row, got %+v", item)
	}
}

func TestPutItems_TransactionCommit(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	item := models.SyncItem{
		ID:       "abc",
		DataType: models.DataTypeWallet,
		RawKey:   "Wallet >> hd__hash",
		Data:     "ct",
		DataTime: 42,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_items").
		WithArgs(item.ID, item.DataType, item.RawKey, item.Data, item.RawData,
			item.DataTime, item.IsDeleted, item.PwdHash, item.DeviceID, item.LocalSceneUpdated, item.ServerUploaded).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.PutItems(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPutItems_RollbackOnFailure(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sync_items").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.PutItems(context.Background(), models.SyncItem{ID: "abc"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkSceneApplied(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_items").
		WithArgs("epoch-1", `{"dataType":"Lock"}`, "Lock >> ", "abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSceneApplied(context.Background(), "abc", "epoch-1", `{"dataType":"Lock"}`, "Lock >> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkSceneApplied_MissingRow(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectExec("UPDATE sync_items").
		WithArgs("", "", "", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSceneApplied(context.Background(), "missing", "", "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkUploaded_Batch(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sync_items").WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE sync_items").WithArgs("b").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.MarkUploaded(context.Background(), []string{"a", "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListPendingUpload(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	rows := sqlmock.NewRows(syncItemColumns()).
		AddRow("abc", "Wallet", "Wallet >> hd__h1", "ct", "", int64(5), false, "", "", true, false)

	mock.ExpectQuery("SELECT (.+) FROM sync_items WHERE server_uploaded = 0").
		WillReturnRows(rows)

	items, err := repo.ListPendingUpload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ServerUploaded {
		t.Fatalf("unexpected result: %+v", items)
	}
}

func TestDeleteItems(t *testing.T) {
	repo, mock, db := newTestSyncItemStore(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sync_items").WithArgs("abc").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteItems(context.Background(), []string{"abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
