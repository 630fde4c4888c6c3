package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enzg/one-big-key-sub004/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRelayItem() models.RelayItem {
	return models.RelayItem{
		ID:       "a1b2c3",
		DataType: models.DataTypeBrowserBookmark,
		Data:     "ciphertext",
		DataTime: 1700000000000,
		DeviceID: "device-A",
	}
}

func validUploadRequest() models.UploadRequest {
	item := validRelayItem()
	return models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{item},
		Length:   1,
	}
}

// ---------------------------------------------------------------------------
// TestNewSyncRequestValidator
// ---------------------------------------------------------------------------

func TestNewSyncRequestValidator(t *testing.T) {
	v := NewSyncRequestValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	t.Run("value and pointer forms are accepted", func(t *testing.T) {
		item := validRelayItem()
		req := validUploadRequest()
		fetch := models.FetchRequest{Since: 0}

		assert.NoError(t, v.Validate(ctx, item))
		assert.NoError(t, v.Validate(ctx, &item))
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
		assert.NoError(t, v.Validate(ctx, fetch))
		assert.NoError(t, v.Validate(ctx, &fetch))
	})

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, struct{ X int }{X: 1})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, validRelayItem(), "no_such_field")
		assert.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_RelayItem
// ---------------------------------------------------------------------------

func TestValidate_RelayItem(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.RelayItem)
		wantErr error
	}{
		{
			name:    "valid item",
			mutate:  func(*models.RelayItem) {},
			wantErr: nil,
		},
		{
			name:    "empty ID",
			mutate:  func(i *models.RelayItem) { i.ID = "" },
			wantErr: ErrEmptyItemID,
		},
		{
			name:    "unknown data type",
			mutate:  func(i *models.RelayItem) { i.DataType = "Sticker" },
			wantErr: ErrInvalidDataType,
		},
		{
			name:    "zero data time",
			mutate:  func(i *models.RelayItem) { i.DataTime = 0 },
			wantErr: ErrInvalidDataTime,
		},
		{
			name:    "negative data time",
			mutate:  func(i *models.RelayItem) { i.DataTime = -5 },
			wantErr: ErrInvalidDataTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validRelayItem()
			tt.mutate(&item)

			err := v.Validate(ctx, item)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("field scoping skips unlisted fields", func(t *testing.T) {
		item := validRelayItem()
		item.DataTime = 0

		assert.NoError(t, v.Validate(ctx, item, FieldItemID, FieldDataType))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_UploadRequest
// ---------------------------------------------------------------------------

func TestValidate_UploadRequest(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, validUploadRequest()))
	})

	t.Run("zero length is accepted as unset", func(t *testing.T) {
		req := validUploadRequest()
		req.Length = 0

		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("empty items", func(t *testing.T) {
		req := validUploadRequest()
		req.Items = nil

		assert.ErrorIs(t, v.Validate(ctx, req), ErrEmptyItems)
	})

	t.Run("length mismatch", func(t *testing.T) {
		req := validUploadRequest()
		req.Length = 3

		assert.ErrorIs(t, v.Validate(ctx, req), ErrLengthMismatch)
	})

	t.Run("invalid item reports its index", func(t *testing.T) {
		bad := validRelayItem()
		bad.ID = ""

		req := validUploadRequest()
		req.Items = append(req.Items, bad)
		req.Length = 2

		err := v.Validate(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyItemID)
		assert.Contains(t, err.Error(), "index 1")
	})
}

// ---------------------------------------------------------------------------
// TestValidate_FetchRequest
// ---------------------------------------------------------------------------

func TestValidate_FetchRequest(t *testing.T) {
	v := NewSyncRequestValidator()
	ctx := context.Background()

	t.Run("empty request fetches everything", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.FetchRequest{}))
	})

	t.Run("type filter with known types", func(t *testing.T) {
		req := models.FetchRequest{
			Since:     1700000000000,
			DataTypes: []models.DataType{models.DataTypeWallet, models.DataTypeLock},
		}
		assert.NoError(t, v.Validate(ctx, req))
	})

	t.Run("negative since", func(t *testing.T) {
		err := v.Validate(ctx, models.FetchRequest{Since: -1})
		assert.ErrorIs(t, err, ErrInvalidSince)
	})

	t.Run("unknown type in filter", func(t *testing.T) {
		err := v.Validate(ctx, models.FetchRequest{DataTypes: []models.DataType{"Sticker"}})
		assert.ErrorIs(t, err, ErrInvalidDataType)
	})
}
