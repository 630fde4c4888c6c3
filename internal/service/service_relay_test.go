package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/mock"
	"github.com/enzg/one-big-key-sub004/models"
)

const relayTestUserID int64 = 42

func relayItem(id string, dataTime int64, deviceID string) models.RelayItem {
	return models.RelayItem{
		ID:       id,
		DataType: models.DataTypeBrowserBookmark,
		Data:     "ciphertext-" + id,
		DataTime: dataTime,
		PwdHash:  "epoch-1",
		DeviceID: deviceID,
	}
}

func TestRelayUpload_NewItemIsAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	incoming := relayItem("item-1", 100, "device-A")

	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-1").Return(nil, nil)
	repo.EXPECT().SaveItem(gomock.Any(), relayTestUserID, incoming).Return(nil)

	svc := NewRelaySyncService(repo, logger.Nop())
	resp, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{incoming},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, resp.Accepted)
	assert.Empty(t, resp.Rejected)
}

func TestRelayUpload_OlderRevisionIsRejectedWithCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	stored := relayItem("item-1", 200, "device-B")
	incoming := relayItem("item-1", 100, "device-A")

	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-1").Return(&stored, nil)

	svc := NewRelaySyncService(repo, logger.Nop())
	resp, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{incoming},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Accepted)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, stored, resp.Rejected[0], "rejection returns the current server revision")
}

func TestRelayUpload_TimestampTieBreaksOnDeviceID(t *testing.T) {
	tests := []struct {
		name           string
		incomingDevice string
		storedDevice   string
		wantAccepted   bool
	}{
		{name: "greater device id wins", incomingDevice: "device-B", storedDevice: "device-A", wantAccepted: true},
		{name: "lesser device id loses", incomingDevice: "device-A", storedDevice: "device-B", wantAccepted: false},
		{name: "equal device id loses", incomingDevice: "device-A", storedDevice: "device-A", wantAccepted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockRelayItemRepository(ctrl)
			stored := relayItem("item-1", 500, tt.storedDevice)
			incoming := relayItem("item-1", 500, tt.incomingDevice)

			repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-1").Return(&stored, nil)
			if tt.wantAccepted {
				repo.EXPECT().SaveItem(gomock.Any(), relayTestUserID, incoming).Return(nil)
			}

			svc := NewRelaySyncService(repo, logger.Nop())
			resp, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
				DeviceID: tt.incomingDevice,
				Items:    []models.RelayItem{incoming},
			})
			require.NoError(t, err)
			if tt.wantAccepted {
				assert.Equal(t, []string{"item-1"}, resp.Accepted)
				assert.Empty(t, resp.Rejected)
			} else {
				assert.Empty(t, resp.Accepted)
				assert.Len(t, resp.Rejected, 1)
			}
		})
	}
}

func TestRelayUpload_FillsMissingDeviceIDFromRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	incoming := relayItem("item-1", 100, "")

	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-1").Return(nil, nil)
	repo.EXPECT().SaveItem(gomock.Any(), relayTestUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, item models.RelayItem) error {
			assert.Equal(t, "device-A", item.DeviceID)
			return nil
		})

	svc := NewRelaySyncService(repo, logger.Nop())
	_, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{incoming},
	})
	require.NoError(t, err)
}

func TestRelayUpload_MixedBatchResolvesPerItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	fresh := relayItem("item-new", 100, "device-A")
	losing := relayItem("item-old", 100, "device-A")
	stored := relayItem("item-old", 900, "device-B")

	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-new").Return(nil, nil)
	repo.EXPECT().SaveItem(gomock.Any(), relayTestUserID, fresh).Return(nil)
	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-old").Return(&stored, nil)

	svc := NewRelaySyncService(repo, logger.Nop())
	resp, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{fresh, losing},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"item-new"}, resp.Accepted)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, stored, resp.Rejected[0])
}

func TestRelayUpload_StoreErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	repo.EXPECT().GetItem(gomock.Any(), relayTestUserID, "item-1").
		Return(nil, errors.New("connection reset"))

	svc := NewRelaySyncService(repo, logger.Nop())
	_, err := svc.Upload(context.Background(), relayTestUserID, models.UploadRequest{
		DeviceID: "device-A",
		Items:    []models.RelayItem{relayItem("item-1", 100, "device-A")},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "load relay item")
}

func TestRelayFetch_ReturnsItemsWithLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	items := []models.RelayItem{
		relayItem("item-1", 100, "device-A"),
		relayItem("item-2", 200, "device-B"),
	}
	req := models.FetchRequest{Since: 50}

	repo.EXPECT().FetchItems(gomock.Any(), relayTestUserID, req).Return(items, nil)

	svc := NewRelaySyncService(repo, logger.Nop())
	resp, err := svc.Fetch(context.Background(), relayTestUserID, req)
	require.NoError(t, err)
	assert.Equal(t, items, resp.Items)
	assert.Equal(t, 2, resp.Length)
}

func TestRelayFetch_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRelayItemRepository(ctrl)
	repo.EXPECT().FetchItems(gomock.Any(), relayTestUserID, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	svc := NewRelaySyncService(repo, logger.Nop())
	_, err := svc.Fetch(context.Background(), relayTestUserID, models.FetchRequest{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "fetch relay items")
}
