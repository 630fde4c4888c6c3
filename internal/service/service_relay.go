package service

import (
	"context"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/models"
)

// relaySyncService arbitrates uploads per item and serves fetches. The relay
// never decrypts: it orders opaque revisions by dataTime and device id.
type relaySyncService struct {
	items  store.RelayItemRepository
	logger *logger.Logger
}

func NewRelaySyncService(items store.RelayItemRepository, log *logger.Logger) RelaySyncService {
	return &relaySyncService{items: items, logger: log}
}

// Upload resolves each incoming item against the stored row with
// last-write-wins. Rejected items return the current server revision so the
// losing device can converge.
func (s *relaySyncService) Upload(ctx context.Context, userID int64, req models.UploadRequest) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	resp := models.UploadResponse{Accepted: make([]string, 0, len(req.Items))}

	for _, item := range req.Items {
		if item.DeviceID == "" {
			item.DeviceID = req.DeviceID
		}

		current, err := s.items.GetItem(ctx, userID, item.ID)
		if err != nil {
			return models.UploadResponse{}, fmt.Errorf("load relay item %s: %w", item.ID, err)
		}

		if current != nil && !incomingWins(item, *current) {
			resp.Rejected = append(resp.Rejected, *current)
			log.Debug().
				Int64("user_id", userID).
				Str("item_id", item.ID).
				Int64("incoming_data_time", item.DataTime).
				Int64("stored_data_time", current.DataTime).
				Msg("upload lost conflict")
			continue
		}

		if err = s.items.SaveItem(ctx, userID, item); err != nil {
			return models.UploadResponse{}, fmt.Errorf("save relay item %s: %w", item.ID, err)
		}
		resp.Accepted = append(resp.Accepted, item.ID)
	}

	return resp, nil
}

// incomingWins orders two revisions of the same item: greater dataTime wins,
// ties go to the lexicographically greater device id.
func incomingWins(incoming, stored models.RelayItem) bool {
	if incoming.DataTime != stored.DataTime {
		return incoming.DataTime > stored.DataTime
	}
	return incoming.DeviceID > stored.DeviceID
}

// Fetch returns the user's stored items matching the request filters.
func (s *relaySyncService) Fetch(ctx context.Context, userID int64, req models.FetchRequest) (models.FetchResponse, error) {
	items, err := s.items.FetchItems(ctx, userID, req)
	if err != nil {
		return models.FetchResponse{}, fmt.Errorf("fetch relay items: %w", err)
	}
	return models.FetchResponse{Items: items, Length: len(items)}, nil
}
