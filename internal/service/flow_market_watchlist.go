package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/models"
)

// marketWatchListFlowManager syncs watchlist entries, keyed by the external
// market id.
type marketWatchListFlowManager struct {
	watchlist *domain.WatchlistStore
}

// NewMarketWatchListFlowManager builds the MarketWatchList flow manager.
func NewMarketWatchListFlowManager(watchlist *domain.WatchlistStore) FlowManager {
	return &marketWatchListFlowManager{watchlist: watchlist}
}

func (m *marketWatchListFlowManager) DataType() models.DataType { return models.DataTypeMarketWatchList }

func (m *marketWatchListFlowManager) RemoveSyncItemIfServerDeleted() bool { return true }

func (m *marketWatchListFlowManager) SupportsOfflineSync() bool { return false }

func (m *marketWatchListFlowManager) UseCreateGenesisTime(models.SyncTarget) bool { return true }

func (m *marketWatchListFlowManager) IsSupportSync(target models.SyncTarget) (bool, error) {
	t, ok := target.(models.TargetMarketWatchList)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Item.CoingeckoID != "", nil
}

func (m *marketWatchListFlowManager) BuildSyncRawKey(target models.SyncTarget) (string, error) {
	t, ok := target.(models.TargetMarketWatchList)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return t.Item.CoingeckoID, nil
}

func (m *marketWatchListFlowManager) BuildSyncPayload(target models.SyncTarget) (json.RawMessage, error) {
	t, ok := target.(models.TargetMarketWatchList)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}
	return json.Marshal(models.PayloadMarketWatchList{Item: t.Item})
}

func (m *marketWatchListFlowManager) BuildSyncTargetsByDBQuery(ctx context.Context) ([]models.SyncTarget, error) {
	items := m.watchlist.List()
	targets := make([]models.SyncTarget, 0, len(items))
	for _, item := range items {
		targets = append(targets, models.TargetMarketWatchList{Item: item})
	}
	return targets, nil
}

func (m *marketWatchListFlowManager) BuildSyncTargetByPayload(ctx context.Context, payload json.RawMessage) (models.SyncTarget, error) {
	var p models.PayloadMarketWatchList
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return models.TargetMarketWatchList{Item: p.Item}, nil
}

func (m *marketWatchListFlowManager) SyncToSceneEachItem(ctx context.Context, item models.SyncItem, target models.SyncTarget, payload json.RawMessage) (bool, error) {
	t, ok := target.(models.TargetMarketWatchList)
	if !ok {
		return false, fmt.Errorf("%w: %T", ErrUnexpectedTarget, target)
	}

	opts := models.MutationOptions{Origin: models.OriginSyncApplied}
	if item.IsDeleted {
		m.watchlist.Remove(ctx, t.Item.CoingeckoID, opts)
		return true, nil
	}
	m.watchlist.Upsert(ctx, t.Item, opts)
	return true, nil
}
