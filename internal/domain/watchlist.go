package domain

import (
	"context"
	"sync"

	"github.com/enzg/one-big-key-sub004/models"
)

// WatchlistStore owns market watchlist entries, keyed by the external
// market id.
type WatchlistStore struct {
	mu    sync.Mutex
	items map[string]models.MarketWatchItem

	onMutate MutationHook
	onEvent  EventHook
}

func NewWatchlistStore() *WatchlistStore {
	return &WatchlistStore{
		items:    make(map[string]models.MarketWatchItem),
		onMutate: noopMutation,
		onEvent:  noopEvent,
	}
}

func (s *WatchlistStore) SetHooks(onMutate MutationHook, onEvent EventHook) {
	if onMutate != nil {
		s.onMutate = onMutate
	}
	if onEvent != nil {
		s.onEvent = onEvent
	}
}

func (s *WatchlistStore) Get(coingeckoID string) (models.MarketWatchItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[coingeckoID]
	return item, ok
}

func (s *WatchlistStore) List() []models.MarketWatchItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MarketWatchItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out
}

// Upsert adds or reorders a watchlist entry.
func (s *WatchlistStore) Upsert(ctx context.Context, item models.MarketWatchItem, opts models.MutationOptions) {
	s.mu.Lock()
	s.items[item.CoingeckoID] = item
	s.mu.Unlock()

	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetMarketWatchList{Item: item}, false)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeMarketWatchList, item.CoingeckoID)
	}
}

// Remove drops a watchlist entry.
func (s *WatchlistStore) Remove(ctx context.Context, coingeckoID string, opts models.MutationOptions) {
	s.mu.Lock()
	item, existed := s.items[coingeckoID]
	delete(s.items, coingeckoID)
	s.mu.Unlock()

	if !existed {
		item = models.MarketWatchItem{CoingeckoID: coingeckoID}
	}
	if opts.ShouldSaveSyncItem() {
		s.onMutate(ctx, models.TargetMarketWatchList{Item: item}, true)
	}
	if opts.ShouldEmitEvent() {
		s.onEvent(models.DataTypeMarketWatchList, coingeckoID)
	}
}
