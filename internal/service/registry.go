package service

import (
	"github.com/enzg/one-big-key-sub004/internal/crypto"
	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/models"
)

// DomainStores bundles the nine domain stores the flow managers operate on.
type DomainStores struct {
	Accounts  *domain.AccountStore
	Book      *domain.AddressBookStore
	Bookmarks *domain.BookmarkStore
	Networks  *domain.NetworkStore
	Tokens    *domain.TokenStore
	Watchlist *domain.WatchlistStore
	Settings  *domain.SettingsStore
}

// FlowRegistry holds one [Flow] per data type.
type FlowRegistry struct {
	flows map[models.DataType]*Flow
}

// NewFlowRegistry wires every flow manager into its orchestrator.
func NewFlowRegistry(stores DomainStores, codec crypto.ItemCodec, items store.SyncItemStore, clock Clock, log *logger.Logger) *FlowRegistry {
	managers := []FlowManager{
		NewWalletFlowManager(stores.Accounts),
		NewIndexedAccountFlowManager(stores.Accounts),
		NewAddressBookFlowManager(stores.Book),
		NewBrowserBookmarkFlowManager(stores.Bookmarks),
		NewCustomNetworkFlowManager(stores.Networks),
		NewCustomRpcFlowManager(stores.Networks),
		NewCustomTokenFlowManager(stores.Tokens),
		NewMarketWatchListFlowManager(stores.Watchlist),
		NewLockFlowManager(stores.Settings),
	}

	flows := make(map[models.DataType]*Flow, len(managers))
	for _, m := range managers {
		flows[m.DataType()] = NewFlow(m, codec, items, clock, log)
	}
	return &FlowRegistry{flows: flows}
}

// Get returns the flow serving dataType.
func (r *FlowRegistry) Get(dataType models.DataType) (*Flow, bool) {
	f, ok := r.flows[dataType]
	return f, ok
}

// All returns every flow in the canonical application order: wallets before
// indexed accounts, so a restored wallet exists by the time its account
// names arrive.
func (r *FlowRegistry) All() []*Flow {
	out := make([]*Flow, 0, len(r.flows))
	for _, dt := range models.AllDataTypes {
		if f, ok := r.flows[dt]; ok {
			out = append(out, f)
		}
	}
	return out
}
