package main

import (
	"context"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/adapter"
	"github.com/enzg/one-big-key-sub004/internal/client"
	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/crypto"
	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/service"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sync-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local database")
	}
	defer db.Close()

	deviceID, err := client.ResolveDeviceID(cfg.App.DeviceID, cfg.Storage.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving device id")
	}

	items := store.NewSyncItemStore(db, log)
	clock := service.SystemClock{}

	stores := service.DomainStores{
		Accounts:  domain.NewAccountStore(log),
		Book:      domain.NewAddressBookStore(log, cfg.App.SyncPassword),
		Bookmarks: domain.NewBookmarkStore(),
		Networks:  domain.NewNetworkStore(),
		Tokens:    domain.NewTokenStore(),
		Watchlist: domain.NewWatchlistStore(),
		Settings:  domain.NewSettingsStore(),
	}

	registry := service.NewFlowRegistry(stores, crypto.NewItemCodec(), items, clock, log)

	relay := adapter.NewHTTPRelayAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	creds := client.NewSessionCredentials()
	syncService := service.NewClientSyncService(registry, items, relay, creds, clock, stores.Settings, deviceID, log)

	onMutate := func(ctx context.Context, target models.SyncTarget, deleted bool) {
		if err := syncService.PushTarget(ctx, target, deleted); err != nil {
			log.Warn().Err(err).Str("data_type", string(target.SyncDataType())).Msg("push after mutation failed")
		}
	}
	onEvent := func(dataType models.DataType, targetID string) {
		log.Debug().Str("data_type", string(dataType)).Str("target_id", targetID).Msg("local mutation")
	}

	stores.Accounts.SetHooks(onMutate, onEvent)
	stores.Book.SetHooks(onMutate, onEvent)
	stores.Bookmarks.SetHooks(onMutate, onEvent)
	stores.Networks.SetHooks(onMutate, onEvent)
	stores.Tokens.SetHooks(onMutate, onEvent)
	stores.Watchlist.SetHooks(onMutate, onEvent)
	stores.Settings.SetHooks(onMutate, onEvent)

	job := service.NewClientSyncJob(syncService, log)
	app := client.NewApp(cfg, relay, creds, syncService, job, stores.Settings, log)

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sync agent run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
