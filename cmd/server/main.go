package main

import (
	"context"
	"fmt"

	"github.com/enzg/one-big-key-sub004/internal/config"
	handler "github.com/enzg/one-big-key-sub004/internal/handler/http"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/server"
	"github.com/enzg/one-big-key-sub004/internal/service"
	"github.com/enzg/one-big-key-sub004/internal/store"
	"github.com/enzg/one-big-key-sub004/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sync-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewUserRepository(db, log)
	items := store.NewRelayItemRepository(db, log)

	services := service.NewServices(users, items, cfg.App, log)

	srv, err := server.NewServer(handler.NewHandler(services, log).Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
