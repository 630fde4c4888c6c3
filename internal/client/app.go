package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/enzg/one-big-key-sub004/internal/adapter"
	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/domain"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/service"
	"github.com/enzg/one-big-key-sub004/internal/utils"
	"github.com/enzg/one-big-key-sub004/internal/workers"
	"github.com/enzg/one-big-key-sub004/models"
)

// App is the sync agent: it owns the relay session and the periodic sync
// worker and blocks in Run until the process is asked to stop.
type App struct {
	cfg      *config.ClientConfig
	relay    adapter.RelayAdapter
	creds    *SessionCredentials
	sync     service.ClientSyncService
	job      service.ClientSyncJob
	workers  *workers.Workers
	settings *domain.SettingsStore
	logger   *logger.Logger
}

func NewApp(
	cfg *config.ClientConfig,
	relay adapter.RelayAdapter,
	creds *SessionCredentials,
	syncService service.ClientSyncService,
	job service.ClientSyncJob,
	settings *domain.SettingsStore,
	log *logger.Logger,
) *App {
	return &App{
		cfg:      cfg,
		relay:    relay,
		creds:    creds,
		sync:     syncService,
		job:      job,
		workers:  workers.NewWorkers(workers.NewSyncWorker(job, cfg.Workers.SyncInterval)),
		settings: settings,
		logger:   log,
	}
}

// Run signs in, brings this device up to date and keeps the periodic sync
// worker alive until the context is cancelled or a termination signal
// arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.signIn(ctx); err != nil {
		return err
	}
	defer a.creds.SignOut()

	if !a.settings.IsCloudSyncEnabled() {
		if err := a.sync.EnableCloudSync(ctx); err != nil {
			return fmt.Errorf("enable cloud sync: %w", err)
		}
	} else if err := a.sync.FullSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync cycle failed")
	}

	a.workers.Run()
	defer a.job.Stop()

	a.logger.Info().
		Dur("interval", a.cfg.Workers.SyncInterval).
		Msg("sync agent running")

	<-ctx.Done()
	a.logger.Info().Msg("sync agent stopping")
	return nil
}

// signIn authenticates against the relay, registering the account on first
// contact, and installs the session credential.
func (a *App) signIn(ctx context.Context) error {
	user := models.User{Login: a.cfg.App.Login, Password: a.cfg.App.Password}

	logged, err := a.relay.Login(ctx, user)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Info().Str("login", user.Login).Msg("login rejected, registering account")
		logged, err = a.relay.Register(ctx, user)
	}
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	a.creds.SignIn(logged.AccountSalt, a.cfg.App.SyncPassword)
	a.logger.Info().Str("login", logged.Login).Msg("signed in to relay")
	return nil
}

// ResolveDeviceID returns the configured device id, falling back to the one
// minted at first start and persisted next to the local database.
func ResolveDeviceID(configured, dbPath string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	path := filepath.Join(filepath.Dir(dbPath), "device_id")
	raw, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(raw)); id != "" {
			return id, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read device id: %w", err)
	}

	id := utils.NewUUIDGenerator().Generate()
	if err = os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}
	return id, nil
}
