package service

import (
	"time"

	"github.com/enzg/one-big-key-sub004/internal/config"
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/store"
)

// Services bundles the relay-side services handed to the transport layer.
type Services struct {
	AuthService AuthService
	SyncService RelaySyncService
}

// NewServices builds the relay service layer over its repositories.
func NewServices(users store.UserRepository, items store.RelayItemRepository, cfg config.App, log *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(users, cfg, log),
		SyncService: NewRelaySyncService(items, log),
	}
}

// SystemClock stamps items with wall-clock milliseconds, the resolution
// dataTime ordering uses.
type SystemClock struct{}

func (SystemClock) TimeNow() int64 { return time.Now().UnixMilli() }
