// Package http implements the relay's HTTP transport: route handlers for
// account and sync endpoints plus the middleware chain (tracing, logging,
// gzip, JWT auth) that runs before requests reach the service layer.
package http

import (
	"github.com/enzg/one-big-key-sub004/internal/logger"
	"github.com/enzg/one-big-key-sub004/internal/service"
	"github.com/enzg/one-big-key-sub004/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewSyncRequestValidator(),
		logger:    logger,
	}
}
