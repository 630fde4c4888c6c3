// Package adapter provides the transport layer for talking to the sync
// relay.
//
// The primary abstraction is [RelayAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRelayAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/enzg/one-big-key-sub004/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the sync relay.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RelayAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a relay account. On success it stores the returned
	// bearer token via SetToken and returns the user record including the
	// relay-issued account salt.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the relay. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record (including the account salt needed to derive the encrypt
	// password).
	Login(ctx context.Context, user models.User) (models.User, error)

	// Upload pushes a batch of encrypted items. The response reports which
	// items the relay accepted and, for items that lost last-write-wins,
	// the current server revision.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Fetch pulls items matching the request filters.
	Fetch(ctx context.Context, req models.FetchRequest) (models.FetchResponse, error)
}
