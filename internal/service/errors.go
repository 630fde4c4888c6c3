package service

import "errors"

// Sentinel errors surfaced by the sync engine. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoCredential is returned when an operation requires encryption but
	// no sync credential is available and the data type does not support
	// offline sync.
	ErrNoCredential = errors.New("sync credential is not available")

	// ErrMalformedPayload is returned when a decrypted payload fails to
	// parse. The affected item is skipped, never fatal to a batch.
	ErrMalformedPayload = errors.New("sync item payload is malformed")

	// ErrUnexpectedTarget is a programming error: a flow manager received a
	// target of the wrong concrete type.
	ErrUnexpectedTarget = errors.New("unexpected sync target type")

	// ErrKeyHashRequired is raised when a wallet raw key cannot be composed
	// because neither the hd hash nor a device id is present.
	ErrKeyHashRequired = errors.New("wallet key hash is required")

	// ErrWalletXfpRequired is raised when an indexed-account raw key is
	// requested for a wallet without a fingerprint.
	ErrWalletXfpRequired = errors.New("wallet xfp is required")

	// ErrLoginAlreadyTaken is returned on duplicate relay registration.
	ErrLoginAlreadyTaken = errors.New("login already taken")

	// ErrInvalidCredentials is returned on a failed relay login.
	ErrInvalidCredentials = errors.New("invalid login or password")

	// ErrInvalidDataProvided is returned when a register or login request is
	// missing required fields.
	ErrInvalidDataProvided = errors.New("login and password are required")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure so
	// callers never inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
