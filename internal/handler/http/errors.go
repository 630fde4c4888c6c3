package http

import "errors"

// Errors produced while extracting the bearer token from the
// "Authorization" header. The auth middleware treats them all as 401.
var (
	// ErrEmptyAuthorizationHeader: the header is absent.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
