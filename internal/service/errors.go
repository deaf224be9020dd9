package service

import "errors"

// Sentinel errors of the order-session flow. The HTTP layer maps each of
// them to a status code and an error code; match with [errors.Is].
var (
	// ErrInvalidCredentials is returned for a wrong username, password or
	// table PIN. The cause is never revealed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when no valid admin session is present.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken is returned for a malformed, expired, tampered or
	// foreign table token, and for a table id that does not match the token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation is returned for missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited is returned when a client exceeds a request quota.
	ErrRateLimited = errors.New("too many requests")

	// ErrTableNotFound is returned for operations on an unknown table.
	ErrTableNotFound = errors.New("table not found")
)
