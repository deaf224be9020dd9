// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrCSRFTokenMismatch is returned when a state-changing admin request
	// carries no CSRF token or one that differs from the CSRF cookie.
	ErrCSRFTokenMismatch = errors.New("invalid CSRF token")

	// ErrRouteNotFound is returned for unknown routes and methods.
	ErrRouteNotFound = errors.New("route not found")

	// errHijackNotSupported is returned when the underlying writer cannot
	// be taken over for a WebSocket upgrade.
	errHijackNotSupported = errors.New("response writer does not support hijacking")
)
