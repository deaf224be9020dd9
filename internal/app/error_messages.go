// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// table-ordering HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the msg field of {ok:false, msg, code} responses.
package app

const (
	// MsgInvalidCredentials is returned for a wrong admin username or
	// password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidSession is returned when the session cookie is missing,
	// expired or forged.
	MsgInvalidSession = "Invalid or expired session"

	// MsgInvalidQRToken is returned when a table token is malformed, expired
	// or belongs to another table.
	MsgInvalidQRToken = "Invalid QR token"

	// MsgTooManyRequests is returned when a client exceeds a rate limit.
	MsgTooManyRequests = "Too many requests"

	// MsgTableNotFound is returned for operations on an unknown table.
	MsgTableNotFound = "Table not found"

	// MsgTableIDRequired is returned by QR generation without a table id.
	MsgTableIDRequired = "tableId is required."

	// MsgLocationRequired is returned when coordinates are missing or not
	// numbers.
	MsgLocationRequired = "Location required"

	// MsgInvalidCSRFToken is returned when the CSRF header does not repeat
	// the CSRF cookie.
	MsgInvalidCSRFToken = "Invalid CSRF token"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
