// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the admin API of the table-ordering
// server.
//
// [ServerAdapter] hides the session cookie and the CSRF double-submit token:
// after Login every call is authenticated, and state-changing calls fetch
// and repeat the CSRF token automatically.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-table-order/models"
)

// ServerAdapter talks to the admin endpoints of the server.
type ServerAdapter interface {
	// Login opens an admin session. The session cookie is kept by the
	// adapter for subsequent calls.
	Login(ctx context.Context, username, password string) error

	// Logout clears the session.
	Logout(ctx context.Context) error

	// Me returns the current admin session.
	Me(ctx context.Context) (models.MeResponse, error)

	ListTables(ctx context.Context) ([]models.TableView, error)

	// SaveTable creates or replaces a table and its PIN.
	SaveTable(ctx context.Context, req models.SaveTableRequest) error

	// GenerateQR returns the customer link for a table.
	GenerateQR(ctx context.Context, tableID models.TableID) (string, error)

	// Summary returns the per-item order aggregation.
	Summary(ctx context.Context) ([]models.ItemSummary, error)

	// Version returns the server build metadata.
	Version(ctx context.Context) (VersionInfo, error)
}

// VersionInfo is the body of GET /api/version.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
