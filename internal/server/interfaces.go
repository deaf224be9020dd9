package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving requests and background workers and blocks
	// until ctx is cancelled, a stop signal arrives or a component fails.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the HTTP server.
	Shutdown() error
}
