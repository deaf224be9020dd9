// Package server wires and runs the application's HTTP server together with
// its background workers.
//
// It provides startup, signal handling, and graceful shutdown: live
// connections are closed first, then in-flight requests are drained, and
// finally the background workers are stopped so queued notifications are
// delivered.
package server
