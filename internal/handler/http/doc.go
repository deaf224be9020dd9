// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// table-ordering API. Cross-cutting concerns such as admin sessions, CSRF
// checks, rate limiting, security headers, request tracing, access logging
// and metrics are handled in this package before requests are delegated to
// the service layer.
package http
