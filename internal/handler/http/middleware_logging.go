package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/utils"
)

// probePaths are polled by load balancers and scrapers; they are logged at
// debug so they do not drown order traffic.
var probePaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI
		lw := wrapResponseWriter(w)

		next.ServeHTTP(lw, r)

		accessEvent(logger.FromRequest(r), r.URL.Path, lw.Status()).
			Str("uri", uri).
			Str("method", r.Method).
			Str("remote_ip", utils.ClientIP(r)).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func accessEvent(log *logger.Logger, path string, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	}
	if _, ok := probePaths[path]; ok {
		return log.Debug()
	}
	return log.Info()
}
