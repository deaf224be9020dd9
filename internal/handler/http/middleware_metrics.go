package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests no route matched, keeping the label set
// bounded.
const unmatchedRoute = "unmatched"

// withMetrics records the request duration by method, route pattern and
// status.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := wrapResponseWriter(w)
		start := time.Now()

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(mw.Status())).
			Observe(time.Since(start).Seconds())
	})
}
