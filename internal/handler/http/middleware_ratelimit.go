package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/metrics"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// newLimiter returns an in-memory per-client limiter allowing limit requests
// per period.
func newLimiter(prefix string, limit int, period time.Duration) (*limiter.Limiter, error) {
	if limit <= 0 || period <= 0 {
		return nil, fmt.Errorf("invalid rate %d per %s", limit, period)
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          prefix,
		CleanUpInterval: period,
	})
	return limiter.New(store, limiter.Rate{Period: period, Limit: int64(limit)}), nil
}

// rateLimit counts every request against the client IP before the body is
// read. A limiter failure lets the request through.
func (h *Handler) rateLimit(instance *limiter.Limiter, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lctx, err := instance.Get(r.Context(), utils.ClientIP(r))
			if err != nil {
				logger.FromRequest(r).Err(err).Str("limiter", name).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

			if lctx.Reached {
				retryAfter := max(lctx.Reset-time.Now().Unix(), 1)
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				metrics.RateLimited.WithLabelValues(name).Inc()
				writeError(w, r, service.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
