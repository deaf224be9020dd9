// Package metrics holds the Prometheus collectors of the server. Collectors
// register with the default registry and are served on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "table_order"

var (
	// HTTPRequestDuration is labelled by method, chi route pattern and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// OrdersAccepted counts persisted orders.
	OrdersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_accepted_total",
		Help:      "Orders persisted",
	})

	// RateLimited counts requests rejected by a limiter.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Requests rejected by a rate limiter",
	}, []string{"limiter"})

	// AuthAttempts counts admin logins and table PIN checks by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Admin logins and PIN checks by outcome",
	}, []string{"kind", "success"})

	// Notifications counts staff notification attempts per channel.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Staff notifications by channel and result",
	}, []string{"channel", "result"})

	// LiveSubscribers is the number of connected live-channel clients.
	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_subscribers",
		Help:      "Connected live order subscribers",
	})
)

// Notification results.
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// RecordAuthAttempt records an admin login ("login") or PIN check ("pin").
func RecordAuthAttempt(kind string, success bool) {
	AuthAttempts.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
}

// RecordNotification records one staff notification outcome.
func RecordNotification(channel, result string) {
	Notifications.WithLabelValues(channel, result).Inc()
}
