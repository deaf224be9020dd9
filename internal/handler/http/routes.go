package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(middleware.Recoverer)
	router.Use(h.withSecureHeaders())
	router.Use(h.withMetrics)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// admin authentication
	router.With(h.rateLimit(h.loginLimiter, "login")).Post("/api/auth/login", h.login)
	router.Post("/api/auth/logout", h.logout)
	router.With(h.requireSession).Get("/api/auth/me", h.me)

	// customer flow, authorized by the table token in the body
	router.Post("/api/validate-location", h.validateLocation)
	router.Post("/api/validate-pin", h.validatePin)
	router.With(h.rateLimit(h.orderLimiter, "orders")).Post("/api/orders/create", h.createOrder)

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/api/admin/csrf-token", h.csrfToken)
		r.Get("/api/admin/tables", h.listTables)
		r.Get("/api/orders", h.listOrders)
		r.Get("/api/orders/summary", h.summary)
		r.Get("/api/live", h.liveOrders)

		r.Group(func(r chi.Router) {
			r.Use(h.checkCSRF)
			r.Post("/api/admin/generate-qr", h.generateQR)
			r.Post("/api/admin/tables", h.saveTable)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
