package http

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/gorilla/websocket"
	"github.com/ulule/limiter/v3"
)

// LiveServer streams order updates over an upgraded connection.
type LiveServer interface {
	Serve(ctx context.Context, conn *websocket.Conn)
}

type Handler struct {
	services *service.Services
	live     LiveServer
	cfg      config.Server

	orderLimiter *limiter.Limiter
	loginLimiter *limiter.Limiter
	upgrader     websocket.Upgrader

	logger *logger.Logger
}

func NewHandler(services *service.Services, live LiveServer, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	orderLimiter, err := newLimiter("orders", cfg.OrderRateLimit, cfg.OrderRateWindow)
	if err != nil {
		return nil, fmt.Errorf("error creating order rate limiter: %w", err)
	}
	loginLimiter, err := newLimiter("login", cfg.LoginRateLimit, cfg.LoginRateWindow)
	if err != nil {
		return nil, fmt.Errorf("error creating login rate limiter: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		live:         live,
		cfg:          cfg,
		orderLimiter: orderLimiter,
		loginLimiter: loginLimiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}, nil
}
