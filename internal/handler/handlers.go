package handler

import (
	"fmt"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/handler/http"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, live http.LiveServer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, live, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
