package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/handler"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/workers"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	background workers.Worker
	// beforeShutdown runs before in-flight requests are drained.
	beforeShutdown  func()
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the server. background runs next to the HTTP server and
// is stopped after it; beforeShutdown may be nil.
func NewServer(handlers *handler.Handlers, background workers.Worker, beforeShutdown func(), cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	if background == nil {
		background = workers.NewWorkers()
	}
	if beforeShutdown == nil {
		beforeShutdown = func() {}
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg),
		background:      background,
		beforeShutdown:  beforeShutdown,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// workers outlive the HTTP server so orders accepted while draining are
	// still delivered
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	defer stopWorkers()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.background.Run(workersCtx)
	})

	g.Go(func() error {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down server")

		err := s.Shutdown()
		stopWorkers()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() error {
	s.beforeShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
