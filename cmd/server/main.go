package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/handler"
	"github.com/MKhiriev/go-table-order/internal/logger"
	"github.com/MKhiriev/go-table-order/internal/notify"
	"github.com/MKhiriev/go-table-order/internal/server"
	"github.com/MKhiriev/go-table-order/internal/service"
	"github.com/MKhiriev/go-table-order/internal/store"
	"github.com/MKhiriev/go-table-order/internal/workers"
	"github.com/MKhiriev/go-table-order/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "go-table-order: %v\n", err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("go-table-order-server", cfg.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("data_file", cfg.Storage.DataFile).
		Bool("postgres", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	if cfg.App.SignKeyGenerated {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set: a random key was generated, sessions and QR codes will not survive a restart")
	}

	stateStore, err := store.NewStorage(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storage: %w", err)
	}
	defer func() {
		if err := stateStore.Close(); err != nil {
			log.Err(err).Msg("error closing storage")
		}
	}()

	snapshot, err := stateStore.Read(ctx)
	if err != nil {
		return fmt.Errorf("error reading snapshot: %w", err)
	}

	staffNotifiers, err := notify.NewStaffNotifiers(cfg.Notify, log)
	if err != nil {
		return fmt.Errorf("error creating staff notifiers: %w", err)
	}

	hub := notify.NewHub(snapshot.Orders, notify.DefaultSubscriberBuffer, log)
	dispatcher := notify.NewDispatcher(staffNotifiers, cfg.Workers.NotifyQueueSize, cfg.Notify.Timeout, log)

	services := service.NewServices(stateStore, notify.NewFanout(hub, dispatcher), *cfg, buildInfo, log)

	if err = services.CredentialService.Provision(ctx); err != nil {
		return fmt.Errorf("error provisioning credentials: %w", err)
	}

	handlers, err := handler.NewHandlers(services, hub, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(dispatcher), hub.Close, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
