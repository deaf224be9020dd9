package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-table-order/internal/adapter"
	"github.com/MKhiriev/go-table-order/internal/client"
	"github.com/MKhiriev/go-table-order/internal/config"
	"github.com/MKhiriev/go-table-order/internal/logger"
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tablectl: %v\n\n%s", err, client.Usage)
		os.Exit(2)
	}

	log := logger.NewLogger("tablectl", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.ServerURL, cfg.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, cfg.Username, cfg.Password, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "tablectl: %v\n", err)
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprint(os.Stderr, "\n"+client.Usage)
			stop()
			os.Exit(2)
		}
		stop()
		os.Exit(1)
	}
}
