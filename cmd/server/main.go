package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/privplan/infra/initializer"
	"github.com/amirasaad/privplan/pkg/app"
	"github.com/amirasaad/privplan/pkg/config"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	a := app.New(deps, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Watchdog.Run(ctx)

	logger.Info("withdrawal saga running",
		"env", cfg.Env,
		"bank_response_timeout", cfg.Saga.BankResponseTimeout,
		"watchdog_interval", cfg.Saga.WatchdogInterval,
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	logger.Info("shutting down", "signal", s.String())
	return nil
}
