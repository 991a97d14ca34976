package app

import (
	"log/slog"

	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/eventbus"
	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/amirasaad/privplan/pkg/repository"
	"github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// Deps contains all the dependencies needed to assemble the application.
type Deps struct {
	Bus      eventbus.Bus
	Uow      repository.UnitOfWork
	Bank     provider.BankGateway
	Notifier provider.Notifier
	Logger   *slog.Logger
}

type App struct {
	Deps              *Deps
	Config            *config.App
	WithdrawalService *withdrawal.Service
	Watchdog          *withdrawal.Watchdog
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.WithdrawalService = withdrawal.New(
		deps.Bus,
		deps.Uow,
		deps.Bank,
		deps.Notifier,
		cfg.Saga,
		deps.Logger,
	)
	app.Watchdog = withdrawal.NewWatchdog(
		app.WithdrawalService,
		deps.Uow,
		cfg.Saga,
		deps.Logger,
	)
	app.setupEventBus()
	return app
}
