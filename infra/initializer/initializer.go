// Package initializer wires the infrastructure adapters into the application
// dependency set: logger, database, event bus, bank gateway and notifier.
package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/privplan/infra"
	infraeventbus "github.com/amirasaad/privplan/infra/eventbus"
	infraprovider "github.com/amirasaad/privplan/infra/provider"
	infrarepository "github.com/amirasaad/privplan/infra/repository"
	"github.com/amirasaad/privplan/infra/repository/memory"
	"github.com/amirasaad/privplan/pkg/app"
	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/eventbus"
	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/amirasaad/privplan/pkg/repository"
)

const streamName = "events:withdrawal"
const groupName = "privplan"

// InitializeDependencies initializes all the application dependencies.
// Database and event bus fall back to in-memory adapters when no URL is
// configured, which keeps local development broker-free.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	var uow repository.UnitOfWork
	if cfg.DB.Url != "" {
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		uow = infrarepository.NewUoW(db)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory persistence")
		uow = memory.NewUoW()
	}
	deps.Uow = uow

	bus, err := initEventBus(cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.Bus = bus

	// The mock gateway feeds its asynchronous result straight back into the
	// saga as a BankResponseReceived event.
	callback := func(ctx context.Context, cb provider.BankCallback) {
		ev := &events.BankResponseReceived{
			FlowEvent:         events.NewFlowEvent(cb.UserID, cb.AccountID),
			WithdrawalID:      cb.WithdrawalID,
			Success:           cb.Success,
			BankTransactionID: cb.BankTransactionID,
			ErrorReason:       cb.ErrorReason,
		}
		if err := bus.Emit(ctx, ev); err != nil {
			logger.Error("failed to emit bank response", "error", err, "withdrawal_id", cb.WithdrawalID)
		}
	}
	deps.Bank = infraprovider.NewMockBankGateway(cfg.Bank, callback, logger)
	deps.Notifier = infraprovider.NewLogNotifier(logger)

	return deps, nil
}

// initEventBus selects the event transport from EVENTBUS_DRIVER. A broker
// that is configured but unreachable degrades to the in-process async bus so
// the service still comes up; a missing URL or an unknown driver is a
// configuration error and fails startup.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	driver := ""
	if cfg.EventBus != nil {
		driver = strings.ToLower(strings.TrimSpace(cfg.EventBus.Driver))
	}
	switch driver {
	case "", "memory":
		return infraeventbus.NewWithMemoryAsync(logger), nil
	case "redis":
		url := cfg.EventBus.RedisURL
		if url == "" && cfg.Redis != nil {
			url = cfg.Redis.URL
		}
		if url == "" {
			return nil, fmt.Errorf("event bus driver %q: redis URL is required", driver)
		}
		bus, err := infraeventbus.NewWithRedis(
			url, streamName, groupName, events.EventTypes, logger,
		)
		if err != nil {
			logger.Warn("Redis event bus unavailable, falling back to in-memory",
				"error", err)
			return infraeventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	case "kafka":
		if cfg.EventBus.KafkaBrokers == "" {
			return nil, fmt.Errorf("event bus driver %q: kafka brokers are required", driver)
		}
		bus, err := infraeventbus.NewWithKafka(
			cfg.EventBus.KafkaBrokers, logger, infraeventbus.DefaultKafkaEventBusConfig(),
		)
		if err != nil {
			logger.Warn("Kafka event bus unavailable, falling back to in-memory",
				"error", err)
			return infraeventbus.NewWithMemoryAsync(logger), nil
		}
		return bus, nil
	default:
		return nil, fmt.Errorf("unsupported event bus driver %q", driver)
	}
}
