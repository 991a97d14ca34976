package withdrawal

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/repository"
)

// bankTimeoutReason is recorded as the rollback reason for withdrawals the
// bank never answered.
const bankTimeoutReason = "bank response timeout"

// Watchdog bounds the saga's one genuine suspension point: a withdrawal
// waiting in SENDING_TO_BANK longer than the configured timeout is rolled
// back as if the bank had rejected it. A late callback afterwards fails the
// step guard and is ignored.
type Watchdog struct {
	svc    *Service
	uow    repository.UnitOfWork
	cfg    *config.Saga
	logger *slog.Logger
}

// NewWatchdog creates a watchdog over the given service.
func NewWatchdog(
	svc *Service,
	uow repository.UnitOfWork,
	cfg *config.Saga,
	logger *slog.Logger,
) *Watchdog {
	return &Watchdog{
		svc:    svc,
		uow:    uow,
		cfg:    cfg,
		logger: logger.With("worker", "bank-response-watchdog"),
	}
}

// Run sweeps on the configured interval until the context is cancelled.
func (wd *Watchdog) Run(ctx context.Context) {
	wd.logger.Info("🟢 [START] Watchdog running",
		"interval", wd.cfg.WatchdogInterval,
		"timeout", wd.cfg.BankResponseTimeout)
	ticker := time.NewTicker(wd.cfg.WatchdogInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			wd.logger.Info("Watchdog stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
			wd.Sweep(ctx)
		}
	}
}

// Sweep rolls back every withdrawal stuck at the bank past the timeout.
// Per-withdrawal errors are logged and do not abort the sweep.
func (wd *Watchdog) Sweep(ctx context.Context) {
	repo, err := wd.uow.WithdrawalRepository()
	if err != nil {
		wd.logger.Error("❌ [ERROR] Failed to get withdrawal repository", "error", err)
		return
	}
	cutoff := time.Now().Add(-wd.cfg.BankResponseTimeout)
	stuck, err := repo.ListStuck(ctx, withdrawal.StepSendingToBank, cutoff)
	if err != nil {
		wd.logger.Error("❌ [ERROR] Failed to list stuck withdrawals", "error", err)
		return
	}
	for _, w := range stuck {
		log := wd.logger.With("withdrawal_id", w.ID)
		log.Warn("⚠️ Bank response overdue, rolling back", "waiting_since", w.UpdatedAt)
		if err := wd.svc.BeginRollback(
			ctx, w.UserID, w.SourceAccountID, w.ID, bankTimeoutReason,
		); err != nil {
			log.Error("❌ [ERROR] Failed to begin rollback", "error", err)
		}
	}
}
