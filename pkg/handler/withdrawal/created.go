// Package withdrawal contains the saga's event handlers. Each handler reacts
// to exactly one event type, invokes one guarded service operation (the next
// command), and isolates its own failures: a handler error is logged and the
// saga treated as stalled, never re-thrown into the listener.
package withdrawal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain"
	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleCreated reacts to WithdrawalCreated by issuing the debit command.
func HandleCreated(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleCreated", "event_type", e.Type())

		wc, ok := e.(*events.WithdrawalCreated)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", wc.WithdrawalID,
			"user_id", wc.UserID,
			"account_id", wc.AccountID,
			"correlation_id", wc.CorrelationID,
		)
		log.Info("🟢 [START] Withdrawal saga starting", "amount", wc.Amount)

		if err := wc.Validate(); err != nil {
			log.Error("❌ [ERROR] Invalid WithdrawalCreated event", "error", err)
			return nil
		}

		if err := service.Debit(ctx, commands.DebitAccount{
			UserID:       wc.UserID,
			AccountID:    wc.AccountID,
			WithdrawalID: wc.WithdrawalID,
		}); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}

// logHandlerError distinguishes replays rejected by the step guard (expected
// under duplicate delivery, logged as skips) from genuine failures.
func logHandlerError(log *slog.Logger, err error) {
	var pre *domain.PreconditionError
	if errors.As(err, &pre) {
		log.Info("🚫 [SKIP] Step guard rejected operation",
			"actual", pre.Actual, "expected", pre.Expected)
		return
	}
	log.Error("❌ [ERROR] Saga step failed, saga stalled", "error", err)
}
