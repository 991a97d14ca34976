package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleRollingBack reacts to WithdrawalRollingBack by issuing the
// compensating credit-back. ROLLING_BACK is reachable only once per
// withdrawal, so the compensation runs at most once.
func HandleRollingBack(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleRollingBack", "event_type", e.Type())

		rb, ok := e.(*events.WithdrawalRollingBack)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", rb.WithdrawalID,
			"reason", rb.Reason,
			"correlation_id", rb.CorrelationID,
		)
		log.Info("🔄 [PROCESS] Rolling back debit")

		if err := service.RollbackDebit(ctx, commands.RollbackDebit{
			UserID:       rb.UserID,
			AccountID:    rb.AccountID,
			WithdrawalID: rb.WithdrawalID,
			Reason:       rb.Reason,
		}); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
