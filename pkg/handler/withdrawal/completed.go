package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleCompleted reacts to the terminal COMPLETED state with the success
// notification. No further command follows.
func HandleCompleted(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleCompleted", "event_type", e.Type())

		wc, ok := e.(*events.WithdrawalCompleted)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", wc.WithdrawalID,
			"correlation_id", wc.CorrelationID,
		)
		log.Info("✅ [SUCCESS] Withdrawal saga completed", "bank_txn_id", wc.BankTransactionID)

		if err := service.RecordNotification(ctx, commands.NotifyUser{
			UserID:       wc.UserID,
			AccountID:    wc.AccountID,
			WithdrawalID: wc.WithdrawalID,
			Success:      true,
		}); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
