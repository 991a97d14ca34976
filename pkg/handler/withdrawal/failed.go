package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleFailed reacts to the terminal FAILED state with the failure
// notification carrying the recorded reason.
func HandleFailed(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleFailed", "event_type", e.Type())

		wf, ok := e.(*events.WithdrawalFailed)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", wf.WithdrawalID,
			"correlation_id", wf.CorrelationID,
		)
		log.Info("🔄 [PROCESS] Withdrawal saga failed, notifying user", "reason", wf.Reason)

		if err := service.RecordNotification(ctx, commands.NotifyUser{
			UserID:       wf.UserID,
			AccountID:    wf.AccountID,
			WithdrawalID: wf.WithdrawalID,
			Success:      false,
			Reason:       wf.Reason,
		}); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
