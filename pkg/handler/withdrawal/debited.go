package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleDebited reacts to WithdrawalDebited by issuing the send-to-bank
// command.
func HandleDebited(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleDebited", "event_type", e.Type())

		wd, ok := e.(*events.WithdrawalDebited)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", wd.WithdrawalID,
			"correlation_id", wd.CorrelationID,
		)
		log.Info("🔄 [PROCESS] Account debited, sending to bank")

		if err := service.SendBankTransfer(ctx, commands.SendToBank{
			UserID:       wd.UserID,
			AccountID:    wd.AccountID,
			WithdrawalID: wd.WithdrawalID,
		}); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
