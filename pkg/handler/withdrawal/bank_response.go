package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/provider"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
	"github.com/google/uuid"
)

// HandleBankResponse reacts to the bank's asynchronous transfer result:
// SUCCESS completes the withdrawal, FAILURE starts the compensating rollback.
// A duplicated callback finds the withdrawal past SENDING_TO_BANK and is
// rejected by the step guard before any side effect.
func HandleBankResponse(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleBankResponse", "event_type", e.Type())

		br, ok := e.(*events.BankResponseReceived)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", br.WithdrawalID,
			"success", br.Success,
			"correlation_id", br.CorrelationID,
		)
		log.Info("🔄 [PROCESS] Bank response received")

		userID, accountID := br.UserID, br.AccountID
		if userID == uuid.Nil || accountID == uuid.Nil {
			// Webhook payloads carry only the withdrawal id; resolve the scope.
			w, err := service.Find(ctx, br.WithdrawalID)
			if err != nil {
				logHandlerError(log, err)
				return nil
			}
			userID, accountID = w.UserID, w.SourceAccountID
		}

		if err := service.ReceiveBankResponse(ctx, provider.BankCallback{
			WithdrawalID:      br.WithdrawalID,
			UserID:            userID,
			AccountID:         accountID,
			Success:           br.Success,
			BankTransactionID: br.BankTransactionID,
			ErrorReason:       br.ErrorReason,
		}); err != nil {
			logHandlerError(log, err)
			return nil
		}

		if br.Success {
			if err := service.Complete(ctx, commands.CompleteWithdrawal{
				UserID:            userID,
				AccountID:         accountID,
				WithdrawalID:      br.WithdrawalID,
				BankTransactionID: br.BankTransactionID,
			}); err != nil {
				logHandlerError(log, err)
			}
			return nil
		}

		if err := service.BeginRollback(
			ctx, userID, accountID, br.WithdrawalID, br.ErrorReason,
		); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
