package withdrawal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/domain/events"
	svc "github.com/amirasaad/privplan/pkg/service/withdrawal"
)

// HandleInsufficientFunds reacts to the ledger refusing the debit: the saga
// short-circuits to FAILED without ever contacting the bank and without
// compensation, since no money moved.
func HandleInsufficientFunds(
	service *svc.Service,
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleInsufficientFunds", "event_type", e.Type())

		inf, ok := e.(*events.WithdrawalInsufficientFunds)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log = log.With(
			"withdrawal_id", inf.WithdrawalID,
			"correlation_id", inf.CorrelationID,
		)
		log.Info("🔄 [PROCESS] Insufficient funds, failing withdrawal",
			"amount", inf.Amount, "available", inf.Available)

		reason := fmt.Sprintf(
			"not enough funds: requested %d, available %d",
			inf.Amount, inf.Available,
		)
		if err := service.FailInsufficientFunds(
			ctx, inf.UserID, inf.AccountID, inf.WithdrawalID, reason,
		); err != nil {
			logHandlerError(log, err)
		}
		return nil
	}
}
