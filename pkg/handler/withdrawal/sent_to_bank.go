package withdrawal

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/domain/events"
)

// HandleSentToBank reacts to the saga's suspension point. No command is
// issued: the saga now waits for the bank's out-of-band callback, bounded by
// the watchdog's timeout.
func HandleSentToBank(
	logger *slog.Logger,
) func(ctx context.Context, e events.Event) error {
	return func(ctx context.Context, e events.Event) error {
		log := logger.With("handler", "withdrawal.HandleSentToBank", "event_type", e.Type())

		stb, ok := e.(*events.WithdrawalSentToBank)
		if !ok {
			log.Debug("🚫 [SKIP] Unexpected event type", "event", e)
			return nil
		}
		log.Info("⏸️ Awaiting bank response",
			"withdrawal_id", stb.WithdrawalID,
			"correlation_id", stb.CorrelationID)
		return nil
	}
}
