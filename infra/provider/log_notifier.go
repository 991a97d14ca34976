package provider

import (
	"context"
	"log/slog"

	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/google/uuid"
)

// LogNotifier writes user notifications to the structured log. It stands in
// for the real push/email channel in development; delivery is best-effort
// either way.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "log-notifier")}
}

// NotifySuccess implements provider.Notifier.
func (n *LogNotifier) NotifySuccess(ctx context.Context, userID, accountID, withdrawalID uuid.UUID) error {
	n.logger.Info("📣 Withdrawal completed",
		"user_id", userID,
		"account_id", accountID,
		"withdrawal_id", withdrawalID,
	)
	return nil
}

// NotifyFailure implements provider.Notifier.
func (n *LogNotifier) NotifyFailure(ctx context.Context, userID, accountID, withdrawalID uuid.UUID, reason string) error {
	n.logger.Info("📣 Withdrawal failed",
		"user_id", userID,
		"account_id", accountID,
		"withdrawal_id", withdrawalID,
		"reason", reason,
	)
	return nil
}

// Ensure LogNotifier implements the Notifier interface.
var _ provider.Notifier = (*LogNotifier)(nil)
