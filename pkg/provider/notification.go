package provider

import (
	"context"

	"github.com/google/uuid"
)

// Notifier is the best-effort notification sink. Delivery failures are logged
// by the caller and never block or roll back the withdrawal; every attempt is
// still recorded on the withdrawal's notification audit trail.
type Notifier interface {
	NotifySuccess(ctx context.Context, userID, accountID, withdrawalID uuid.UUID) error
	NotifyFailure(ctx context.Context, userID, accountID, withdrawalID uuid.UUID, reason string) error
}
