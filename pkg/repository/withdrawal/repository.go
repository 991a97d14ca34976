package withdrawal

import (
	"context"
	"time"

	"github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for withdrawal data access with support for
// CQRS-style DTOs. All record access is scoped by (user, account, withdrawal).
type Repository interface {
	// Create inserts a new withdrawal record from a DTO.
	Create(ctx context.Context, create dto.WithdrawalCreate) error

	// Update applies a partial update to a withdrawal identified by its scope.
	// Returns domain.ErrWithdrawalNotFound if no record matches.
	Update(
		ctx context.Context,
		userID, accountID, id uuid.UUID,
		update dto.WithdrawalUpdate,
	) error

	// Get retrieves a withdrawal by its full (user, account, id) scope.
	// Returns domain.ErrWithdrawalNotFound if no record matches.
	Get(ctx context.Context, userID, accountID, id uuid.UUID) (*dto.WithdrawalRead, error)

	// FindByID retrieves a withdrawal by id alone, for callers (bank callback)
	// that do not know the owning scope.
	FindByID(ctx context.Context, id uuid.UUID) (*dto.WithdrawalRead, error)

	// ListStuck lists withdrawals sitting at the given step since before the
	// cutoff. The watchdog uses it to time out the bank suspension point.
	ListStuck(
		ctx context.Context,
		step withdrawal.Step,
		olderThan time.Time,
	) ([]*dto.WithdrawalRead, error)
}
