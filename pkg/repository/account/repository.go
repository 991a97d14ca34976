package account

import (
	"context"

	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/google/uuid"
)

// Repository is the account ledger port. CheckAndDebit and CreditBack are the
// symmetric pair through which money ever leaves or returns to a plan; both
// adjust CashBalance and CashAvailableForWithdrawal together and must be
// atomic per (user, account) key.
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves the account for the given user.
	// Returns domain.ErrAccountNotFound if no record matches.
	Get(ctx context.Context, userID, accountID uuid.UUID) (*dto.AccountRead, error)

	// CheckAndDebit atomically verifies available funds and debits amount from
	// both balance fields. Returns domain.ErrNotEnoughFunds when the available
	// balance cannot cover amount, domain.ErrAccountNotFound when the account
	// does not exist.
	CheckAndDebit(ctx context.Context, userID, accountID uuid.UUID, amount int64) (*dto.AccountRead, error)

	// CreditBack atomically restores amount to both balance fields. It is the
	// exact inverse of CheckAndDebit and the single place money is ever
	// returned to a user.
	CreditBack(ctx context.Context, userID, accountID uuid.UUID, amount int64) (*dto.AccountRead, error)
}
