// Package repository defines the transactional boundary and typed repository
// accessors shared by the service and the saga handlers.
package repository

import (
	"context"

	"github.com/amirasaad/privplan/pkg/repository/account"
	"github.com/amirasaad/privplan/pkg/repository/withdrawal"
)

// UnitOfWork defines the contract for transactional work and typed repository
// access. Repositories obtained inside Do share the same session so a step
// transition and its ledger effect commit or roll back together.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// WithdrawalRepository returns the withdrawal store bound to the current
	// transaction/session.
	WithdrawalRepository() (withdrawal.Repository, error)

	// AccountRepository returns the account ledger bound to the current
	// transaction/session.
	AccountRepository() (account.Repository, error)
}
