// Package commands defines the commands the saga issues in response to domain
// events. Commands are plain structs consumed by the withdrawal service; the
// saga never invokes collaborators directly.
package commands

import "github.com/google/uuid"

// RequestWithdrawal is the external intent that starts a saga run.
type RequestWithdrawal struct {
	UserID        uuid.UUID `validate:"required"`
	AccountID     uuid.UUID `validate:"required"`
	BankAccountID uuid.UUID `validate:"required"`
	Amount        int64     `validate:"gt=0"`
}

// DebitAccount instructs the ledger check-and-debit for a created withdrawal.
type DebitAccount struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	WithdrawalID uuid.UUID
}

// SendToBank instructs the bank gateway transfer for a debited withdrawal.
type SendToBank struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	WithdrawalID uuid.UUID
}

// CompleteWithdrawal finalizes a withdrawal the bank accepted.
type CompleteWithdrawal struct {
	UserID            uuid.UUID
	AccountID         uuid.UUID
	WithdrawalID      uuid.UUID
	BankTransactionID string
}

// RollbackDebit runs the compensating credit-back for a failed transfer.
type RollbackDebit struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	WithdrawalID uuid.UUID
	Reason       string
}

// NotifyUser dispatches the terminal-state user notification.
type NotifyUser struct {
	UserID       uuid.UUID
	AccountID    uuid.UUID
	WithdrawalID uuid.UUID
	Success      bool
	Reason       string
}
