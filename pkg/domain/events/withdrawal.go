package events

import (
	"fmt"

	"github.com/google/uuid"
)

// WithdrawalCreated is emitted when a withdrawal aggregate has been persisted
// in its initial step. The saga reacts by issuing the debit command.
type WithdrawalCreated struct {
	FlowEvent
	WithdrawalID  uuid.UUID
	BankAccountID uuid.UUID
	Amount        int64
}

func (e *WithdrawalCreated) Type() string { return EventTypeWithdrawalCreated.String() }

// Validate performs business validation on the withdrawal request.
func (e *WithdrawalCreated) Validate() error {
	if e.UserID == uuid.Nil {
		return fmt.Errorf("user ID cannot be nil")
	}
	if e.AccountID == uuid.Nil {
		return fmt.Errorf("account ID cannot be nil")
	}
	if e.WithdrawalID == uuid.Nil {
		return fmt.Errorf("withdrawal ID cannot be nil")
	}
	if e.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// WithdrawalDebited is emitted after the ledger debit succeeded.
type WithdrawalDebited struct {
	FlowEvent
	WithdrawalID  uuid.UUID
	BankAccountID uuid.UUID
	Amount        int64
}

func (e *WithdrawalDebited) Type() string { return EventTypeWithdrawalDebited.String() }

// WithdrawalInsufficientFunds is emitted when the ledger refused the debit.
// The saga short-circuits to FAILED without ever contacting the bank.
type WithdrawalInsufficientFunds struct {
	FlowEvent
	WithdrawalID uuid.UUID
	Amount       int64
	Available    int64
}

func (e *WithdrawalInsufficientFunds) Type() string {
	return EventTypeWithdrawalInsufficientFunds.String()
}

// WithdrawalSentToBank marks the saga's suspension point: the transfer was
// handed to the bank and the saga now waits for the out-of-band callback.
type WithdrawalSentToBank struct {
	FlowEvent
	WithdrawalID uuid.UUID
}

func (e *WithdrawalSentToBank) Type() string { return EventTypeWithdrawalSentToBank.String() }

// BankResponseReceived carries the bank's asynchronous transfer result.
type BankResponseReceived struct {
	FlowEvent
	WithdrawalID      uuid.UUID
	Success           bool
	BankTransactionID string
	ErrorReason       string
}

func (e *BankResponseReceived) Type() string { return EventTypeBankResponseReceived.String() }

// WithdrawalRollingBack is emitted when a step at or past the debit failed and
// the compensating credit-back must run.
type WithdrawalRollingBack struct {
	FlowEvent
	WithdrawalID uuid.UUID
	Reason       string
}

func (e *WithdrawalRollingBack) Type() string { return EventTypeWithdrawalRollingBack.String() }

// WithdrawalCompleted is terminal: the bank accepted the transfer.
type WithdrawalCompleted struct {
	FlowEvent
	WithdrawalID      uuid.UUID
	BankTransactionID string
}

func (e *WithdrawalCompleted) Type() string { return EventTypeWithdrawalCompleted.String() }

// WithdrawalFailed is terminal: the withdrawal ended without money leaving the
// plan (either never debited, or debited and credited back).
type WithdrawalFailed struct {
	FlowEvent
	WithdrawalID uuid.UUID
	Reason       string
}

func (e *WithdrawalFailed) Type() string { return EventTypeWithdrawalFailed.String() }
