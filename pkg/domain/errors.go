package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Business errors form a closed taxonomy so callers can branch on kind
// with errors.Is instead of matching message strings.
var (
	// ErrNotEnoughFunds is returned when an account's available balance
	// cannot cover the requested withdrawal amount.
	ErrNotEnoughFunds = errors.New("not enough funds")
	// ErrBankTransfer is returned when the bank gateway rejects a transfer
	// at initiation time.
	ErrBankTransfer = errors.New("bank transfer error")
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrWithdrawalNotFound is returned when the referenced withdrawal does not exist.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

// PreconditionError reports an operation attempted against a withdrawal whose
// current step is not one of the steps legal for that operation. It is the
// idempotency boundary: duplicate or out-of-order event delivery surfaces here.
type PreconditionError struct {
	WithdrawalID string
	Actual       string
	Expected     []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf(
		"withdrawal %s is at step %s; expected %s",
		e.WithdrawalID, e.Actual, strings.Join(e.Expected, " | "),
	)
}
