// Package provider defines the outbound collaborator ports the saga consumes:
// the bank gateway and the user notification sink.
package provider

import (
	"context"

	"github.com/google/uuid"
)

// BankCallback is the asynchronous transfer result the bank delivers after an
// InitiateTransfer call. Duplicated callbacks are possible; the saga's step
// guard rejects replays.
type BankCallback struct {
	WithdrawalID      uuid.UUID
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Success           bool
	BankTransactionID string
	ErrorReason       string
}

// BankGateway is the bank collaborator port. InitiateTransfer must be
// idempotent by withdrawal ID on the gateway side: the saga may retry this
// step if an event is redelivered.
type BankGateway interface {
	InitiateTransfer(
		ctx context.Context,
		withdrawalID, userID, bankAccountID uuid.UUID,
		amount int64,
	) error
}
