package dto

import (
	"time"

	"github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/google/uuid"
)

// WithdrawalRead is a read-optimized DTO for withdrawal queries and status
// polling. Step, StepHistory and Notifications are the only fields external
// callers should rely on for status.
type WithdrawalRead struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	SourceAccountID          uuid.UUID
	DestinationBankAccountID uuid.UUID
	Amount                   int64
	Step                     withdrawal.Step
	StepRetrialCount         int
	StepHistory              []withdrawal.StepEntry
	Notifications            []withdrawal.Notification
	BankStatus               withdrawal.BankStatus
	BankTransactionID        string
	Comment                  string
	LastError                string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// WithdrawalCreate is a DTO for creating a new withdrawal record.
type WithdrawalCreate struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	SourceAccountID          uuid.UUID
	DestinationBankAccountID uuid.UUID
	Amount                   int64
	Step                     withdrawal.Step
	StepHistory              []withdrawal.StepEntry
	BankStatus               withdrawal.BankStatus
}

// WithdrawalUpdate is a DTO for updating one or more fields of a withdrawal.
// Each transition names exactly the fields it may touch; nil fields are left
// untouched by the repository.
type WithdrawalUpdate struct {
	Step              *withdrawal.Step
	StepRetrialCount  *int
	StepHistory       []withdrawal.StepEntry    // full replacement; callers append before updating
	Notifications     []withdrawal.Notification // full replacement; callers append before updating
	BankStatus        *withdrawal.BankStatus
	BankTransactionID *string
	Comment           *string
	LastError         *string
}
