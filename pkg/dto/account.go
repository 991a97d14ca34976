package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountRead is a read-optimized DTO for the private-plan cash account.
// Invariant: CashAvailableForWithdrawal <= CashBalance.
type AccountRead struct {
	ID                         uuid.UUID
	UserID                     uuid.UUID
	CashBalance                int64
	CashAvailableForWithdrawal int64
	CreatedAt                  time.Time
}

// AccountCreate is a DTO for creating a new account record.
type AccountCreate struct {
	ID                         uuid.UUID
	UserID                     uuid.UUID
	CashBalance                int64
	CashAvailableForWithdrawal int64
}
