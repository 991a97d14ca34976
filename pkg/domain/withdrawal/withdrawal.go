// Package withdrawal defines the private-plan withdrawal aggregate: the step
// state machine, its append-only step history, and the notification audit
// trail. All mutations go through guarded transition methods; the aggregate is
// never deleted, terminal withdrawals are retained for audit.
package withdrawal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BankStatus tracks what the bank said about the transfer, independent of the
// saga step.
type BankStatus string

const (
	BankPending  BankStatus = "PENDING"
	BankAccepted BankStatus = "ACCEPTED"
	BankRejected BankStatus = "REJECTED"
)

// NotificationType distinguishes the two user-facing message variants.
type NotificationType string

const (
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationFailure NotificationType = "FAILURE"
)

// StepEntry is one record of the append-only step history.
type StepEntry struct {
	Step         Step
	RetrialCount int
	At           time.Time
}

// Notification is one record of the user-facing notification audit trail,
// appended whether or not the transport delivery succeeded.
type Notification struct {
	Type    NotificationType
	Message string
	SentAt  time.Time
	UserID  uuid.UUID
}

// Withdrawal is the aggregate under orchestration.
type Withdrawal struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	SourceAccountID          uuid.UUID
	DestinationBankAccountID uuid.UUID

	// Amount in minor currency units. Immutable once created.
	Amount int64

	Step              Step
	StepRetrialCount  int
	StepHistory       []StepEntry
	Notifications     []Notification
	BankStatus        BankStatus
	BankTransactionID string
	Comment           string
	LastError         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a withdrawal in StepCreated with its first history entry.
func New(userID, accountID, bankAccountID uuid.UUID, amount int64) (*Withdrawal, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	now := time.Now()
	w := &Withdrawal{
		ID:                       uuid.New(),
		UserID:                   userID,
		SourceAccountID:          accountID,
		DestinationBankAccountID: bankAccountID,
		Amount:                   amount,
		BankStatus:               BankPending,
		CreatedAt:                now,
	}
	w.AppendStep(StepCreated, 0)
	return w, nil
}

// AppendStep records a step transition in the history and mirrors it into the
// current step. The history is append-only; the last entry always equals Step.
func (w *Withdrawal) AppendStep(step Step, retrialCount int) {
	now := time.Now()
	w.StepHistory = append(w.StepHistory, StepEntry{
		Step:         step,
		RetrialCount: retrialCount,
		At:           now,
	})
	w.Step = step
	w.StepRetrialCount = retrialCount
	w.UpdatedAt = now
}

// AppendNotification records a dispatched user notification for audit.
func (w *Withdrawal) AppendNotification(t NotificationType, message string) {
	w.Notifications = append(w.Notifications, Notification{
		Type:    t,
		Message: message,
		SentAt:  time.Now(),
		UserID:  w.UserID,
	})
}
