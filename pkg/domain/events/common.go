// Package events holds the statically typed domain events that drive the
// withdrawal saga. Dispatch is by Type() string against a compile-time wired
// handler list; there is no runtime registry and no reflection lookup.
package events

import "github.com/google/uuid"

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// FlowEvent carries the identity shared by every event in one saga run.
// CorrelationID ties all events of a single withdrawal flow together in logs.
type FlowEvent struct {
	FlowType      string
	UserID        uuid.UUID
	AccountID     uuid.UUID
	CorrelationID uuid.UUID
}

// NewFlowEvent builds the flow envelope for a withdrawal saga run.
func NewFlowEvent(userID, accountID uuid.UUID) FlowEvent {
	return FlowEvent{
		FlowType:      "withdrawal",
		UserID:        userID,
		AccountID:     accountID,
		CorrelationID: uuid.New(),
	}
}
