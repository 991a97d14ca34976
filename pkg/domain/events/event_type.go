package events

// EventType represents the type of an event in the system.
type EventType string

const (
	EventTypeWithdrawalCreated           EventType = "Withdrawal.Created"
	EventTypeWithdrawalDebited           EventType = "Withdrawal.Debited"
	EventTypeWithdrawalInsufficientFunds EventType = "Withdrawal.InsufficientFunds"
	EventTypeWithdrawalSentToBank        EventType = "Withdrawal.SentToBank"
	EventTypeBankResponseReceived        EventType = "Withdrawal.BankResponseReceived"
	EventTypeWithdrawalRollingBack       EventType = "Withdrawal.RollingBack"
	EventTypeWithdrawalCompleted         EventType = "Withdrawal.Completed"
	EventTypeWithdrawalFailed            EventType = "Withdrawal.Failed"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
