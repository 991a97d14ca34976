package withdrawal

import "github.com/amirasaad/privplan/pkg/domain"

// Step is the single source of truth for "what to do next" on a withdrawal.
type Step string

const (
	StepCreated              Step = "CREATED"
	StepDebiting             Step = "DEBITING"
	StepSendingToBank        Step = "SENDING_TO_BANK"
	StepReceivedBankResponse Step = "RECEIVED_BANK_RESPONSE"
	StepRollingBack          Step = "ROLLING_BACK"
	StepCompleted            Step = "COMPLETED"
	StepFailed               Step = "FAILED"
	StepInsufficientFunds    Step = "INSUFFICIENT_FUNDS"
)

func (s Step) String() string { return string(s) }

// Terminal reports whether no further business transition is defined from s.
func (s Step) Terminal() bool {
	return s == StepCompleted || s == StepFailed
}

// legal successor steps per current step. An empty entry means terminal.
var transitions = map[Step][]Step{
	StepCreated:              {StepDebiting, StepSendingToBank, StepInsufficientFunds, StepFailed},
	StepDebiting:             {StepSendingToBank, StepInsufficientFunds, StepRollingBack, StepFailed},
	StepSendingToBank:        {StepReceivedBankResponse, StepCompleted, StepRollingBack},
	StepReceivedBankResponse: {StepCompleted, StepRollingBack},
	StepRollingBack:          {StepFailed},
	StepInsufficientFunds:    {StepFailed},
	StepCompleted:            {},
	StepFailed:               {},
}

// CanTransition reports whether the state machine defines from -> to.
func (s Step) CanTransition(to Step) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// GuardStep returns a *domain.PreconditionError unless actual is one of the
// allowed steps. Every mutating operation applies it before touching state,
// which is what rejects duplicate or out-of-order event delivery.
func GuardStep(withdrawalID string, actual Step, allowed ...Step) error {
	for _, s := range allowed {
		if actual == s {
			return nil
		}
	}
	expected := make([]string, len(allowed))
	for i, s := range allowed {
		expected[i] = s.String()
	}
	return &domain.PreconditionError{
		WithdrawalID: withdrawalID,
		Actual:       actual.String(),
		Expected:     expected,
	}
}

// AssertStep applies GuardStep to the aggregate.
func AssertStep(w *Withdrawal, allowed ...Step) error {
	return GuardStep(w.ID.String(), w.Step, allowed...)
}
