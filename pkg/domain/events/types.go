package events

// EventTypes maps wire type names to constructors so transport buses
// (redis streams, kafka) can decode envelopes back into concrete events.
var EventTypes = map[string]func() Event{
	EventTypeWithdrawalCreated.String():           func() Event { return &WithdrawalCreated{} },
	EventTypeWithdrawalDebited.String():           func() Event { return &WithdrawalDebited{} },
	EventTypeWithdrawalInsufficientFunds.String(): func() Event { return &WithdrawalInsufficientFunds{} },
	EventTypeWithdrawalSentToBank.String():        func() Event { return &WithdrawalSentToBank{} },
	EventTypeBankResponseReceived.String():        func() Event { return &BankResponseReceived{} },
	EventTypeWithdrawalRollingBack.String():       func() Event { return &WithdrawalRollingBack{} },
	EventTypeWithdrawalCompleted.String():         func() Event { return &WithdrawalCompleted{} },
	EventTypeWithdrawalFailed.String():            func() Event { return &WithdrawalFailed{} },
}
