// Package app provides functionality for setting up and configuring the event
// Bus with all necessary event handlers for the application.
package app

import (
	"github.com/amirasaad/privplan/pkg/domain/events"
	withdrawalhandler "github.com/amirasaad/privplan/pkg/handler/withdrawal"
)

// setupEventBus registers every saga step handler with the event Bus. The
// registration set is fixed at startup; there is no runtime discovery.
func (a *App) setupEventBus() {
	bus := a.Deps.Bus
	svc := a.WithdrawalService
	logger := a.Deps.Logger

	bus.Register(
		events.EventTypeWithdrawalCreated.String(),
		withdrawalhandler.HandleCreated(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalDebited.String(),
		withdrawalhandler.HandleDebited(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalInsufficientFunds.String(),
		withdrawalhandler.HandleInsufficientFunds(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalSentToBank.String(),
		withdrawalhandler.HandleSentToBank(logger),
	)
	bus.Register(
		events.EventTypeBankResponseReceived.String(),
		withdrawalhandler.HandleBankResponse(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalRollingBack.String(),
		withdrawalhandler.HandleRollingBack(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalCompleted.String(),
		withdrawalhandler.HandleCompleted(svc, logger),
	)
	bus.Register(
		events.EventTypeWithdrawalFailed.String(),
		withdrawalhandler.HandleFailed(svc, logger),
	)
}
