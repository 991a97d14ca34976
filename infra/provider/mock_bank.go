// Package provider contains outbound collaborator implementations: the mock
// bank gateway used outside production and the log-backed notifier.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/google/uuid"
)

// CallbackFunc receives the asynchronous transfer result. The initializer
// wires it to an event bus emit; tests wire it to a channel or a recorder.
type CallbackFunc func(ctx context.Context, cb provider.BankCallback)

// MockBankGateway simulates the bank side of the transfer for tests and local
// development. InitiateTransfer is idempotent by withdrawal ID: repeated calls
// for the same withdrawal schedule exactly one callback.
//
// This is NOT for production use. A real gateway delivers results via
// authenticated webhooks.
type MockBankGateway struct {
	mu        sync.Mutex
	initiated map[uuid.UUID]struct{}
	cfg       *config.Bank
	callback  CallbackFunc
	logger    *slog.Logger
}

// NewMockBankGateway creates a mock gateway delivering callbacks through cb
// after the configured delay.
func NewMockBankGateway(cfg *config.Bank, cb CallbackFunc, logger *slog.Logger) *MockBankGateway {
	return &MockBankGateway{
		initiated: make(map[uuid.UUID]struct{}),
		cfg:       cfg,
		callback:  cb,
		logger:    logger.With("component", "mock-bank-gateway"),
	}
}

// InitiateTransfer implements provider.BankGateway.
func (g *MockBankGateway) InitiateTransfer(
	ctx context.Context,
	withdrawalID, userID, bankAccountID uuid.UUID,
	amount int64,
) error {
	g.mu.Lock()
	if _, dup := g.initiated[withdrawalID]; dup {
		g.mu.Unlock()
		g.logger.Info("duplicate transfer initiation ignored", "withdrawal_id", withdrawalID)
		return nil
	}
	g.initiated[withdrawalID] = struct{}{}
	g.mu.Unlock()

	g.logger.Info("transfer initiated",
		"withdrawal_id", withdrawalID,
		"bank_account_id", bankAccountID,
		"amount", amount,
	)

	// Simulate the asynchronous bank response
	go func() {
		time.Sleep(g.cfg.CallbackDelay)
		cb := provider.BankCallback{
			WithdrawalID: withdrawalID,
			UserID:       userID,
			AccountID:    uuid.Nil,
			Success:      !g.cfg.FailTransfers,
		}
		if cb.Success {
			cb.BankTransactionID = fmt.Sprintf("MOCK-%s", uuid.New())
		} else {
			cb.ErrorReason = "transfer rejected by bank"
		}
		g.callback(context.WithoutCancel(ctx), cb)
	}()
	return nil
}

// Ensure MockBankGateway implements the BankGateway interface.
var _ provider.BankGateway = (*MockBankGateway)(nil)
