package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/privplan/infra/eventbus"
	"github.com/amirasaad/privplan/infra/repository/memory"
	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/domain"
	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/amirasaad/privplan/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBankGateway answers every transfer inline on the calling goroutine,
// which keeps a full saga run deterministic inside a single Emit chain.
type syncBankGateway struct {
	bus         eventbus.Bus
	accept      bool
	errorReason string
	calls       int
}

func (g *syncBankGateway) InitiateTransfer(
	ctx context.Context,
	withdrawalID, userID, bankAccountID uuid.UUID,
	amount int64,
) error {
	g.calls++
	return g.bus.Emit(ctx, &events.BankResponseReceived{
		WithdrawalID:      withdrawalID,
		Success:           g.accept,
		BankTransactionID: "SYNC-TXN-1",
		ErrorReason:       g.errorReason,
	})
}

type recordingNotifier struct {
	successes int
	failures  int
	reasons   []string
}

func (n *recordingNotifier) NotifySuccess(
	ctx context.Context, userID, accountID, withdrawalID uuid.UUID,
) error {
	n.successes++
	return nil
}

func (n *recordingNotifier) NotifyFailure(
	ctx context.Context, userID, accountID, withdrawalID uuid.UUID, reason string,
) error {
	n.failures++
	n.reasons = append(n.reasons, reason)
	return nil
}

type sagaEnv struct {
	app      *App
	bus      *infraeventbus.MemoryEventBus
	uow      *memory.UoW
	bank     *syncBankGateway
	notifier *recordingNotifier
}

func newSagaEnv(t *testing.T, accept bool, errorReason string) *sagaEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infraeventbus.NewWithMemory(logger)
	uow := memory.NewUoW()
	bank := &syncBankGateway{bus: bus, accept: accept, errorReason: errorReason}
	notifier := &recordingNotifier{}
	cfg := &config.App{
		Saga: &config.Saga{
			BankResponseTimeout: 5 * time.Minute,
			WatchdogInterval:    30 * time.Second,
			HistoryRetryMax:     200 * time.Millisecond,
		},
	}
	a := New(&Deps{
		Bus:      bus,
		Uow:      uow,
		Bank:     bank,
		Notifier: notifier,
		Logger:   logger,
	}, cfg)
	return &sagaEnv{app: a, bus: bus, uow: uow, bank: bank, notifier: notifier}
}

func (e *sagaEnv) seedAccount(t *testing.T, userID, accountID uuid.UUID, balance int64) {
	t.Helper()
	accounts, err := e.uow.AccountRepository()
	require.NoError(t, err)
	require.NoError(t, accounts.Create(context.Background(), dto.AccountCreate{
		ID:                         accountID,
		UserID:                     userID,
		CashBalance:                balance,
		CashAvailableForWithdrawal: balance,
	}))
}

func (e *sagaEnv) account(t *testing.T, userID, accountID uuid.UUID) *dto.AccountRead {
	t.Helper()
	accounts, err := e.uow.AccountRepository()
	require.NoError(t, err)
	acct, err := accounts.Get(context.Background(), userID, accountID)
	require.NoError(t, err)
	return acct
}

func eventTypes(bus *infraeventbus.MemoryEventBus) []string {
	published := bus.Published()
	types := make([]string, 0, len(published))
	for _, e := range published {
		types = append(types, e.Type())
	}
	return types
}

func TestSaga_HappyPath(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, true, "")
	env.seedAccount(t, userID, accountID, 1000)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	final, err := env.app.WithdrawalService.Get(ctx, userID, accountID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StepCompleted, final.Step)
	assert.Equal(t, withdrawal.BankAccepted, final.BankStatus)
	assert.Equal(t, "SYNC-TXN-1", final.BankTransactionID)

	acct := env.account(t, userID, accountID)
	assert.Equal(t, int64(600), acct.CashBalance)
	assert.Equal(t, int64(600), acct.CashAvailableForWithdrawal)

	assert.Equal(t, 1, env.bank.calls)
	assert.Equal(t, 1, env.notifier.successes)
	assert.Zero(t, env.notifier.failures)
	require.Len(t, final.Notifications, 1)
	assert.Equal(t, withdrawal.NotificationSuccess, final.Notifications[0].Type)

	assert.Equal(t, []string{
		events.EventTypeWithdrawalCreated.String(),
		events.EventTypeWithdrawalDebited.String(),
		events.EventTypeBankResponseReceived.String(),
		events.EventTypeWithdrawalCompleted.String(),
		events.EventTypeWithdrawalSentToBank.String(),
	}, eventTypes(env.bus))

	steps := make([]withdrawal.Step, 0, len(final.StepHistory))
	for _, entry := range final.StepHistory {
		steps = append(steps, entry.Step)
	}
	assert.Equal(t, []withdrawal.Step{
		withdrawal.StepCreated,
		withdrawal.StepDebiting,
		withdrawal.StepSendingToBank,
		withdrawal.StepReceivedBankResponse,
		withdrawal.StepCompleted,
	}, steps)
}

func TestSaga_BankRejection(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, false, "account frozen")
	env.seedAccount(t, userID, accountID, 1000)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	final, err := env.app.WithdrawalService.Get(ctx, userID, accountID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StepFailed, final.Step)
	assert.Equal(t, withdrawal.BankRejected, final.BankStatus)

	// the compensating credit-back restored the full balance
	acct := env.account(t, userID, accountID)
	assert.Equal(t, int64(1000), acct.CashBalance)
	assert.Equal(t, int64(1000), acct.CashAvailableForWithdrawal)

	assert.Equal(t, 1, env.notifier.failures)
	assert.Zero(t, env.notifier.successes)
	require.Len(t, final.Notifications, 1)
	assert.Equal(t, withdrawal.NotificationFailure, final.Notifications[0].Type)
	require.Len(t, env.notifier.reasons, 1)
	assert.Contains(t, env.notifier.reasons[0], "account frozen")
}

func TestSaga_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, true, "")
	env.seedAccount(t, userID, accountID, 300)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	final, err := env.app.WithdrawalService.Get(ctx, userID, accountID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StepFailed, final.Step)
	assert.NotEmpty(t, final.LastError)

	acct := env.account(t, userID, accountID)
	assert.Equal(t, int64(300), acct.CashBalance)
	assert.Equal(t, int64(300), acct.CashAvailableForWithdrawal)

	// the bank is never contacted for an underfunded withdrawal
	assert.Zero(t, env.bank.calls)
	assert.Equal(t, 1, env.notifier.failures)
}

func TestSaga_DuplicateCallbackIsIdempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, true, "")
	env.seedAccount(t, userID, accountID, 1000)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	// the bank redelivers its callback after the saga already completed
	require.NoError(t, env.bus.Emit(ctx, &events.BankResponseReceived{
		WithdrawalID:      w.ID,
		Success:           true,
		BankTransactionID: "SYNC-TXN-1",
	}))

	final, err := env.app.WithdrawalService.Get(ctx, userID, accountID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StepCompleted, final.Step)
	assert.Equal(t, int64(600), env.account(t, userID, accountID).CashBalance)
	assert.Equal(t, 1, env.notifier.successes)
	require.Len(t, final.Notifications, 1)
}

func TestSaga_RedeliveredTerminalEventNotifiesOnce(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, true, "")
	env.seedAccount(t, userID, accountID, 1000)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	// the terminal event comes around again
	require.NoError(t, env.bus.Emit(ctx, &events.WithdrawalCompleted{
		FlowEvent:         events.NewFlowEvent(userID, accountID),
		WithdrawalID:      w.ID,
		BankTransactionID: "SYNC-TXN-1",
	}))

	final, err := env.app.WithdrawalService.Get(ctx, userID, accountID, w.ID)
	require.NoError(t, err)
	require.Len(t, final.Notifications, 1)
	assert.Equal(t, 1, env.notifier.successes)
}

func TestSaga_DirectReplayOfGuardedCommand(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	env := newSagaEnv(t, true, "")
	env.seedAccount(t, userID, accountID, 1000)

	w, err := env.app.WithdrawalService.RequestWithdrawal(ctx, commands.RequestWithdrawal{
		UserID:        userID,
		AccountID:     accountID,
		BankAccountID: uuid.New(),
		Amount:        400,
	})
	require.NoError(t, err)

	err = env.app.WithdrawalService.Debit(ctx, commands.DebitAccount{
		UserID:       userID,
		AccountID:    accountID,
		WithdrawalID: w.ID,
	})
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, int64(600), env.account(t, userID, accountID).CashBalance)
}
