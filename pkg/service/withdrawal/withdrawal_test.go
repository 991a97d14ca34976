package withdrawal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/privplan/infra/eventbus"
	"github.com/amirasaad/privplan/infra/repository/memory"
	"github.com/amirasaad/privplan/internal/fixtures/mocks"
	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/domain"
	"github.com/amirasaad/privplan/pkg/domain/events"
	domainwithdrawal "github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/amirasaad/privplan/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSagaConfig() *config.Saga {
	return &config.Saga{
		BankResponseTimeout: 5 * time.Minute,
		WatchdogInterval:    30 * time.Second,
		HistoryRetryMax:     200 * time.Millisecond,
	}
}

type testEnv struct {
	svc      *Service
	bus      *infraeventbus.MemoryEventBus
	uow      *memory.UoW
	bank     *mocks.BankGateway
	notifier *mocks.Notifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	bus := infraeventbus.NewWithMemory(testLogger())
	uow := memory.NewUoW()
	bank := mocks.NewBankGateway(t)
	notifier := mocks.NewNotifier(t)
	svc := New(bus, uow, bank, notifier, testSagaConfig(), testLogger())
	return &testEnv{svc: svc, bus: bus, uow: uow, bank: bank, notifier: notifier}
}

func (e *testEnv) seedAccount(t *testing.T, userID, accountID uuid.UUID, balance int64) {
	t.Helper()
	repo, err := e.uow.AccountRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), dto.AccountCreate{
		ID:                         accountID,
		UserID:                     userID,
		CashBalance:                balance,
		CashAvailableForWithdrawal: balance,
	}))
}

func (e *testEnv) seedWithdrawal(
	t *testing.T,
	userID, accountID uuid.UUID,
	amount int64,
	step domainwithdrawal.Step,
) uuid.UUID {
	t.Helper()
	id := uuid.New()
	repo, err := e.uow.WithdrawalRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), dto.WithdrawalCreate{
		ID:                       id,
		UserID:                   userID,
		SourceAccountID:          accountID,
		DestinationBankAccountID: uuid.New(),
		Amount:                   amount,
		Step:                     step,
		StepHistory: []domainwithdrawal.StepEntry{
			{Step: step, At: time.Now()},
		},
		BankStatus: domainwithdrawal.BankPending,
	}))
	return id
}

func (e *testEnv) account(t *testing.T, userID, accountID uuid.UUID) *dto.AccountRead {
	t.Helper()
	repo, err := e.uow.AccountRepository()
	require.NoError(t, err)
	acct, err := repo.Get(context.Background(), userID, accountID)
	require.NoError(t, err)
	return acct
}

func (e *testEnv) withdrawal(t *testing.T, userID, accountID, id uuid.UUID) *dto.WithdrawalRead {
	t.Helper()
	w, err := e.svc.Get(context.Background(), userID, accountID, id)
	require.NoError(t, err)
	return w
}

func lastEventType(e *testEnv) string {
	published := e.bus.Published()
	if len(published) == 0 {
		return ""
	}
	return published[len(published)-1].Type()
}

func TestService_RequestWithdrawal(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("persists the withdrawal and emits WithdrawalCreated", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)

		w, err := env.svc.RequestWithdrawal(ctx, commands.RequestWithdrawal{
			UserID:        userID,
			AccountID:     accountID,
			BankAccountID: uuid.New(),
			Amount:        400,
		})
		require.NoError(t, err)

		assert.Equal(t, domainwithdrawal.StepCreated, w.Step)
		assert.Equal(t, int64(400), w.Amount)
		require.Len(t, w.StepHistory, 1)

		published := env.bus.Published()
		require.Len(t, published, 1)
		created, ok := published[0].(*events.WithdrawalCreated)
		require.True(t, ok)
		assert.Equal(t, w.ID, created.WithdrawalID)
		assert.Equal(t, userID, created.UserID)
		assert.NotEqual(t, uuid.Nil, created.CorrelationID)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)

		_, err := env.svc.RequestWithdrawal(ctx, commands.RequestWithdrawal{
			UserID:        userID,
			AccountID:     accountID,
			BankAccountID: uuid.New(),
			Amount:        0,
		})
		require.Error(t, err)
		assert.Empty(t, env.bus.Published())
	})

	t.Run("rejects an unknown account", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.svc.RequestWithdrawal(ctx, commands.RequestWithdrawal{
			UserID:        userID,
			AccountID:     uuid.New(),
			BankAccountID: uuid.New(),
			Amount:        100,
		})
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestService_Debit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("debits both balance fields and emits WithdrawalDebited", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCreated)

		err := env.svc.Debit(ctx, commands.DebitAccount{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		})
		require.NoError(t, err)

		acct := env.account(t, userID, accountID)
		assert.Equal(t, int64(600), acct.CashBalance)
		assert.Equal(t, int64(600), acct.CashAvailableForWithdrawal)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepSendingToBank, w.Step)
		require.Len(t, w.StepHistory, 3)
		assert.Equal(t, domainwithdrawal.StepDebiting, w.StepHistory[1].Step)
		assert.Equal(t, w.Step, w.StepHistory[2].Step)

		assert.Equal(t, events.EventTypeWithdrawalDebited.String(), lastEventType(env))
	})

	t.Run("insufficient funds short-circuits without touching the balance", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 300)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCreated)

		err := env.svc.Debit(ctx, commands.DebitAccount{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		})
		require.NoError(t, err)

		acct := env.account(t, userID, accountID)
		assert.Equal(t, int64(300), acct.CashBalance)
		assert.Equal(t, int64(300), acct.CashAvailableForWithdrawal)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepInsufficientFunds, w.Step)

		published := env.bus.Published()
		require.Len(t, published, 1)
		insufficient, ok := published[0].(*events.WithdrawalInsufficientFunds)
		require.True(t, ok)
		assert.Equal(t, int64(400), insufficient.Amount)
		assert.Equal(t, int64(300), insufficient.Available)
	})

	t.Run("step guard rejects a replay with no side effect", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		err := env.svc.Debit(ctx, commands.DebitAccount{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		})
		var pre *domain.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Equal(t, "SENDING_TO_BANK", pre.Actual)

		acct := env.account(t, userID, accountID)
		assert.Equal(t, int64(1000), acct.CashBalance)
		assert.Empty(t, env.bus.Published())
	})

	t.Run("amount is never mutated by transitions", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCreated)

		require.NoError(t, env.svc.Debit(ctx, commands.DebitAccount{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		}))

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, int64(400), w.Amount)
	})
}

func TestService_SendBankTransfer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("hands the transfer to the gateway and suspends", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		env.bank.EXPECT().
			InitiateTransfer(mock.Anything, id, userID, mock.Anything, int64(400)).
			Return(nil).
			Once()

		err := env.svc.SendBankTransfer(ctx, commands.SendToBank{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		})
		require.NoError(t, err)
		assert.Equal(t, events.EventTypeWithdrawalSentToBank.String(), lastEventType(env))

		// still suspended at SENDING_TO_BANK until the callback arrives
		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepSendingToBank, w.Step)
	})

	t.Run("gateway rejection flips the saga to ROLLING_BACK", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		env.bank.EXPECT().
			InitiateTransfer(mock.Anything, id, userID, mock.Anything, int64(400)).
			Return(assert.AnError).
			Once()

		err := env.svc.SendBankTransfer(ctx, commands.SendToBank{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		})
		require.NoError(t, err)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepRollingBack, w.Step)
		assert.Contains(t, w.Comment, domain.ErrBankTransfer.Error())
		assert.Equal(t, events.EventTypeWithdrawalRollingBack.String(), lastEventType(env))
	})
}

func TestService_ReceiveBankResponse(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("records the accepted response", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		err := env.svc.ReceiveBankResponse(ctx, provider.BankCallback{
			WithdrawalID:      id,
			UserID:            userID,
			AccountID:         accountID,
			Success:           true,
			BankTransactionID: "TXN-1",
		})
		require.NoError(t, err)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepReceivedBankResponse, w.Step)
		assert.Equal(t, domainwithdrawal.BankAccepted, w.BankStatus)
		assert.Equal(t, "TXN-1", w.BankTransactionID)
	})

	t.Run("records the rejected response with its reason", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		err := env.svc.ReceiveBankResponse(ctx, provider.BankCallback{
			WithdrawalID: id,
			UserID:       userID,
			AccountID:    accountID,
			Success:      false,
			ErrorReason:  "account frozen",
		})
		require.NoError(t, err)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepReceivedBankResponse, w.Step)
		assert.Equal(t, domainwithdrawal.BankRejected, w.BankStatus)
		assert.Equal(t, "account frozen", w.Comment)
	})

	t.Run("duplicate callback fails the step guard", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepSendingToBank)

		cb := provider.BankCallback{
			WithdrawalID: id, UserID: userID, AccountID: accountID,
			Success: true, BankTransactionID: "TXN-1",
		}
		require.NoError(t, env.svc.ReceiveBankResponse(ctx, cb))

		err := env.svc.ReceiveBankResponse(ctx, cb)
		var pre *domain.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Equal(t, "RECEIVED_BANK_RESPONSE", pre.Actual)

		// the aggregate is unchanged by the replay
		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepReceivedBankResponse, w.Step)
	})
}

func TestService_CompleteAndRollback(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("Complete finalizes after an accepted response", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepReceivedBankResponse)

		err := env.svc.Complete(ctx, commands.CompleteWithdrawal{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
			BankTransactionID: "TXN-1",
		})
		require.NoError(t, err)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepCompleted, w.Step)
		assert.Equal(t, events.EventTypeWithdrawalCompleted.String(), lastEventType(env))
	})

	t.Run("debit then rollback is balance neutral", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCreated)

		require.NoError(t, env.svc.Debit(ctx, commands.DebitAccount{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
		}))
		require.NoError(t, env.svc.BeginRollback(ctx, userID, accountID, id, "bank said no"))
		require.NoError(t, env.svc.RollbackDebit(ctx, commands.RollbackDebit{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
			Reason: "bank said no",
		}))

		acct := env.account(t, userID, accountID)
		assert.Equal(t, int64(1000), acct.CashBalance)
		assert.Equal(t, int64(1000), acct.CashAvailableForWithdrawal)

		w := env.withdrawal(t, userID, accountID, id)
		assert.Equal(t, domainwithdrawal.StepFailed, w.Step)
		assert.Equal(t, "bank said no", w.LastError)
		assert.Equal(t, events.EventTypeWithdrawalFailed.String(), lastEventType(env))
	})

	t.Run("rollback cannot run twice", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepRollingBack)

		cmd := commands.RollbackDebit{
			UserID: userID, AccountID: accountID, WithdrawalID: id, Reason: "timeout",
		}
		require.NoError(t, env.svc.RollbackDebit(ctx, cmd))

		before := env.account(t, userID, accountID)
		err := env.svc.RollbackDebit(ctx, cmd)
		var pre *domain.PreconditionError
		require.ErrorAs(t, err, &pre)

		after := env.account(t, userID, accountID)
		assert.Equal(t, before.CashBalance, after.CashBalance)
	})

	t.Run("BeginRollback is rejected on a terminal withdrawal", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCompleted)

		err := env.svc.BeginRollback(ctx, userID, accountID, id, "late callback")
		var pre *domain.PreconditionError
		require.ErrorAs(t, err, &pre)
		assert.Equal(t, "COMPLETED", pre.Actual)
	})
}

func TestService_FailInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	env := newTestEnv(t)
	env.seedAccount(t, userID, accountID, 100)
	id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepInsufficientFunds)

	err := env.svc.FailInsufficientFunds(ctx, userID, accountID, id, "not enough funds")
	require.NoError(t, err)

	w := env.withdrawal(t, userID, accountID, id)
	assert.Equal(t, domainwithdrawal.StepFailed, w.Step)
	assert.Equal(t, "not enough funds", w.LastError)

	// the money never moved, so nothing was credited back
	acct := env.account(t, userID, accountID)
	assert.Equal(t, int64(100), acct.CashBalance)
}

func TestService_RecordNotification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("records a success notification", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCompleted)

		env.notifier.EXPECT().
			NotifySuccess(mock.Anything, userID, accountID, id).
			Return(nil).
			Once()

		require.NoError(t, env.svc.RecordNotification(ctx, commands.NotifyUser{
			UserID: userID, AccountID: accountID, WithdrawalID: id, Success: true,
		}))

		w := env.withdrawal(t, userID, accountID, id)
		require.Len(t, w.Notifications, 1)
		assert.Equal(t, domainwithdrawal.NotificationSuccess, w.Notifications[0].Type)
	})

	t.Run("a duplicate command neither notifies nor records again", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepCompleted)

		env.notifier.EXPECT().
			NotifySuccess(mock.Anything, userID, accountID, id).
			Return(nil).
			Once()

		cmd := commands.NotifyUser{
			UserID: userID, AccountID: accountID, WithdrawalID: id, Success: true,
		}
		require.NoError(t, env.svc.RecordNotification(ctx, cmd))
		require.NoError(t, env.svc.RecordNotification(ctx, cmd))

		w := env.withdrawal(t, userID, accountID, id)
		require.Len(t, w.Notifications, 1)
	})

	t.Run("delivery failure is swallowed but still recorded", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedAccount(t, userID, accountID, 1000)
		id := env.seedWithdrawal(t, userID, accountID, 400, domainwithdrawal.StepFailed)

		env.notifier.EXPECT().
			NotifyFailure(mock.Anything, userID, accountID, id, "timeout").
			Return(assert.AnError).
			Once()

		require.NoError(t, env.svc.RecordNotification(ctx, commands.NotifyUser{
			UserID: userID, AccountID: accountID, WithdrawalID: id,
			Success: false, Reason: "timeout",
		}))

		w := env.withdrawal(t, userID, accountID, id)
		require.Len(t, w.Notifications, 1)
		assert.Equal(t, domainwithdrawal.NotificationFailure, w.Notifications[0].Type)
		assert.Contains(t, w.Notifications[0].Message, "timeout")
	})
}

func TestService_getWithRetry(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()
	id := uuid.New()

	t.Run("retries until the record becomes visible", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		repo := mocks.NewWithdrawalRepository(t)
		uow.EXPECT().WithdrawalRepository().Return(repo, nil).Once()

		read := &dto.WithdrawalRead{
			ID: id, UserID: userID, SourceAccountID: accountID,
			Step: domainwithdrawal.StepCreated,
		}
		repo.EXPECT().Get(mock.Anything, userID, accountID, id).
			Return(nil, domain.ErrWithdrawalNotFound).
			Twice()
		repo.EXPECT().Get(mock.Anything, userID, accountID, id).
			Return(read, nil).
			Once()

		svc := New(
			infraeventbus.NewWithMemory(testLogger()),
			uow,
			mocks.NewBankGateway(t),
			mocks.NewNotifier(t),
			testSagaConfig(),
			testLogger(),
		)
		w, err := svc.getWithRetry(ctx, userID, accountID, id)
		require.NoError(t, err)
		assert.Equal(t, id, w.ID)
	})

	t.Run("gives up once the retries are exhausted", func(t *testing.T) {
		uow := mocks.NewUnitOfWork(t)
		repo := mocks.NewWithdrawalRepository(t)
		uow.EXPECT().WithdrawalRepository().Return(repo, nil).Once()
		repo.EXPECT().Get(mock.Anything, userID, accountID, id).
			Return(nil, domain.ErrWithdrawalNotFound)

		cfg := testSagaConfig()
		cfg.HistoryRetryMax = 50 * time.Millisecond
		svc := New(
			infraeventbus.NewWithMemory(testLogger()),
			uow,
			mocks.NewBankGateway(t),
			mocks.NewNotifier(t),
			cfg,
			testLogger(),
		)
		_, err := svc.getWithRetry(ctx, userID, accountID, id)
		require.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
	})
}

// txObservingUoW flags the window where Do's function is still running, so a
// bus wrapper can detect an emit that happens before the write batch is done.
type txObservingUoW struct {
	*memory.UoW
	inTx bool
}

func (u *txObservingUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.inTx = true
	defer func() { u.inTx = false }()
	return u.UoW.Do(ctx, fn)
}

type txObservingBus struct {
	*infraeventbus.MemoryEventBus
	uow         *txObservingUoW
	emittedInTx []string
}

func (b *txObservingBus) Emit(ctx context.Context, e events.Event) error {
	if b.uow.inTx {
		b.emittedInTx = append(b.emittedInTx, e.Type())
	}
	return b.MemoryEventBus.Emit(ctx, e)
}

func TestService_EmitsAfterUnitOfWorkCompletes(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	accountID := uuid.New()

	newObserved := func(t *testing.T) (*Service, *txObservingUoW, *txObservingBus) {
		t.Helper()
		uow := &txObservingUoW{UoW: memory.NewUoW()}
		bus := &txObservingBus{
			MemoryEventBus: infraeventbus.NewWithMemory(testLogger()),
			uow:            uow,
		}
		svc := New(
			bus,
			uow,
			mocks.NewBankGateway(t),
			mocks.NewNotifier(t),
			testSagaConfig(),
			testLogger(),
		)
		return svc, uow, bus
	}

	seed := func(t *testing.T, uow *txObservingUoW, balance, amount int64, step domainwithdrawal.Step) uuid.UUID {
		t.Helper()
		accounts, err := uow.AccountRepository()
		require.NoError(t, err)
		require.NoError(t, accounts.Create(ctx, dto.AccountCreate{
			ID:                         accountID,
			UserID:                     userID,
			CashBalance:                balance,
			CashAvailableForWithdrawal: balance,
		}))
		id := uuid.New()
		withdrawals, err := uow.WithdrawalRepository()
		require.NoError(t, err)
		require.NoError(t, withdrawals.Create(ctx, dto.WithdrawalCreate{
			ID:                       id,
			UserID:                   userID,
			SourceAccountID:          accountID,
			DestinationBankAccountID: uuid.New(),
			Amount:                   amount,
			Step:                     step,
			StepHistory: []domainwithdrawal.StepEntry{
				{Step: step, At: time.Now()},
			},
			BankStatus: domainwithdrawal.BankPending,
		}))
		return id
	}

	t.Run("debited event follows the committed debit", func(t *testing.T) {
		svc, uow, bus := newObserved(t)
		id := seed(t, uow, 1000, 400, domainwithdrawal.StepCreated)

		require.NoError(t, svc.Debit(ctx, commands.DebitAccount{
			UserID:       userID,
			AccountID:    accountID,
			WithdrawalID: id,
		}))
		assert.Empty(t, bus.emittedInTx)
		published := bus.Published()
		require.NotEmpty(t, published)
		assert.Equal(t,
			events.EventTypeWithdrawalDebited.String(),
			published[len(published)-1].Type(),
		)
	})

	t.Run("insufficient-funds event follows the committed transition", func(t *testing.T) {
		svc, uow, bus := newObserved(t)
		id := seed(t, uow, 300, 400, domainwithdrawal.StepCreated)

		require.NoError(t, svc.Debit(ctx, commands.DebitAccount{
			UserID:       userID,
			AccountID:    accountID,
			WithdrawalID: id,
		}))
		assert.Empty(t, bus.emittedInTx)
		published := bus.Published()
		require.NotEmpty(t, published)
		assert.Equal(t,
			events.EventTypeWithdrawalInsufficientFunds.String(),
			published[len(published)-1].Type(),
		)
	})

	t.Run("failed event follows the committed rollback", func(t *testing.T) {
		svc, uow, bus := newObserved(t)
		id := seed(t, uow, 600, 400, domainwithdrawal.StepRollingBack)

		require.NoError(t, svc.RollbackDebit(ctx, commands.RollbackDebit{
			UserID:       userID,
			AccountID:    accountID,
			WithdrawalID: id,
			Reason:       "bank said no",
		}))
		assert.Empty(t, bus.emittedInTx)
		published := bus.Published()
		require.NotEmpty(t, published)
		assert.Equal(t,
			events.EventTypeWithdrawalFailed.String(),
			published[len(published)-1].Type(),
		)
	})
}
