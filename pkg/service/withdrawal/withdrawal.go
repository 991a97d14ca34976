// Package withdrawal provides business logic for the private-plan withdrawal
// saga: guarded step transitions, the ledger debit and its compensating
// credit-back, and the notification audit trail.
//
// Every mutating operation asserts the withdrawal's current step before
// touching state, so duplicate or out-of-order event delivery is rejected at
// the boundary instead of corrupting the aggregate.
package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/amirasaad/privplan/pkg/commands"
	"github.com/amirasaad/privplan/pkg/config"
	"github.com/amirasaad/privplan/pkg/domain"
	"github.com/amirasaad/privplan/pkg/domain/events"
	"github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/amirasaad/privplan/pkg/eventbus"
	"github.com/amirasaad/privplan/pkg/provider"
	"github.com/amirasaad/privplan/pkg/repository"
)

// Service provides the guarded withdrawal operations the saga handlers invoke.
type Service struct {
	bus      eventbus.Bus
	uow      repository.UnitOfWork
	bank     provider.BankGateway
	notifier provider.Notifier
	cfg      *config.Saga
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a new Service with the provided dependencies.
func New(
	bus eventbus.Bus,
	uow repository.UnitOfWork,
	bank provider.BankGateway,
	notifier provider.Notifier,
	cfg *config.Saga,
	logger *slog.Logger,
) *Service {
	return &Service{
		bus:      bus,
		uow:      uow,
		bank:     bank,
		notifier: notifier,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger.With("service", "withdrawal"),
	}
}

// RequestWithdrawal validates the intent, persists the withdrawal in its
// initial step and emits WithdrawalCreated to start the saga.
func (s *Service) RequestWithdrawal(
	ctx context.Context,
	cmd commands.RequestWithdrawal,
) (*dto.WithdrawalRead, error) {
	log := s.logger.With("user_id", cmd.UserID, "account_id", cmd.AccountID)
	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid withdrawal request: %w", err)
	}

	accountRepo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	if _, err := accountRepo.Get(ctx, cmd.UserID, cmd.AccountID); err != nil {
		return nil, err
	}

	w, err := withdrawal.New(cmd.UserID, cmd.AccountID, cmd.BankAccountID, cmd.Amount)
	if err != nil {
		return nil, err
	}

	repo, err := s.uow.WithdrawalRepository()
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, dto.WithdrawalCreate{
		ID:                       w.ID,
		UserID:                   w.UserID,
		SourceAccountID:          w.SourceAccountID,
		DestinationBankAccountID: w.DestinationBankAccountID,
		Amount:                   w.Amount,
		Step:                     w.Step,
		StepHistory:              w.StepHistory,
		BankStatus:               w.BankStatus,
	}); err != nil {
		return nil, err
	}
	log.Info("✅ [SUCCESS] Withdrawal created", "withdrawal_id", w.ID, "amount", w.Amount)

	evt := &events.WithdrawalCreated{
		FlowEvent:     events.NewFlowEvent(cmd.UserID, cmd.AccountID),
		WithdrawalID:  w.ID,
		BankAccountID: cmd.BankAccountID,
		Amount:        cmd.Amount,
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		log.Error("❌ [ERROR] Failed to emit WithdrawalCreated", "error", err)
	}
	return s.Get(ctx, cmd.UserID, cmd.AccountID, w.ID)
}

// Debit applies the ledger check-and-debit for a created withdrawal.
// It is only legal from CREATED, which makes the debit exactly-once: replays
// fail the step guard before any side effect.
func (s *Service) Debit(ctx context.Context, cmd commands.DebitAccount) error {
	log := s.logger.With("op", "Debit", "withdrawal_id", cmd.WithdrawalID)

	w, err := s.getWithRetry(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepCreated); err != nil {
		return err
	}

	// The follow-up event is emitted only after Do commits; emitting inside
	// the transaction would let a handler read the pre-commit step and stall.
	var followUp events.Event
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := s.transition(ctx, uow, w, withdrawal.StepDebiting); err != nil {
			return err
		}

		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		acct, err := accountRepo.CheckAndDebit(ctx, cmd.UserID, cmd.AccountID, w.Amount)
		switch {
		case errors.Is(err, domain.ErrNotEnoughFunds):
			log.Info("🚫 [SKIP] Insufficient funds", "amount", w.Amount)
			var available int64
			if acctRead, getErr := accountRepo.Get(ctx, cmd.UserID, cmd.AccountID); getErr == nil {
				available = acctRead.CashAvailableForWithdrawal
			}
			if err := s.transition(
				ctx, uow, w, withdrawal.StepInsufficientFunds,
				withComment(err.Error()),
			); err != nil {
				return err
			}
			followUp = &events.WithdrawalInsufficientFunds{
				FlowEvent:    flowOf(w),
				WithdrawalID: w.ID,
				Amount:       w.Amount,
				Available:    available,
			}
			return nil
		case err != nil:
			log.Error("❌ [ERROR] Ledger debit failed", "error", err)
			if err := s.transition(
				ctx, uow, w, withdrawal.StepFailed,
				withLastError(err.Error()),
			); err != nil {
				return err
			}
			followUp = &events.WithdrawalFailed{
				FlowEvent:    flowOf(w),
				WithdrawalID: w.ID,
				Reason:       err.Error(),
			}
			return nil
		}
		log.Info("✅ [SUCCESS] Account debited",
			"amount", w.Amount,
			"available", acct.CashAvailableForWithdrawal)

		if err := s.transition(ctx, uow, w, withdrawal.StepSendingToBank); err != nil {
			return err
		}
		followUp = &events.WithdrawalDebited{
			FlowEvent:     flowOf(w),
			WithdrawalID:  w.ID,
			BankAccountID: w.DestinationBankAccountID,
			Amount:        w.Amount,
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.bus.Emit(ctx, followUp)
}

// SendBankTransfer hands the transfer to the bank gateway. On gateway
// rejection the saga flips to ROLLING_BACK; on success the saga suspends until
// the bank callback arrives. The gateway deduplicates by withdrawal ID, so a
// redelivered event retrying this step is harmless.
func (s *Service) SendBankTransfer(ctx context.Context, cmd commands.SendToBank) error {
	log := s.logger.With("op", "SendBankTransfer", "withdrawal_id", cmd.WithdrawalID)

	w, err := s.getWithRetry(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepSendingToBank, withdrawal.StepDebiting); err != nil {
		return err
	}

	if err := s.bank.InitiateTransfer(
		ctx, w.ID, w.UserID, w.DestinationBankAccountID, w.Amount,
	); err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrBankTransfer, err)
		log.Error("❌ [ERROR] Bank rejected transfer", "error", err)
		return s.BeginRollback(ctx, w.UserID, w.SourceAccountID, w.ID, err.Error())
	}

	log.Info("📤 [EMIT] Transfer sent to bank, awaiting callback")
	return s.bus.Emit(ctx, &events.WithdrawalSentToBank{
		FlowEvent:    flowOf(w),
		WithdrawalID: w.ID,
	})
}

// ReceiveBankResponse reacts to the bank's asynchronous callback and records
// the response on the aggregate. Replays against a withdrawal already past
// SENDING_TO_BANK fail the step guard and perform no side effect.
func (s *Service) ReceiveBankResponse(ctx context.Context, cb provider.BankCallback) error {
	log := s.logger.With("op", "ReceiveBankResponse",
		"withdrawal_id", cb.WithdrawalID, "success", cb.Success)

	w, err := s.getWithRetry(ctx, cb.UserID, cb.AccountID, cb.WithdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepSendingToBank); err != nil {
		return err
	}

	status := withdrawal.BankRejected
	if cb.Success {
		status = withdrawal.BankAccepted
	}
	log.Info("🔄 [PROCESS] Recording bank response", "bank_status", status)
	return s.transition(
		ctx, s.uow, w, withdrawal.StepReceivedBankResponse,
		withBankResult(status, cb.BankTransactionID),
		withComment(cb.ErrorReason),
	)
}

// Complete finalizes a withdrawal whose transfer the bank accepted.
func (s *Service) Complete(ctx context.Context, cmd commands.CompleteWithdrawal) error {
	log := s.logger.With("op", "Complete", "withdrawal_id", cmd.WithdrawalID)

	w, err := s.getWithRetry(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepReceivedBankResponse); err != nil {
		return err
	}

	if err := s.transition(ctx, s.uow, w, withdrawal.StepCompleted); err != nil {
		return err
	}
	log.Info("✅ [SUCCESS] Withdrawal completed", "bank_txn_id", cmd.BankTransactionID)
	return s.bus.Emit(ctx, &events.WithdrawalCompleted{
		FlowEvent:         flowOf(w),
		WithdrawalID:      w.ID,
		BankTransactionID: cmd.BankTransactionID,
	})
}

// BeginRollback moves a withdrawal into ROLLING_BACK and announces it.
// Legal from any step at or past the debit where the money might have left
// the plan: DEBITING (gateway rejection), RECEIVED_BANK_RESPONSE (bank
// failure callback) and SENDING_TO_BANK (watchdog timeout).
func (s *Service) BeginRollback(
	ctx context.Context,
	userID, accountID, withdrawalID uuid.UUID,
	reason string,
) error {
	w, err := s.getWithRetry(ctx, userID, accountID, withdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(
		w,
		withdrawal.StepDebiting,
		withdrawal.StepSendingToBank,
		withdrawal.StepReceivedBankResponse,
	); err != nil {
		return err
	}

	if err := s.transition(
		ctx, s.uow, w, withdrawal.StepRollingBack,
		withComment(reason),
	); err != nil {
		return err
	}
	return s.bus.Emit(ctx, &events.WithdrawalRollingBack{
		FlowEvent:    flowOf(w),
		WithdrawalID: w.ID,
		Reason:       reason,
	})
}

// RollbackDebit runs the compensating credit-back and ends the withdrawal in
// FAILED. ROLLING_BACK is reachable exactly once, so the credit-back is
// at-most-once by construction. The rollback itself is best-effort: a failed
// credit still ends in FAILED with the error recorded.
func (s *Service) RollbackDebit(ctx context.Context, cmd commands.RollbackDebit) error {
	log := s.logger.With("op", "RollbackDebit", "withdrawal_id", cmd.WithdrawalID)

	w, err := s.getWithRetry(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepRollingBack); err != nil {
		return err
	}

	// Emit only after the credit-back and the FAILED transition committed.
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		lastError := cmd.Reason
		if _, err := accountRepo.CreditBack(
			ctx, cmd.UserID, cmd.AccountID, w.Amount,
		); err != nil {
			log.Error("❌ [ERROR] Credit-back failed", "error", err)
			lastError = fmt.Sprintf("%s; credit-back failed: %v", cmd.Reason, err)
		} else {
			log.Info("✅ [SUCCESS] Debit compensated", "amount", w.Amount)
		}

		return s.transition(
			ctx, uow, w, withdrawal.StepFailed,
			withLastError(lastError),
		)
	})
	if err != nil {
		return err
	}
	return s.bus.Emit(ctx, &events.WithdrawalFailed{
		FlowEvent:    flowOf(w),
		WithdrawalID: w.ID,
		Reason:       cmd.Reason,
	})
}

// FailInsufficientFunds ends a withdrawal the ledger refused to debit. No
// compensation runs: the money never left the plan.
func (s *Service) FailInsufficientFunds(
	ctx context.Context,
	userID, accountID, withdrawalID uuid.UUID,
	reason string,
) error {
	w, err := s.getWithRetry(ctx, userID, accountID, withdrawalID)
	if err != nil {
		return err
	}
	if err := assertRead(w, withdrawal.StepInsufficientFunds); err != nil {
		return err
	}
	if err := s.transition(
		ctx, s.uow, w, withdrawal.StepFailed,
		withLastError(reason),
	); err != nil {
		return err
	}
	return s.bus.Emit(ctx, &events.WithdrawalFailed{
		FlowEvent:    flowOf(w),
		WithdrawalID: w.ID,
		Reason:       reason,
	})
}

// RecordNotification dispatches the terminal-state notification and records
// the attempt on the withdrawal's audit trail. Transport failures are logged
// and swallowed; they never propagate into the saga.
func (s *Service) RecordNotification(ctx context.Context, cmd commands.NotifyUser) error {
	log := s.logger.With("op", "RecordNotification",
		"withdrawal_id", cmd.WithdrawalID, "success", cmd.Success)

	w, err := s.getWithRetry(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	if err != nil {
		return err
	}

	nType := withdrawal.NotificationSuccess
	message := fmt.Sprintf("Your withdrawal of %d completed successfully", w.Amount)
	if !cmd.Success {
		nType = withdrawal.NotificationFailure
		message = fmt.Sprintf("Your withdrawal of %d failed: %s", w.Amount, cmd.Reason)
	}

	// A redelivered terminal event must not notify the user twice.
	for _, n := range w.Notifications {
		if n.Type == nType {
			log.Info("🚫 [SKIP] Notification already recorded", "type", nType)
			return nil
		}
	}

	if cmd.Success {
		err = s.notifier.NotifySuccess(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID)
	} else {
		err = s.notifier.NotifyFailure(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID, cmd.Reason)
	}
	if err != nil {
		// Best-effort: the attempt is still recorded below.
		log.Error("❌ [ERROR] Notification delivery failed", "error", err)
	}

	notifications := append(w.Notifications, withdrawal.Notification{
		Type:    nType,
		Message: message,
		SentAt:  time.Now(),
		UserID:  cmd.UserID,
	})
	repo, err := s.uow.WithdrawalRepository()
	if err != nil {
		return err
	}
	return repo.Update(ctx, cmd.UserID, cmd.AccountID, cmd.WithdrawalID, dto.WithdrawalUpdate{
		Notifications: notifications,
	})
}

// Get retrieves a withdrawal scoped by (user, account, id).
func (s *Service) Get(
	ctx context.Context,
	userID, accountID, withdrawalID uuid.UUID,
) (*dto.WithdrawalRead, error) {
	repo, err := s.uow.WithdrawalRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, userID, accountID, withdrawalID)
}

// Find retrieves a withdrawal by id alone, for the bank callback path.
func (s *Service) Find(ctx context.Context, withdrawalID uuid.UUID) (*dto.WithdrawalRead, error) {
	repo, err := s.uow.WithdrawalRepository()
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, withdrawalID)
}

// transition appends the step to the history, mirrors it into the current
// step and applies any extra field updates in one store write, keeping the
// invariant that the last history entry equals the current step.
func (s *Service) transition(
	ctx context.Context,
	uow repository.UnitOfWork,
	w *dto.WithdrawalRead,
	step withdrawal.Step,
	opts ...updateOption,
) error {
	if !w.Step.CanTransition(step) {
		return &domain.PreconditionError{
			WithdrawalID: w.ID.String(),
			Actual:       w.Step.String(),
			Expected:     []string{step.String()},
		}
	}
	history := append(w.StepHistory, withdrawal.StepEntry{
		Step:         step,
		RetrialCount: w.StepRetrialCount,
		At:           time.Now(),
	})
	update := dto.WithdrawalUpdate{
		Step:        &step,
		StepHistory: history,
	}
	for _, opt := range opts {
		opt(&update)
	}

	repo, err := uow.WithdrawalRepository()
	if err != nil {
		return err
	}
	if err := repo.Update(ctx, w.UserID, w.SourceAccountID, w.ID, update); err != nil {
		return err
	}
	w.Step = step
	w.StepHistory = history
	return nil
}

type updateOption func(*dto.WithdrawalUpdate)

func withComment(comment string) updateOption {
	return func(u *dto.WithdrawalUpdate) {
		if comment != "" {
			u.Comment = &comment
		}
	}
}

func withLastError(lastError string) updateOption {
	return func(u *dto.WithdrawalUpdate) { u.LastError = &lastError }
}

func withBankResult(status withdrawal.BankStatus, bankTxnID string) updateOption {
	return func(u *dto.WithdrawalUpdate) {
		u.BankStatus = &status
		if bankTxnID != "" {
			u.BankTransactionID = &bankTxnID
		}
	}
}

// getWithRetry reads a withdrawal with short bounded backoff, tolerating the
// race where an event is handled before the just-created record is visible.
func (s *Service) getWithRetry(
	ctx context.Context,
	userID, accountID, withdrawalID uuid.UUID,
) (*dto.WithdrawalRead, error) {
	repo, err := s.uow.WithdrawalRepository()
	if err != nil {
		return nil, err
	}
	var w *dto.WithdrawalRead
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxElapsedTime = s.cfg.HistoryRetryMax
	err = backoff.Retry(func() error {
		var getErr error
		w, getErr = repo.Get(ctx, userID, accountID, withdrawalID)
		if getErr == nil {
			return nil
		}
		if errors.Is(getErr, domain.ErrWithdrawalNotFound) {
			return getErr
		}
		return backoff.Permanent(getErr)
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return nil, err
	}
	return w, nil
}

// assertRead applies the step guard to a read model.
func assertRead(w *dto.WithdrawalRead, allowed ...withdrawal.Step) error {
	return withdrawal.GuardStep(w.ID.String(), w.Step, allowed...)
}

func flowOf(w *dto.WithdrawalRead) events.FlowEvent {
	return events.NewFlowEvent(w.UserID, w.SourceAccountID)
}
