// Package memory provides an in-memory persistence layer for development and
// tests. It honors the same contracts as the GORM-backed layer, including the
// funds-check atomicity of the ledger, but offers no cross-repository
// transactionality.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/privplan/pkg/domain"
	domainwithdrawal "github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	"github.com/amirasaad/privplan/pkg/repository"
	"github.com/amirasaad/privplan/pkg/repository/account"
	"github.com/amirasaad/privplan/pkg/repository/withdrawal"
	"github.com/google/uuid"
)

// UoW is the in-memory unit of work. Do runs the function directly; each
// repository operation is individually atomic under its own mutex.
type UoW struct {
	withdrawals *WithdrawalRepository
	accounts    *AccountRepository
}

// NewUoW creates an in-memory unit of work with empty stores.
func NewUoW() *UoW {
	return &UoW{
		withdrawals: NewWithdrawalRepository(),
		accounts:    NewAccountRepository(),
	}
}

func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(u)
}

func (u *UoW) WithdrawalRepository() (withdrawal.Repository, error) {
	return u.withdrawals, nil
}

func (u *UoW) AccountRepository() (account.Repository, error) {
	return u.accounts, nil
}

var _ repository.UnitOfWork = (*UoW)(nil)

// WithdrawalRepository is a mutex-guarded map store for withdrawals.
type WithdrawalRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*dto.WithdrawalRead
}

// NewWithdrawalRepository creates an empty in-memory withdrawal store.
func NewWithdrawalRepository() *WithdrawalRepository {
	return &WithdrawalRepository{records: make(map[uuid.UUID]*dto.WithdrawalRead)}
}

func (r *WithdrawalRepository) Create(ctx context.Context, create dto.WithdrawalCreate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.records[create.ID] = &dto.WithdrawalRead{
		ID:                       create.ID,
		UserID:                   create.UserID,
		SourceAccountID:          create.SourceAccountID,
		DestinationBankAccountID: create.DestinationBankAccountID,
		Amount:                   create.Amount,
		Step:                     create.Step,
		StepHistory:              append([]domainwithdrawal.StepEntry(nil), create.StepHistory...),
		BankStatus:               create.BankStatus,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	return nil
}

func (r *WithdrawalRepository) Update(
	ctx context.Context,
	userID, accountID, id uuid.UUID,
	update dto.WithdrawalUpdate,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok || record.UserID != userID || record.SourceAccountID != accountID {
		return domain.ErrWithdrawalNotFound
	}
	if update.Step != nil {
		record.Step = *update.Step
	}
	if update.StepRetrialCount != nil {
		record.StepRetrialCount = *update.StepRetrialCount
	}
	if update.StepHistory != nil {
		record.StepHistory = append([]domainwithdrawal.StepEntry(nil), update.StepHistory...)
	}
	if update.Notifications != nil {
		record.Notifications = append([]domainwithdrawal.Notification(nil), update.Notifications...)
	}
	if update.BankStatus != nil {
		record.BankStatus = *update.BankStatus
	}
	if update.BankTransactionID != nil {
		record.BankTransactionID = *update.BankTransactionID
	}
	if update.Comment != nil {
		record.Comment = *update.Comment
	}
	if update.LastError != nil {
		record.LastError = *update.LastError
	}
	record.UpdatedAt = time.Now()
	return nil
}

func (r *WithdrawalRepository) Get(
	ctx context.Context,
	userID, accountID, id uuid.UUID,
) (*dto.WithdrawalRead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok || record.UserID != userID || record.SourceAccountID != accountID {
		return nil, domain.ErrWithdrawalNotFound
	}
	return copyRead(record), nil
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*dto.WithdrawalRead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	return copyRead(record), nil
}

func (r *WithdrawalRepository) ListStuck(
	ctx context.Context,
	step domainwithdrawal.Step,
	olderThan time.Time,
) ([]*dto.WithdrawalRead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*dto.WithdrawalRead
	for _, record := range r.records {
		if record.Step == step && record.UpdatedAt.Before(olderThan) {
			result = append(result, copyRead(record))
		}
	}
	return result, nil
}

func copyRead(record *dto.WithdrawalRead) *dto.WithdrawalRead {
	out := *record
	out.StepHistory = append([]domainwithdrawal.StepEntry(nil), record.StepHistory...)
	out.Notifications = append([]domainwithdrawal.Notification(nil), record.Notifications...)
	return &out
}

var _ withdrawal.Repository = (*WithdrawalRepository)(nil)

// AccountRepository is a mutex-guarded map store for the cash ledger.
type AccountRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dto.AccountRead
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{records: make(map[uuid.UUID]*dto.AccountRead)}
}

func (r *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[create.ID] = &dto.AccountRead{
		ID:                         create.ID,
		UserID:                     create.UserID,
		CashBalance:                create.CashBalance,
		CashAvailableForWithdrawal: create.CashAvailableForWithdrawal,
		CreatedAt:                  time.Now(),
	}
	return nil
}

func (r *AccountRepository) Get(ctx context.Context, userID, accountID uuid.UUID) (*dto.AccountRead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[accountID]
	if !ok || record.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	out := *record
	return &out, nil
}

func (r *AccountRepository) CheckAndDebit(
	ctx context.Context,
	userID, accountID uuid.UUID,
	amount int64,
) (*dto.AccountRead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[accountID]
	if !ok || record.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	if record.CashAvailableForWithdrawal < amount {
		return nil, domain.ErrNotEnoughFunds
	}
	record.CashBalance -= amount
	record.CashAvailableForWithdrawal -= amount
	out := *record
	return &out, nil
}

func (r *AccountRepository) CreditBack(
	ctx context.Context,
	userID, accountID uuid.UUID,
	amount int64,
) (*dto.AccountRead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[accountID]
	if !ok || record.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	record.CashBalance += amount
	record.CashAvailableForWithdrawal += amount
	out := *record
	return &out, nil
}

var _ account.Repository = (*AccountRepository)(nil)
