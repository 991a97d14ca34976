package account

import (
	"context"
	"errors"

	"github.com/amirasaad/privplan/pkg/domain"
	"github.com/amirasaad/privplan/pkg/dto"
	repo "github.com/amirasaad/privplan/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a new account ledger repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	record := Account{
		ID:                         create.ID,
		UserID:                     create.UserID,
		CashBalance:                create.CashBalance,
		CashAvailableForWithdrawal: create.CashAvailableForWithdrawal,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, userID, accountID uuid.UUID) (*dto.AccountRead, error) {
	var record Account
	err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ?", accountID, userID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

// CheckAndDebit implements account.Repository. The row is locked for the
// duration of the check-then-debit so two concurrent withdrawals cannot both
// pass the funds check.
func (r *repository) CheckAndDebit(
	ctx context.Context,
	userID, accountID uuid.UUID,
	amount int64,
) (*dto.AccountRead, error) {
	var record Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "id = ? AND user_id = ?", accountID, userID).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		if record.CashAvailableForWithdrawal < amount {
			return domain.ErrNotEnoughFunds
		}
		record.CashBalance -= amount
		record.CashAvailableForWithdrawal -= amount
		return tx.Model(&Account{}).Where("id = ?", record.ID).Updates(map[string]any{
			"cash_balance":                  record.CashBalance,
			"cash_available_for_withdrawal": record.CashAvailableForWithdrawal,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

// CreditBack implements account.Repository. Exact inverse of CheckAndDebit.
func (r *repository) CreditBack(
	ctx context.Context,
	userID, accountID uuid.UUID,
	amount int64,
) (*dto.AccountRead, error) {
	var record Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "id = ? AND user_id = ?", accountID, userID).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		record.CashBalance += amount
		record.CashAvailableForWithdrawal += amount
		return tx.Model(&Account{}).Where("id = ?", record.ID).Updates(map[string]any{
			"cash_balance":                  record.CashBalance,
			"cash_available_for_withdrawal": record.CashAvailableForWithdrawal,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return mapModelToDTO(&record), nil
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(record *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:                         record.ID,
		UserID:                     record.UserID,
		CashBalance:                record.CashBalance,
		CashAvailableForWithdrawal: record.CashAvailableForWithdrawal,
		CreatedAt:                  record.CreatedAt,
	}
}
