package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/amirasaad/privplan/pkg/domain"
	domainwithdrawal "github.com/amirasaad/privplan/pkg/domain/withdrawal"
	"github.com/amirasaad/privplan/pkg/dto"
	repo "github.com/amirasaad/privplan/pkg/repository/withdrawal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style withdrawal repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements withdrawal.Repository.
func (r *repository) Create(ctx context.Context, create dto.WithdrawalCreate) error {
	record, err := mapCreateDTOToModel(create)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&record).Error
}

// Update implements withdrawal.Repository.
func (r *repository) Update(
	ctx context.Context,
	userID, accountID, id uuid.UUID,
	update dto.WithdrawalUpdate,
) error {
	updates, err := mapUpdateDTOToModel(update)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&Withdrawal{}).
		Where("id = ? AND user_id = ? AND source_account_id = ?", id, userID, accountID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrWithdrawalNotFound
	}
	return nil
}

// Get implements withdrawal.Repository.
func (r *repository) Get(
	ctx context.Context,
	userID, accountID, id uuid.UUID,
) (*dto.WithdrawalRead, error) {
	var record Withdrawal
	err := r.db.WithContext(ctx).
		First(&record, "id = ? AND user_id = ? AND source_account_id = ?", id, userID, accountID).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record)
}

// FindByID implements withdrawal.Repository.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*dto.WithdrawalRead, error) {
	var record Withdrawal
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&record)
}

// ListStuck implements withdrawal.Repository.
func (r *repository) ListStuck(
	ctx context.Context,
	step domainwithdrawal.Step,
	olderThan time.Time,
) ([]*dto.WithdrawalRead, error) {
	var records []Withdrawal
	err := r.db.WithContext(ctx).
		Where("step = ? AND updated_at < ?", string(step), olderThan).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	result := make([]*dto.WithdrawalRead, 0, len(records))
	for i := range records {
		read, err := mapModelToDTO(&records[i])
		if err != nil {
			return nil, err
		}
		result = append(result, read)
	}
	return result, nil
}

// mapCreateDTOToModel maps WithdrawalCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.WithdrawalCreate) (Withdrawal, error) {
	history, err := json.Marshal(create.StepHistory)
	if err != nil {
		return Withdrawal{}, err
	}
	return Withdrawal{
		ID:                       create.ID,
		UserID:                   create.UserID,
		SourceAccountID:          create.SourceAccountID,
		DestinationBankAccountID: create.DestinationBankAccountID,
		Amount:                   create.Amount,
		Step:                     string(create.Step),
		StepHistory:              history,
		BankStatus:               string(create.BankStatus),
	}, nil
}

// mapUpdateDTOToModel maps WithdrawalUpdate DTO to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.WithdrawalUpdate) (map[string]any, error) {
	updates := make(map[string]any)
	if update.Step != nil {
		updates["step"] = string(*update.Step)
	}
	if update.StepRetrialCount != nil {
		updates["step_retrial_count"] = *update.StepRetrialCount
	}
	if update.StepHistory != nil {
		history, err := json.Marshal(update.StepHistory)
		if err != nil {
			return nil, err
		}
		updates["step_history"] = history
	}
	if update.Notifications != nil {
		notifications, err := json.Marshal(update.Notifications)
		if err != nil {
			return nil, err
		}
		updates["notifications"] = notifications
	}
	if update.BankStatus != nil {
		updates["bank_status"] = string(*update.BankStatus)
	}
	if update.BankTransactionID != nil {
		updates["bank_transaction_id"] = *update.BankTransactionID
	}
	if update.Comment != nil {
		updates["comment"] = *update.Comment
	}
	if update.LastError != nil {
		updates["last_error"] = *update.LastError
	}
	return updates, nil
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(record *Withdrawal) (*dto.WithdrawalRead, error) {
	var history []domainwithdrawal.StepEntry
	if len(record.StepHistory) > 0 {
		if err := json.Unmarshal(record.StepHistory, &history); err != nil {
			return nil, err
		}
	}
	var notifications []domainwithdrawal.Notification
	if len(record.Notifications) > 0 {
		if err := json.Unmarshal(record.Notifications, &notifications); err != nil {
			return nil, err
		}
	}
	return &dto.WithdrawalRead{
		ID:                       record.ID,
		UserID:                   record.UserID,
		SourceAccountID:          record.SourceAccountID,
		DestinationBankAccountID: record.DestinationBankAccountID,
		Amount:                   record.Amount,
		Step:                     domainwithdrawal.Step(record.Step),
		StepRetrialCount:         record.StepRetrialCount,
		StepHistory:              history,
		Notifications:            notifications,
		BankStatus:               domainwithdrawal.BankStatus(record.BankStatus),
		BankTransactionID:        record.BankTransactionID,
		Comment:                  record.Comment,
		LastError:                record.LastError,
		CreatedAt:                record.CreatedAt,
		UpdatedAt:                record.UpdatedAt,
	}, nil
}
