package account

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a private-plan cash account record in the database.
// CashAvailableForWithdrawal never exceeds CashBalance.
type Account struct {
	gorm.Model
	ID                         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID                     uuid.UUID `gorm:"type:uuid;index"`
	CashBalance                int64
	CashAvailableForWithdrawal int64
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
