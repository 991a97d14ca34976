package withdrawal

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Withdrawal represents a withdrawal record in the database. StepHistory and
// Notifications are serialized JSON; the saga always rewrites them whole, so
// no relational breakdown is needed.
type Withdrawal struct {
	gorm.Model
	ID                       uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID                   uuid.UUID `gorm:"type:uuid;index"`
	SourceAccountID          uuid.UUID `gorm:"type:uuid;index"`
	DestinationBankAccountID uuid.UUID `gorm:"type:uuid"`
	Amount                   int64
	Step                     string `gorm:"type:varchar(32);not null;index"`
	StepRetrialCount         int
	StepHistory              []byte `gorm:"type:jsonb"`
	Notifications            []byte `gorm:"type:jsonb"`
	BankStatus               string `gorm:"type:varchar(16);not null;default:'PENDING'"`
	BankTransactionID        string `gorm:"type:varchar(64)"`
	Comment                  string
	LastError                string
}

// TableName specifies the table name for the Withdrawal model.
func (Withdrawal) TableName() string {
	return "withdrawals"
}
