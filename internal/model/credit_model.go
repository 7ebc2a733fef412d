package model

import (
	"time"

	"github.com/google/uuid"
)

type CreditTransaction struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionType string    `gorm:"type:varchar(32);not null"`
	Amount          int       `gorm:"not null"`
	Action          *string   `gorm:"type:varchar(64);index"`
	BalanceAfter    int       `gorm:"not null"`
	Notes           *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"default:now();not null"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}

type UsageRecord struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	Action           string    `gorm:"type:varchar(64);not null;index"`
	CreditsCost      int       `gorm:"not null"`
	RemainingCredits int       `gorm:"not null"`
	CreatedAt        time.Time `gorm:"default:now();not null;index"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}
