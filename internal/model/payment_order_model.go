package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentOrder struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId       *string   `gorm:"type:varchar(50)"`
	PackId       *string   `gorm:"type:varchar(50)"`
	BillingCycle string    `gorm:"type:varchar(20)"`
	GrossAmount  float64   `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (PaymentOrder) TableName() string {
	return "payment_orders"
}
