package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentOrder tracks one checkout through the payment gateway. Exactly one
// of PlanId or PackId is set.
type PaymentOrder struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	PlanId       *string
	PackId       *string
	BillingCycle string
	GrossAmount  float64
	Status       PaymentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
