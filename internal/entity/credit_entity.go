// FILE: internal/entity/credit_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"resumeforge-be/pkg/pricing"
)

type CreditTransactionType string

const (
	CreditTransactionGrant      CreditTransactionType = "grant"
	CreditTransactionDeduction  CreditTransactionType = "deduction"
	CreditTransactionPurchase   CreditTransactionType = "purchase"
	CreditTransactionPlanChange CreditTransactionType = "plan_change"
)

// CreditTransaction is one row of the authoritative server-side ledger.
// Append-only; BalanceAfter snapshots the balance once the row applied.
type CreditTransaction struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	TransactionType CreditTransactionType
	Amount          int // negative for deductions
	Action          *pricing.FeatureAction
	BalanceAfter    int
	Notes           *string
	CreatedAt       time.Time
}

// UsageRecord is an append-only audit entry for one gated action.
// RemainingCredits snapshots the post-action balance; write-once.
type UsageRecord struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Action           pricing.FeatureAction
	CreditsCost      int
	RemainingCredits int
	Timestamp        time.Time
}
