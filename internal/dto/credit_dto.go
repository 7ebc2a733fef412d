package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FeatureCheckRequest asks whether the current user may perform an action.
type FeatureCheckRequest struct {
	Action string `json:"action" validate:"required"`
}

type FeatureCheckResponse struct {
	Allowed          bool   `json:"allowed"`
	Reason           string `json:"reason,omitempty"`
	Cost             int    `json:"cost"`
	RemainingCredits int    `json:"remaining_credits"`
}

type DeductCreditRequest struct {
	Action string `json:"action" validate:"required"`
}

type DeductCreditResponse struct {
	Success          bool             `json:"success"`
	Reason           string           `json:"reason,omitempty"`
	RemainingCredits int              `json:"remaining_credits"`
	Record           *UsageRecordDTO  `json:"record,omitempty"`
	Subscription     *SubscriptionDTO `json:"subscription,omitempty"`
}

type UsageRecordDTO struct {
	Id               uuid.UUID `json:"id"`
	Action           string    `json:"action"`
	CreditsCost      int       `json:"credits_cost"`
	RemainingCredits int       `json:"remaining_credits"`
	Timestamp        time.Time `json:"timestamp"`
}

type SubscriptionDTO struct {
	PlanId            string     `json:"plan_id"`
	Credits           int        `json:"credits"`
	BillingCycle      string     `json:"billing_cycle"`
	SubscriptionStart *time.Time `json:"subscription_start,omitempty"`
	SubscriptionEnd   *time.Time `json:"subscription_end,omitempty"`
	IsActive          bool       `json:"is_active"`
	Status            string     `json:"status"`
	Version           int64      `json:"version"`
}

type CreditTransactionDTO struct {
	Id           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	Amount       int       `json:"amount"`
	Action       *string   `json:"action,omitempty"`
	BalanceAfter int       `json:"balance_after"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreditHistoryResponse struct {
	Balance      int                    `json:"balance"`
	Transactions []CreditTransactionDTO `json:"transactions"`
}

type CreditPackResponse struct {
	Id      string  `json:"id"`
	Name    string  `json:"name"`
	Credits int     `json:"credits"`
	Price   float64 `json:"price"`
	Savings string  `json:"savings,omitempty"`
}

// InsufficientCreditsError is mapped to a payment-required response by the
// error handler so the frontend can show the paywall.
type InsufficientCreditsError struct {
	Action string `json:"action"`
	Need   int    `json:"need"`
	Have   int    `json:"have"`
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for %s: need %d, have %d", e.Action, e.Need, e.Have)
}

// FeatureNotIncludedError is returned when the plan disables an action
// outright, independent of credit balance.
type FeatureNotIncludedError struct {
	Action string `json:"action"`
	PlanId string `json:"plan_id"`
}

func (e *FeatureNotIncludedError) Error() string {
	return fmt.Sprintf("feature %s is not included in plan %s", e.Action, e.PlanId)
}
