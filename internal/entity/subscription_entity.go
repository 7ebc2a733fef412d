// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"resumeforge-be/pkg/pricing"
)

type SubscriptionStatus string
type PaymentStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// UserSubscription is the mutable entitlement record for one user.
//
// Credits is an integer balance and never goes negative; the only decrement
// path is entitlement.Manager.DeductCredit. Version is a monotonic counter
// bumped on every server-side write so stale optimistic copies lose to the
// row in Postgres.
type UserSubscription struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	PlanId            pricing.PlanID
	Credits           int
	BillingCycle      pricing.BillingCycle
	SubscriptionStart time.Time
	SubscriptionEnd   *time.Time // nil for lifetime plans
	IsActive          bool
	Status            SubscriptionStatus
	PaymentStatus     PaymentStatus
	Version           int64
	UsageHistory      []UsageRecord // newest first
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Plan resolves the catalog entry for the subscription's plan id.
func (s *UserSubscription) Plan() pricing.Plan {
	return pricing.GetPlan(s.PlanId)
}

// Expired reports whether the subscription period has lapsed.
// Lifetime subscriptions (nil end) never expire.
func (s *UserSubscription) Expired(now time.Time) bool {
	return s.SubscriptionEnd != nil && now.After(*s.SubscriptionEnd)
}

// UsageStats aggregates the usage history for display.
type UsageStats struct {
	TotalActions      int
	TotalCreditsSpent int
	ByAction          map[pricing.FeatureAction]int
}

// Stats computes aggregate totals over the usage history.
func (s *UserSubscription) Stats() UsageStats {
	stats := UsageStats{ByAction: make(map[pricing.FeatureAction]int)}
	for _, rec := range s.UsageHistory {
		stats.TotalActions++
		stats.TotalCreditsSpent += rec.CreditsCost
		stats.ByAction[rec.Action]++
	}
	return stats
}
