// Package entitlement implements the credit and plan rules engine.
//
// The Manager is a synchronous decision core over an in-memory
// UserSubscription snapshot. Decisions are side-effect free; DeductCredit is
// the single mutation point and follows an immutable-replace pattern (a new
// subscription value is returned, the input is never touched). Callers that
// apply the result optimistically remain responsible for syncing the
// authoritative ledger in Postgres.
package entitlement

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/pkg/pricing"
)

// Decision is the outcome of an entitlement check.
type Decision struct {
	Allowed bool
	Reason  string
	Cost    int
}

// DeductionResult carries the post-deduction state.
type DeductionResult struct {
	Success          bool
	Reason           string
	RemainingCredits int
	Record           *entity.UsageRecord
	Subscription     *entity.UserSubscription
}

// Manager evaluates gated actions against one user's subscription snapshot.
type Manager struct {
	sub *entity.UserSubscription
	now func() time.Time
}

func NewManager(sub *entity.UserSubscription) *Manager {
	return &Manager{sub: sub, now: time.Now}
}

// NewManagerAt pins the clock, used by tests and replay.
func NewManagerAt(sub *entity.UserSubscription, now func() time.Time) *Manager {
	return &Manager{sub: sub, now: now}
}

// Subscription returns the current in-memory snapshot.
func (m *Manager) Subscription() *entity.UserSubscription {
	return m.sub
}

// CreditBalance returns the snapshot balance.
func (m *Manager) CreditBalance() int {
	return m.sub.Credits
}

// CanUseFeature decides allow/deny for one gated action without mutating
// anything. Unlimited plans bypass the balance check entirely.
func (m *Manager) CanUseFeature(action pricing.FeatureAction) Decision {
	plan := m.sub.Plan()
	cost := plan.CreditRules.Cost(action)

	if plan.Unlimited(action) {
		return Decision{Allowed: true, Cost: cost}
	}

	if limit, ok := plan.FeatureLimits[action]; ok && limit == 0 {
		return Decision{
			Allowed: false,
			Reason:  fmt.Sprintf("%s is not included in the %s plan", action, plan.Name),
			Cost:    cost,
		}
	}

	if !plan.CreditRules.UsesCredits || cost == 0 {
		return Decision{Allowed: true, Cost: cost}
	}

	if m.sub.Credits < cost {
		return Decision{
			Allowed: false,
			Reason:  fmt.Sprintf("insufficient credits: need %d, have %d", cost, m.sub.Credits),
			Cost:    cost,
		}
	}

	return Decision{Allowed: true, Cost: cost}
}

// DeductCredit re-runs the check and, if allowed, returns a new subscription
// value with the cost subtracted and a usage record prepended. Unlimited
// plans charge 0 but still log a record for usage analytics. On denial the
// input subscription is returned unchanged.
func (m *Manager) DeductCredit(action pricing.FeatureAction) DeductionResult {
	decision := m.CanUseFeature(action)
	if !decision.Allowed {
		return DeductionResult{
			Success:          false,
			Reason:           decision.Reason,
			RemainingCredits: m.sub.Credits,
			Subscription:     m.sub,
		}
	}

	plan := m.sub.Plan()
	cost := decision.Cost
	if plan.Unlimited(action) || !plan.CreditRules.UsesCredits {
		cost = 0
	}

	next := *m.sub
	next.Credits = m.sub.Credits - cost

	record := entity.UsageRecord{
		Id:               uuid.New(),
		UserId:           m.sub.UserId,
		Action:           action,
		CreditsCost:      cost,
		RemainingCredits: next.Credits,
		Timestamp:        m.now(),
	}

	// Newest first.
	next.UsageHistory = append([]entity.UsageRecord{record}, m.sub.UsageHistory...)
	next.UpdatedAt = m.now()

	m.sub = &next

	return DeductionResult{
		Success:          true,
		RemainingCredits: next.Credits,
		Record:           &record,
		Subscription:     &next,
	}
}

// CanAccessTemplate is a pure lookup against the plan's template access.
func (m *Manager) CanAccessTemplate(templateID string) bool {
	return pricing.CanAccessTemplate(m.sub.PlanId, templateID)
}

// GrantCredits returns a new subscription value with amount added.
// Used for credit-pack purchases and monthly resets; never negative input.
func (m *Manager) GrantCredits(amount int) *entity.UserSubscription {
	if amount < 0 {
		amount = 0
	}
	next := *m.sub
	next.Credits = m.sub.Credits + amount
	next.UpdatedAt = m.now()
	m.sub = &next
	return &next
}
