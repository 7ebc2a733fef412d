package entitlement

import (
	"time"

	"resumeforge-be/internal/entity"
	"resumeforge-be/pkg/pricing"
)

// UpgradePlan computes the subscription record after a plan change.
//
// Pure: the input is never mutated and identical inputs yield identical
// outputs apart from the clock. The new balance always comes from the target
// plan's credit rules; a stale or negative balance is never carried over.
// Usage history survives the transition.
func UpgradePlan(sub *entity.UserSubscription, target pricing.PlanID, cycle pricing.BillingCycle, now time.Time) *entity.UserSubscription {
	plan := pricing.GetPlan(target)
	if cycle == "" {
		cycle = plan.BillingCycle
	}

	next := *sub
	next.PlanId = plan.ID
	next.BillingCycle = cycle
	next.SubscriptionStart = now
	next.SubscriptionEnd = periodEnd(now, cycle)
	next.IsActive = true
	next.Status = entity.SubscriptionStatusActive
	next.Credits = startingCredits(plan)
	next.UpdatedAt = now

	// Deep-copy history so the old record stays independent.
	next.UsageHistory = append([]entity.UsageRecord(nil), sub.UsageHistory...)

	return &next
}

// MonthlyReset applies a plan's monthly credit grant, replacing the balance
// rather than accumulating. Plans without CreditsReset are untouched.
func MonthlyReset(sub *entity.UserSubscription, now time.Time) *entity.UserSubscription {
	plan := sub.Plan()
	if !plan.CreditRules.UsesCredits || !plan.CreditRules.CreditsReset {
		return sub
	}
	next := *sub
	next.Credits = plan.CreditRules.MonthlyCredits
	next.UpdatedAt = now
	return &next
}

// GuestSubscription is the fresh default created on first sign-in or after
// sign-out resets local state.
func GuestSubscription(now time.Time) *entity.UserSubscription {
	plan := pricing.GetPlan(pricing.PlanFree)
	return &entity.UserSubscription{
		PlanId:            plan.ID,
		Credits:           plan.CreditRules.StartingCredits,
		BillingCycle:      plan.BillingCycle,
		SubscriptionStart: now,
		SubscriptionEnd:   periodEnd(now, plan.BillingCycle),
		IsActive:          true,
		Status:            entity.SubscriptionStatusActive,
		PaymentStatus:     entity.PaymentStatusPaid,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func startingCredits(plan pricing.Plan) int {
	rules := plan.CreditRules
	if !rules.UsesCredits {
		return 0
	}
	if rules.LifetimeCredits > 0 {
		return rules.LifetimeCredits
	}
	if rules.StartingCredits > 0 {
		return rules.StartingCredits
	}
	return rules.MonthlyCredits
}

func periodEnd(start time.Time, cycle pricing.BillingCycle) *time.Time {
	var end time.Time
	switch cycle {
	case pricing.BillingCycleWeekly:
		end = start.AddDate(0, 0, 7)
	case pricing.BillingCycleMonthly:
		end = start.AddDate(0, 1, 0)
	case pricing.BillingCycleQuarterly:
		end = start.AddDate(0, 3, 0)
	case pricing.BillingCycleYearly:
		end = start.AddDate(1, 0, 0)
	case pricing.BillingCycleLifetime:
		return nil
	default:
		end = start.AddDate(0, 1, 0)
	}
	return &end
}
