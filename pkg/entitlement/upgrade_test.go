package entitlement

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/pkg/pricing"
)

func TestUpgradePlanIsPure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sub := subOnPlan(pricing.PlanFree, 4)
	sub.UsageHistory = []entity.UsageRecord{{
		Id:     uuid.New(),
		Action: pricing.ActionAiRewrite,
	}}

	a := UpgradePlan(sub, pricing.PlanQuarterlyPro, pricing.BillingCycleMonthly, now)
	b := UpgradePlan(sub, pricing.PlanQuarterlyPro, pricing.BillingCycleMonthly, now)

	if sub.PlanId != pricing.PlanFree || sub.Credits != 4 {
		t.Error("UpgradePlan mutated its input")
	}
	if a.PlanId != b.PlanId || a.Credits != b.Credits || !a.SubscriptionEnd.Equal(*b.SubscriptionEnd) {
		t.Error("identical inputs should yield identical outputs")
	}
	if len(a.UsageHistory) != 1 {
		t.Error("usage history must survive the transition")
	}
}

func TestUpgradePlanCreditsAndPeriod(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		target      pricing.PlanID
		cycle       pricing.BillingCycle
		wantCredits int
		wantEnd     *time.Time
	}{
		{
			name:        "free to quarterly pro monthly cycle",
			target:      pricing.PlanQuarterlyPro,
			cycle:       pricing.BillingCycleMonthly,
			wantCredits: 300,
			wantEnd:     timePtr(now.AddDate(0, 1, 0)),
		},
		{
			name:        "free to week pass",
			target:      pricing.PlanWeekPass,
			cycle:       "",
			wantCredits: 0,
			wantEnd:     timePtr(now.AddDate(0, 0, 7)),
		},
		{
			name:        "free to lifetime",
			target:      pricing.PlanLifetime,
			cycle:       "",
			wantCredits: 1000,
			wantEnd:     nil,
		},
		{
			name:        "downgrade back to free resets balance",
			target:      pricing.PlanFree,
			cycle:       "",
			wantCredits: 10,
			wantEnd:     timePtr(now.AddDate(0, 1, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := subOnPlan(pricing.PlanFree, 2)
			got := UpgradePlan(sub, tt.target, tt.cycle, now)

			if got.Credits != tt.wantCredits {
				t.Errorf("Credits = %d, want %d", got.Credits, tt.wantCredits)
			}
			if !got.IsActive {
				t.Error("upgraded subscription must be active")
			}
			if !got.SubscriptionStart.Equal(now) {
				t.Errorf("SubscriptionStart = %v, want %v", got.SubscriptionStart, now)
			}
			if tt.wantEnd == nil {
				if got.SubscriptionEnd != nil {
					t.Errorf("SubscriptionEnd = %v, want nil (lifetime)", got.SubscriptionEnd)
				}
			} else if got.SubscriptionEnd == nil || !got.SubscriptionEnd.Equal(*tt.wantEnd) {
				t.Errorf("SubscriptionEnd = %v, want %v", got.SubscriptionEnd, tt.wantEnd)
			}
		})
	}
}

func TestMonthlyReset(t *testing.T) {
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	free := subOnPlan(pricing.PlanFree, 2)
	if got := MonthlyReset(free, now).Credits; got != 10 {
		t.Errorf("free reset credits = %d, want 10", got)
	}

	lifetime := subOnPlan(pricing.PlanLifetime, 640)
	if got := MonthlyReset(lifetime, now).Credits; got != 640 {
		t.Errorf("lifetime balance should not reset, got %d", got)
	}
}

func TestGuestSubscriptionDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sub := GuestSubscription(now)

	if sub.PlanId != pricing.PlanFree {
		t.Errorf("PlanId = %s, want free", sub.PlanId)
	}
	if sub.Credits != 10 {
		t.Errorf("Credits = %d, want the free plan's starting grant", sub.Credits)
	}
	if !sub.IsActive {
		t.Error("guest default must be active")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
