package entitlement

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/pkg/pricing"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func subOnPlan(plan pricing.PlanID, credits int) *entity.UserSubscription {
	return &entity.UserSubscription{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		PlanId:   plan,
		Credits:  credits,
		IsActive: true,
		Status:   entity.SubscriptionStatusActive,
	}
}

func TestCanUseFeature(t *testing.T) {
	tests := []struct {
		name        string
		plan        pricing.PlanID
		credits     int
		action      pricing.FeatureAction
		wantAllowed bool
	}{
		{
			name:        "free plan with enough credits",
			plan:        pricing.PlanFree,
			credits:     10,
			action:      pricing.ActionAiRewrite,
			wantAllowed: true,
		},
		{
			name:        "free plan exact balance",
			plan:        pricing.PlanFree,
			credits:     3,
			action:      pricing.ActionCoverLetter,
			wantAllowed: true,
		},
		{
			name:        "free plan insufficient credits",
			plan:        pricing.PlanFree,
			credits:     2,
			action:      pricing.ActionCoverLetter,
			wantAllowed: false,
		},
		{
			name:        "free plan zero balance",
			plan:        pricing.PlanFree,
			credits:     0,
			action:      pricing.ActionAiRewrite,
			wantAllowed: false,
		},
		{
			name:        "week pass bypasses balance",
			plan:        pricing.PlanWeekPass,
			credits:     0,
			action:      pricing.ActionAiRewrite,
			wantAllowed: true,
		},
		{
			name:        "lifetime unlimited cover letter",
			plan:        pricing.PlanLifetime,
			credits:     0,
			action:      pricing.ActionCoverLetter,
			wantAllowed: true,
		},
		{
			name:        "quarterly pro capped action still needs credits",
			plan:        pricing.PlanQuarterlyPro,
			credits:     1,
			action:      pricing.ActionCoverLetter,
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManagerAt(subOnPlan(tt.plan, tt.credits), fixedClock())
			got := m.CanUseFeature(tt.action)

			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason: %q)", got.Allowed, tt.wantAllowed, got.Reason)
			}
			if !tt.wantAllowed && got.Reason == "" {
				t.Error("denied decision must carry a reason")
			}
		})
	}
}

func TestDeductCreditBalanceAndRecord(t *testing.T) {
	sub := subOnPlan(pricing.PlanFree, 10)
	m := NewManagerAt(sub, fixedClock())

	res := m.DeductCredit(pricing.ActionAiRewrite)
	if !res.Success {
		t.Fatalf("expected success, got reason %q", res.Reason)
	}
	if res.RemainingCredits != 9 {
		t.Errorf("RemainingCredits = %d, want 9", res.RemainingCredits)
	}
	if res.Record == nil {
		t.Fatal("successful deduction must append a usage record")
	}
	if res.Record.RemainingCredits != res.RemainingCredits {
		t.Errorf("record snapshot %d does not match balance %d",
			res.Record.RemainingCredits, res.RemainingCredits)
	}
	if res.Record.CreditsCost != 1 {
		t.Errorf("CreditsCost = %d, want 1", res.Record.CreditsCost)
	}

	// Immutable replace: the original snapshot is untouched.
	if sub.Credits != 10 {
		t.Errorf("input subscription mutated: credits = %d", sub.Credits)
	}
	if len(sub.UsageHistory) != 0 {
		t.Errorf("input subscription history mutated: len = %d", len(sub.UsageHistory))
	}
}

func TestDeductCreditNeverNegative(t *testing.T) {
	m := NewManagerAt(subOnPlan(pricing.PlanFree, 10), fixedClock())

	// cost(ai_rewrite) = 1: ten rewrites succeed, the eleventh is denied.
	for i := 0; i < 10; i++ {
		res := m.DeductCredit(pricing.ActionAiRewrite)
		if !res.Success {
			t.Fatalf("deduction %d failed: %s", i+1, res.Reason)
		}
	}

	res := m.DeductCredit(pricing.ActionAiRewrite)
	if res.Success {
		t.Fatal("11th deduction should be denied")
	}
	if res.Reason == "" {
		t.Error("denial must carry a reason")
	}
	if m.CreditBalance() != 0 {
		t.Errorf("balance = %d, want 0", m.CreditBalance())
	}
	if m.CreditBalance() < 0 {
		t.Fatal("balance went negative")
	}
	if got := len(m.Subscription().UsageHistory); got != 10 {
		t.Errorf("usage records = %d, want 10 (one per success)", got)
	}
}

func TestDeductCreditUnlimitedPlanLogsZeroCost(t *testing.T) {
	m := NewManagerAt(subOnPlan(pricing.PlanWeekPass, 0), fixedClock())

	res := m.DeductCredit(pricing.ActionAiRewrite)
	if !res.Success {
		t.Fatalf("unlimited plan denied: %s", res.Reason)
	}
	if res.RemainingCredits != 0 {
		t.Errorf("credits = %d, want 0 (unlimited never floats the balance)", res.RemainingCredits)
	}
	if res.Record == nil || res.Record.CreditsCost != 0 {
		t.Error("unlimited plan should log a cost-0 usage record")
	}
}

func TestUsageHistoryNewestFirst(t *testing.T) {
	m := NewManagerAt(subOnPlan(pricing.PlanFree, 10), fixedClock())

	m.DeductCredit(pricing.ActionAiRewrite)
	m.DeductCredit(pricing.ActionResumeUpload)

	history := m.Subscription().UsageHistory
	if len(history) != 2 {
		t.Fatalf("history len = %d, want 2", len(history))
	}
	if history[0].Action != pricing.ActionResumeUpload {
		t.Errorf("history[0] = %s, want %s (newest first)", history[0].Action, pricing.ActionResumeUpload)
	}
}

func TestAccessorsIdempotent(t *testing.T) {
	m := NewManagerAt(subOnPlan(pricing.PlanFree, 5), fixedClock())

	first := m.Subscription()
	second := m.Subscription()
	if first != second {
		t.Error("Subscription() without intervening mutation should return the same snapshot")
	}
	if m.CreditBalance() != m.CreditBalance() {
		t.Error("CreditBalance() is not stable")
	}
}

func TestCanAccessTemplate(t *testing.T) {
	free := NewManagerAt(subOnPlan(pricing.PlanFree, 0), fixedClock())
	pro := NewManagerAt(subOnPlan(pricing.PlanQuarterlyPro, 0), fixedClock())

	if !free.CanAccessTemplate("classic") {
		t.Error("free plan should access free templates")
	}
	if free.CanAccessTemplate("executive-premium") {
		t.Error("free plan should not access premium templates")
	}
	if !pro.CanAccessTemplate("executive-premium") {
		t.Error("pro plan should access all templates")
	}
}

func TestGrantCredits(t *testing.T) {
	m := NewManagerAt(subOnPlan(pricing.PlanFree, 3), fixedClock())

	next := m.GrantCredits(50)
	if next.Credits != 53 {
		t.Errorf("credits = %d, want 53", next.Credits)
	}
	if m.GrantCredits(-10).Credits != 53 {
		t.Error("negative grants must be ignored")
	}
}
