package pricing

import "testing"

func TestGetPlanFallsBackToFree(t *testing.T) {
	if got := GetPlan("enterprise-ultra"); got.ID != PlanFree {
		t.Errorf("unknown plan resolved to %s, want free fallback", got.ID)
	}
}

func TestEveryActionHasACost(t *testing.T) {
	for _, plan := range AllPlans() {
		for _, action := range AllActions {
			if _, ok := plan.CreditRules.CreditCosts[action]; !ok {
				t.Errorf("plan %s missing cost for %s", plan.ID, action)
			}
		}
	}
}

func TestEveryPlanCoversEveryAction(t *testing.T) {
	for _, plan := range AllPlans() {
		for _, action := range AllActions {
			if _, ok := plan.FeatureLimits[action]; !ok {
				t.Errorf("plan %s missing feature limit for %s", plan.ID, action)
			}
		}
	}
}

func TestIsPro(t *testing.T) {
	tests := []struct {
		plan PlanID
		want bool
	}{
		{PlanFree, false},
		{PlanWeekPass, true},
		{PlanQuarterlyPro, true},
		{PlanLifetime, true},
	}
	for _, tt := range tests {
		if got := IsPro(tt.plan); got != tt.want {
			t.Errorf("IsPro(%s) = %v, want %v", tt.plan, got, tt.want)
		}
	}
}

func TestCanAccessTemplate(t *testing.T) {
	tests := []struct {
		name     string
		plan     PlanID
		template string
		want     bool
	}{
		{"free plan free template", PlanFree, "classic", true},
		{"free plan premium template", PlanFree, "executive-premium", false},
		{"week pass premium template", PlanWeekPass, "executive-premium", true},
		{"lifetime free template", PlanLifetime, "minimal", true},
		{"unknown plan premium template", PlanID("bogus"), "executive-premium", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccessTemplate(tt.plan, tt.template); got != tt.want {
				t.Errorf("CanAccessTemplate(%s, %s) = %v, want %v", tt.plan, tt.template, got, tt.want)
			}
		})
	}
}

func TestCreditPackLookup(t *testing.T) {
	if _, ok := GetCreditPack("pack_small"); !ok {
		t.Error("pack_small should exist")
	}
	if _, ok := GetCreditPack("pack_enormous"); ok {
		t.Error("unknown pack id should not resolve")
	}
	if len(CreditPacks()) != 3 {
		t.Errorf("expected 3 purchasable packs, got %d", len(CreditPacks()))
	}
}
