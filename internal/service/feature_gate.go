package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/pkg/pricing"
)

// checkFeatureGate verifies the user may perform a gated action and converts
// a denial into the typed errors the HTTP error handler knows how to map.
func checkFeatureGate(ctx context.Context, es EntitlementService, userId uuid.UUID, action pricing.FeatureAction) error {
	check, err := es.CheckFeature(ctx, userId, action)
	if err != nil {
		return err
	}
	if check.Allowed {
		return nil
	}

	if strings.Contains(check.Reason, "not included") {
		sub, err := es.GetSubscription(ctx, userId)
		if err != nil {
			return err
		}
		return &dto.FeatureNotIncludedError{
			Action: string(action),
			PlanId: string(sub.PlanId),
		}
	}

	return &dto.InsufficientCreditsError{
		Action: string(action),
		Need:   check.Cost,
		Have:   check.RemainingCredits,
	}
}

// settleFeatureUse records the deduction after the gated work succeeded and
// returns the remaining balance.
func settleFeatureUse(ctx context.Context, es EntitlementService, userId uuid.UUID, action pricing.FeatureAction) (int, error) {
	res, err := es.DeductCredit(ctx, userId, action)
	if err != nil {
		return 0, err
	}
	if !res.Success {
		// Balance changed between check and settle; surface the denial.
		return res.RemainingCredits, &dto.InsufficientCreditsError{
			Action: string(action),
			Need:   pricing.GetPlan(pricing.PlanFree).CreditRules.Cost(action),
			Have:   res.RemainingCredits,
		}
	}
	return res.RemainingCredits, nil
}
