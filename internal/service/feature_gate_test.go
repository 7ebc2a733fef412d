package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/pkg/pricing"
)

type stubEntitlementService struct {
	EntitlementService

	checkRes  *dto.FeatureCheckResponse
	checkErr  error
	deductRes *dto.DeductCreditResponse
	deductErr error
	sub       *entity.UserSubscription
}

func (s *stubEntitlementService) CheckFeature(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.FeatureCheckResponse, error) {
	return s.checkRes, s.checkErr
}

func (s *stubEntitlementService) DeductCredit(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.DeductCreditResponse, error) {
	return s.deductRes, s.deductErr
}

func (s *stubEntitlementService) GetSubscription(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	return s.sub, nil
}

func TestCheckFeatureGate_Allowed(t *testing.T) {
	es := &stubEntitlementService{
		checkRes: &dto.FeatureCheckResponse{Allowed: true, Cost: 1, RemainingCredits: 9},
	}

	err := checkFeatureGate(context.Background(), es, uuid.New(), pricing.ActionAiRewrite)
	assert.NoError(t, err)
}

func TestCheckFeatureGate_InsufficientCredits(t *testing.T) {
	es := &stubEntitlementService{
		checkRes: &dto.FeatureCheckResponse{
			Allowed:          false,
			Reason:           "insufficient credits",
			Cost:             3,
			RemainingCredits: 1,
		},
	}

	err := checkFeatureGate(context.Background(), es, uuid.New(), pricing.ActionCoverLetter)

	var insufficient *dto.InsufficientCreditsError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Need)
	assert.Equal(t, 1, insufficient.Have)
	assert.Equal(t, string(pricing.ActionCoverLetter), insufficient.Action)
}

func TestCheckFeatureGate_FeatureNotIncluded(t *testing.T) {
	es := &stubEntitlementService{
		checkRes: &dto.FeatureCheckResponse{
			Allowed: false,
			Reason:  "feature is not included in your plan",
		},
		sub: &entity.UserSubscription{PlanId: pricing.PlanFree},
	}

	err := checkFeatureGate(context.Background(), es, uuid.New(), pricing.ActionJobMatch)

	var notIncluded *dto.FeatureNotIncludedError
	assert.ErrorAs(t, err, &notIncluded)
	assert.Equal(t, string(pricing.PlanFree), notIncluded.PlanId)
}

func TestCheckFeatureGate_PropagatesError(t *testing.T) {
	wantErr := errors.New("db down")
	es := &stubEntitlementService{checkErr: wantErr}

	err := checkFeatureGate(context.Background(), es, uuid.New(), pricing.ActionAiRewrite)
	assert.ErrorIs(t, err, wantErr)
}

func TestSettleFeatureUse_Success(t *testing.T) {
	es := &stubEntitlementService{
		deductRes: &dto.DeductCreditResponse{Success: true, RemainingCredits: 7},
	}

	remaining, err := settleFeatureUse(context.Background(), es, uuid.New(), pricing.ActionAiRewrite)
	assert.NoError(t, err)
	assert.Equal(t, 7, remaining)
}

func TestSettleFeatureUse_RaceDenial(t *testing.T) {
	// The balance was drained between the check and the settle, e.g. by a
	// concurrent request from another tab.
	es := &stubEntitlementService{
		deductRes: &dto.DeductCreditResponse{
			Success:          false,
			Reason:           "insufficient credits",
			RemainingCredits: 0,
		},
	}

	remaining, err := settleFeatureUse(context.Background(), es, uuid.New(), pricing.ActionCvRegeneration)
	assert.Equal(t, 0, remaining)

	var insufficient *dto.InsufficientCreditsError
	assert.ErrorAs(t, err, &insufficient)
}
