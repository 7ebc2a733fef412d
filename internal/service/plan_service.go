// FILE: internal/service/plan_service.go
// Plan catalog, credit packs and per-user usage status.
package service

import (
	"context"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/entitlement"
	"resumeforge-be/pkg/pricing"
)

type PlanService interface {
	// Public
	GetPlans(ctx context.Context) []*dto.PlanResponse
	GetCreditPacks(ctx context.Context) []*dto.CreditPackResponse

	// User
	GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error)
	GetTemplates(ctx context.Context, userId uuid.UUID) ([]*dto.TemplateResponse, error)
}

type planService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService EntitlementService
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, entitlementService EntitlementService) PlanService {
	return &planService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
	}
}

// GetPlans returns the static catalog for the pricing modal.
func (s *planService) GetPlans(ctx context.Context) []*dto.PlanResponse {
	plans := pricing.AllPlans()
	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		features := make(map[string]int, len(plan.FeatureLimits))
		for action, limit := range plan.FeatureLimits {
			features[string(action)] = limit
		}
		result = append(result, &dto.PlanResponse{
			Id:             string(plan.ID),
			Name:           plan.Name,
			Tagline:        plan.Tagline,
			Price:          plan.Price,
			BillingCycle:   string(plan.BillingCycle),
			IsMostPopular:  plan.IsMostPopular,
			TemplateAccess: string(plan.TemplateAccess),
			UsesCredits:    plan.CreditRules.UsesCredits,
			Credits: dto.PlanCreditsDTO{
				Starting: plan.CreditRules.StartingCredits,
				Monthly:  plan.CreditRules.MonthlyCredits,
				Lifetime: plan.CreditRules.LifetimeCredits,
				Resets:   plan.CreditRules.CreditsReset,
			},
			Features: features,
		})
	}
	return result
}

func (s *planService) GetCreditPacks(ctx context.Context) []*dto.CreditPackResponse {
	packs := pricing.CreditPacks()
	result := make([]*dto.CreditPackResponse, 0, len(packs))
	for _, pack := range packs {
		result = append(result, &dto.CreditPackResponse{
			Id:      pack.ID,
			Name:    pack.Label,
			Credits: pack.Credits,
			Price:   pack.Price,
			Savings: pack.Savings,
		})
	}
	return result
}

// GetUserUsageStatus returns the current balance and per-feature limits.
func (s *planService) GetUserUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error) {
	sub, err := s.entitlementService.GetSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan := sub.Plan()
	mgr := entitlement.NewManager(sub)

	features := make(map[string]dto.FeatureLimit, len(pricing.AllActions))
	for _, action := range pricing.AllActions {
		used, err := uow.CreditRepository().CountUsageByAction(ctx, userId, string(action))
		if err != nil {
			return nil, err
		}
		limit := pricing.Unlimited
		if l, ok := plan.FeatureLimits[action]; ok {
			limit = l
		}
		features[string(action)] = dto.FeatureLimit{
			Used:   used,
			Limit:  limit,
			Cost:   plan.CreditRules.Cost(action),
			CanUse: mgr.CanUseFeature(action).Allowed,
		}
	}

	return &dto.UsageStatusResponse{
		Plan: dto.PlanInfo{
			Id:   string(plan.ID),
			Name: plan.Name,
		},
		Credits:          sub.Credits,
		Features:         features,
		SubscriptionEnd:  sub.SubscriptionEnd,
		UpgradeAvailable: !pricing.IsPro(sub.PlanId),
	}, nil
}

// GetTemplates lists the template catalog annotated with accessibility for
// the user's plan.
func (s *planService) GetTemplates(ctx context.Context, userId uuid.UUID) ([]*dto.TemplateResponse, error) {
	sub, err := s.entitlementService.GetSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	templates, err := uow.TemplateRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, &dto.TemplateResponse{
			Slug:       t.Slug,
			Name:       t.Name,
			PreviewURL: t.PreviewURL,
			IsPremium:  t.IsPremium,
			Accessible: pricing.CanAccessTemplate(sub.PlanId, t.Slug),
		})
	}
	return result, nil
}
