package mapper

import (
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
	"resumeforge-be/pkg/pricing"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

// ToEntity maps a subscription row. UsageHistory is loaded separately by the
// usage repository; the row itself only carries the balance and period.
func (m *SubscriptionMapper) ToEntity(s *model.UserSubscription) *entity.UserSubscription {
	if s == nil {
		return nil
	}
	return &entity.UserSubscription{
		Id:                s.Id,
		UserId:            s.UserId,
		PlanId:            pricing.PlanID(s.PlanId),
		Credits:           s.Credits,
		BillingCycle:      pricing.BillingCycle(s.BillingCycle),
		SubscriptionStart: s.SubscriptionStart,
		SubscriptionEnd:   s.SubscriptionEnd,
		IsActive:          s.IsActive,
		Status:            entity.SubscriptionStatus(s.Status),
		PaymentStatus:     entity.PaymentStatus(s.PaymentStatus),
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.UserSubscription) *model.UserSubscription {
	if s == nil {
		return nil
	}
	return &model.UserSubscription{
		Id:                s.Id,
		UserId:            s.UserId,
		PlanId:            string(s.PlanId),
		Credits:           s.Credits,
		BillingCycle:      string(s.BillingCycle),
		SubscriptionStart: s.SubscriptionStart,
		SubscriptionEnd:   s.SubscriptionEnd,
		IsActive:          s.IsActive,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		Version:           s.Version,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
