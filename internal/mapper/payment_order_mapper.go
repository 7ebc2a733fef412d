package mapper

import (
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
)

type PaymentOrderMapper struct{}

func NewPaymentOrderMapper() *PaymentOrderMapper {
	return &PaymentOrderMapper{}
}

func (m *PaymentOrderMapper) ToEntity(o *model.PaymentOrder) *entity.PaymentOrder {
	if o == nil {
		return nil
	}
	return &entity.PaymentOrder{
		Id:           o.Id,
		UserId:       o.UserId,
		PlanId:       o.PlanId,
		PackId:       o.PackId,
		BillingCycle: o.BillingCycle,
		GrossAmount:  o.GrossAmount,
		Status:       entity.PaymentStatus(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func (m *PaymentOrderMapper) ToModel(o *entity.PaymentOrder) *model.PaymentOrder {
	if o == nil {
		return nil
	}
	return &model.PaymentOrder{
		Id:           o.Id,
		UserId:       o.UserId,
		PlanId:       o.PlanId,
		PackId:       o.PackId,
		BillingCycle: o.BillingCycle,
		GrossAmount:  o.GrossAmount,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
