package mapper

import (
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
	"resumeforge-be/pkg/pricing"
)

type CreditMapper struct{}

func NewCreditMapper() *CreditMapper {
	return &CreditMapper{}
}

func (m *CreditMapper) TransactionToEntity(t *model.CreditTransaction) *entity.CreditTransaction {
	if t == nil {
		return nil
	}
	var action *pricing.FeatureAction
	if t.Action != nil {
		a := pricing.FeatureAction(*t.Action)
		action = &a
	}
	return &entity.CreditTransaction{
		Id:              t.Id,
		UserId:          t.UserId,
		TransactionType: entity.CreditTransactionType(t.TransactionType),
		Amount:          t.Amount,
		Action:          action,
		BalanceAfter:    t.BalanceAfter,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *CreditMapper) TransactionToModel(t *entity.CreditTransaction) *model.CreditTransaction {
	if t == nil {
		return nil
	}
	var action *string
	if t.Action != nil {
		a := string(*t.Action)
		action = &a
	}
	return &model.CreditTransaction{
		Id:              t.Id,
		UserId:          t.UserId,
		TransactionType: string(t.TransactionType),
		Amount:          t.Amount,
		Action:          action,
		BalanceAfter:    t.BalanceAfter,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *CreditMapper) UsageToEntity(r *model.UsageRecord) *entity.UsageRecord {
	if r == nil {
		return nil
	}
	return &entity.UsageRecord{
		Id:               r.Id,
		UserId:           r.UserId,
		Action:           pricing.FeatureAction(r.Action),
		CreditsCost:      r.CreditsCost,
		RemainingCredits: r.RemainingCredits,
		Timestamp:        r.CreatedAt,
	}
}

func (m *CreditMapper) UsageToModel(r *entity.UsageRecord) *model.UsageRecord {
	if r == nil {
		return nil
	}
	return &model.UsageRecord{
		Id:               r.Id,
		UserId:           r.UserId,
		Action:           string(r.Action),
		CreditsCost:      r.CreditsCost,
		RemainingCredits: r.RemainingCredits,
		CreatedAt:        r.Timestamp,
	}
}
