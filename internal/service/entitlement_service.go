// FILE: internal/service/entitlement_service.go
// Credit gating: checks, deductions and the server-side ledger.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/dto"
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
	"resumeforge-be/internal/repository/unitofwork"
	"resumeforge-be/pkg/entitlement"
	"resumeforge-be/pkg/events"
	pktNats "resumeforge-be/pkg/nats"
	"resumeforge-be/pkg/pricing"
)

// deductRetries bounds how often a deduction is replayed after losing a
// version race against another writer.
const deductRetries = 3

type EntitlementService interface {
	CheckFeature(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.FeatureCheckResponse, error)

	// DeductCredit is the single mutation point for the credit balance.
	// It persists the new balance, a usage record and a ledger row in one
	// transaction, then emits CREDIT_DEDUCTED (best effort).
	DeductCredit(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.DeductCreditResponse, error)

	GetSubscription(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error)
	CanAccessTemplate(ctx context.Context, userId uuid.UUID, templateId string) (bool, error)

	UpgradePlan(ctx context.Context, userId uuid.UUID, target pricing.PlanID, cycle pricing.BillingCycle) (*dto.SubscriptionDTO, error)
	GrantCredits(ctx context.Context, userId uuid.UUID, amount int, txType entity.CreditTransactionType, notes string) (*dto.SubscriptionDTO, error)

	GetCreditHistory(ctx context.Context, userId uuid.UUID) (*dto.CreditHistoryResponse, error)
}

type entitlementService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewEntitlementService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) EntitlementService {
	return &entitlementService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func toSubscriptionDTO(sub *entity.UserSubscription) *dto.SubscriptionDTO {
	if sub == nil {
		return nil
	}
	start := sub.SubscriptionStart
	return &dto.SubscriptionDTO{
		PlanId:            string(sub.PlanId),
		Credits:           sub.Credits,
		BillingCycle:      string(sub.BillingCycle),
		SubscriptionStart: &start,
		SubscriptionEnd:   sub.SubscriptionEnd,
		IsActive:          sub.IsActive,
		Status:            string(sub.Status),
		Version:           sub.Version,
	}
}

// GetSubscription resolves the user's governing subscription, lazily
// creating the free default for first-time users. Expired periods on
// credit plans are rolled forward with a monthly reset before returning.
func (s *entitlementService) GetSubscription(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.getOrCreateSubscription(ctx, uow, userId)
}

func (s *entitlementService) getOrCreateSubscription(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.UserSubscription, error) {
	sub, err := uow.SubscriptionRepository().FindCurrent(ctx, userId)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub = entitlement.GuestSubscription(time.Now())
		sub.Id = uuid.New()
		sub.UserId = userId
		if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	}

	now := time.Now()
	if sub.Expired(now) {
		sub, err = s.rollPeriodForward(ctx, uow, sub, now)
		if err != nil {
			return nil, err
		}
	}
	return sub, nil
}

// rollPeriodForward handles a lapsed billing period. Paid plans fall back
// to free; the free plan renews itself with a monthly credit reset.
func (s *entitlementService) rollPeriodForward(ctx context.Context, uow unitofwork.UnitOfWork, sub *entity.UserSubscription, now time.Time) (*entity.UserSubscription, error) {
	var next *entity.UserSubscription
	if sub.PlanId == pricing.PlanFree {
		next = entitlement.UpgradePlan(sub, pricing.PlanFree, sub.BillingCycle, now)
		next = entitlement.MonthlyReset(next, now)
	} else {
		next = entitlement.UpgradePlan(sub, pricing.PlanFree, "", now)
	}
	if err := uow.SubscriptionRepository().Update(ctx, next); err != nil {
		if errors.Is(err, entity.ErrVersionConflict) {
			// Someone else already rolled it, take theirs.
			return uow.SubscriptionRepository().FindCurrent(ctx, sub.UserId)
		}
		return nil, err
	}
	return next, nil
}

func (s *entitlementService) CheckFeature(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.FeatureCheckResponse, error) {
	if !pricing.ValidAction(action) {
		return nil, fmt.Errorf("unknown action: %s", action)
	}

	sub, err := s.GetSubscription(ctx, userId)
	if err != nil {
		return nil, err
	}

	decision := entitlement.NewManager(sub).CanUseFeature(action)
	return &dto.FeatureCheckResponse{
		Allowed:          decision.Allowed,
		Reason:           decision.Reason,
		Cost:             decision.Cost,
		RemainingCredits: sub.Credits,
	}, nil
}

func (s *entitlementService) DeductCredit(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.DeductCreditResponse, error) {
	if !pricing.ValidAction(action) {
		return nil, fmt.Errorf("unknown action: %s", action)
	}

	var lastErr error
	for attempt := 0; attempt < deductRetries; attempt++ {
		res, err := s.deductOnce(ctx, userId, action)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, entity.ErrVersionConflict) {
			return nil, err
		}
		// Lost the race, reload the authoritative row and replay.
		lastErr = err
	}
	return nil, fmt.Errorf("deduction kept losing version races: %w", lastErr)
}

func (s *entitlementService) deductOnce(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction) (*dto.DeductCreditResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sub, err := s.getOrCreateSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	mgr := entitlement.NewManager(sub)
	result := mgr.DeductCredit(action)
	if !result.Success {
		// Denials are not errors; commit nothing and report the reason.
		return &dto.DeductCreditResponse{
			Success:          false,
			Reason:           result.Reason,
			RemainingCredits: result.RemainingCredits,
		}, nil
	}

	next := result.Subscription
	if err := uow.SubscriptionRepository().Update(ctx, next); err != nil {
		return nil, err
	}

	if err := uow.CreditRepository().CreateUsageRecord(ctx, result.Record); err != nil {
		return nil, err
	}

	if result.Record.CreditsCost > 0 {
		actionCopy := action
		ledgerRow := &entity.CreditTransaction{
			Id:              uuid.New(),
			UserId:          userId,
			TransactionType: entity.CreditTransactionDeduction,
			Amount:          -result.Record.CreditsCost,
			Action:          &actionCopy,
			BalanceAfter:    next.Credits,
			CreatedAt:       result.Record.Timestamp,
		}
		if err := uow.CreditRepository().CreateTransaction(ctx, ledgerRow); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishCreditDeducted(ctx, userId, action, result)

	recordDTO := &dto.UsageRecordDTO{
		Id:               result.Record.Id,
		Action:           string(result.Record.Action),
		CreditsCost:      result.Record.CreditsCost,
		RemainingCredits: result.Record.RemainingCredits,
		Timestamp:        result.Record.Timestamp,
	}
	return &dto.DeductCreditResponse{
		Success:          true,
		RemainingCredits: result.RemainingCredits,
		Record:           recordDTO,
		Subscription:     toSubscriptionDTO(next),
	}, nil
}

// publishCreditDeducted is best effort: a down bus never blocks a deduction
// that already committed.
func (s *entitlementService) publishCreditDeducted(ctx context.Context, userId uuid.UUID, action pricing.FeatureAction, result entitlement.DeductionResult) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.TypeCreditDeducted,
		Data: map[string]interface{}{
			"user_id":           userId,
			"action":            string(action),
			"credits_cost":      result.Record.CreditsCost,
			"remaining_credits": result.RemainingCredits,
			"occurred_at":       result.Record.Timestamp,
		},
		OccurredAt: result.Record.Timestamp,
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeCreditDeducted, err)
	}
}

func (s *entitlementService) CanAccessTemplate(ctx context.Context, userId uuid.UUID, templateId string) (bool, error) {
	sub, err := s.GetSubscription(ctx, userId)
	if err != nil {
		return false, err
	}
	return entitlement.NewManager(sub).CanAccessTemplate(templateId), nil
}

func (s *entitlementService) UpgradePlan(ctx context.Context, userId uuid.UUID, target pricing.PlanID, cycle pricing.BillingCycle) (*dto.SubscriptionDTO, error) {
	if !pricing.ValidPlan(target) {
		return nil, fmt.Errorf("unknown plan: %s", target)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sub, err := s.getOrCreateSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	next := entitlement.UpgradePlan(sub, target, cycle, now)
	if err := uow.SubscriptionRepository().Update(ctx, next); err != nil {
		return nil, err
	}

	notes := fmt.Sprintf("plan change %s -> %s", sub.PlanId, target)
	ledgerRow := &entity.CreditTransaction{
		Id:              uuid.New(),
		UserId:          userId,
		TransactionType: entity.CreditTransactionPlanChange,
		Amount:          next.Credits - sub.Credits,
		BalanceAfter:    next.Credits,
		Notes:           &notes,
		CreatedAt:       now,
	}
	if err := uow.CreditRepository().CreateTransaction(ctx, ledgerRow); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypePlanUpgraded,
			Data: map[string]interface{}{
				"user_id":     userId,
				"from_plan":   string(sub.PlanId),
				"to_plan":     string(target),
				"credits":     next.Credits,
				"occurred_at": now,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypePlanUpgraded, err)
		}
	}

	return toSubscriptionDTO(next), nil
}

func (s *entitlementService) GrantCredits(ctx context.Context, userId uuid.UUID, amount int, txType entity.CreditTransactionType, notes string) (*dto.SubscriptionDTO, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("grant amount must be positive, got %d", amount)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	sub, err := s.getOrCreateSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	next := entitlement.NewManager(sub).GrantCredits(amount)
	if err := uow.SubscriptionRepository().Update(ctx, next); err != nil {
		return nil, err
	}

	ledgerRow := &entity.CreditTransaction{
		Id:              uuid.New(),
		UserId:          userId,
		TransactionType: txType,
		Amount:          amount,
		BalanceAfter:    next.Credits,
		Notes:           &notes,
		CreatedAt:       time.Now(),
	}
	if err := uow.CreditRepository().CreateTransaction(ctx, ledgerRow); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toSubscriptionDTO(next), nil
}

func (s *entitlementService) GetCreditHistory(ctx context.Context, userId uuid.UUID) (*dto.CreditHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := s.getOrCreateSubscription(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	txs, err := uow.CreditRepository().FindTransactions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CreditTransactionDTO, 0, len(txs))
	for _, tx := range txs {
		item := dto.CreditTransactionDTO{
			Id:           tx.Id,
			Type:         string(tx.TransactionType),
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			CreatedAt:    tx.CreatedAt,
		}
		if tx.Action != nil {
			action := string(*tx.Action)
			item.Action = &action
		}
		if tx.Notes != nil {
			item.Notes = *tx.Notes
		}
		items = append(items, item)
	}

	return &dto.CreditHistoryResponse{
		Balance:      sub.Credits,
		Transactions: items,
	}, nil
}
