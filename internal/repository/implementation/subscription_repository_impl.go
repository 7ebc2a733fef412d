package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/mapper"
	"resumeforge-be/internal/model"
	"resumeforge-be/internal/repository/contract"
	"resumeforge-be/internal/repository/specification"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.UserSubscription) error {
	m := r.mapper.ToModel(subscription)
	if m.Version == 0 {
		m.Version = 1
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	history := subscription.UsageHistory
	*subscription = *r.mapper.ToEntity(m)
	subscription.UsageHistory = history
	return nil
}

// Update uses an optimistic version check: the UPDATE only lands when the
// stored version still matches the snapshot's, and bumps it by one. Zero
// rows affected means a newer copy exists on the server.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.UserSubscription) error {
	m := r.mapper.ToModel(subscription)

	res := r.db.WithContext(ctx).Model(&model.UserSubscription{}).
		Where("id = ? AND version = ?", m.Id, m.Version).
		Updates(map[string]interface{}{
			"plan_id":            m.PlanId,
			"credits":            m.Credits,
			"billing_cycle":      m.BillingCycle,
			"subscription_start": m.SubscriptionStart,
			"subscription_end":   m.SubscriptionEnd,
			"is_active":          m.IsActive,
			"status":             m.Status,
			"payment_status":     m.PaymentStatus,
			"version":            m.Version + 1,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrVersionConflict
	}

	subscription.Version = m.Version + 1
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserSubscription{}, id).Error
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserSubscription, error) {
	var m model.UserSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error) {
	var models []*model.UserSubscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserSubscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) FindCurrent(ctx context.Context, userId uuid.UUID) (*entity.UserSubscription, error) {
	subs, err := r.FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, sub := range subs {
		// Active within period.
		if sub.Status == entity.SubscriptionStatusActive && !sub.Expired(now) {
			return sub, nil
		}
		// Canceled but access retained until the period ends.
		if sub.Status == entity.SubscriptionStatusCanceled && !sub.Expired(now) {
			return sub, nil
		}
		// Paid but the webhook hasn't flipped the status yet.
		if sub.PaymentStatus == entity.PaymentStatusPaid && !sub.Expired(now) {
			return sub, nil
		}
	}
	return nil, nil
}

func (r *SubscriptionRepositoryImpl) CountActiveSubscribers(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UserSubscription{}).
		Where("status = ?", "active").
		Count(&count).Error
	return int(count), err
}
