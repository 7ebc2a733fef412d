package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/mapper"
	"resumeforge-be/internal/model"
	"resumeforge-be/internal/repository/contract"
	"resumeforge-be/internal/repository/specification"
)

type CreditRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CreditMapper
}

func NewCreditRepository(db *gorm.DB) contract.CreditRepository {
	return &CreditRepositoryImpl{
		db:     db,
		mapper: mapper.NewCreditMapper(),
	}
}

func (r *CreditRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CreditRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.CreditTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) FindTransactions(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditTransaction, error) {
	var models []*model.CreditTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CreditTransaction, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TransactionToEntity(m)
	}
	return entities, nil
}

func (r *CreditRepositoryImpl) CreateUsageRecord(ctx context.Context, record *entity.UsageRecord) error {
	m := r.mapper.UsageToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.UsageToEntity(m)
	return nil
}

func (r *CreditRepositoryImpl) FindUsageRecords(ctx context.Context, specs ...specification.Specification) ([]*entity.UsageRecord, error) {
	var models []*model.UsageRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UsageRecord, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UsageToEntity(m)
	}
	return entities, nil
}

func (r *CreditRepositoryImpl) CountUsageByAction(ctx context.Context, userId uuid.UUID, action string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UsageRecord{}).
		Where("user_id = ? AND action = ?", userId, action).
		Count(&count).Error
	return count, err
}
