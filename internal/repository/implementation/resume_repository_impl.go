package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/mapper"
	"resumeforge-be/internal/model"
	"resumeforge-be/internal/repository/contract"
	"resumeforge-be/internal/repository/specification"
)

type ResumeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResumeMapper
}

func NewResumeRepository(db *gorm.DB) contract.ResumeRepository {
	return &ResumeRepositoryImpl{
		db:     db,
		mapper: mapper.NewResumeMapper(),
	}
}

func (r *ResumeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ResumeRepositoryImpl) Create(ctx context.Context, resume *entity.Resume) error {
	m, err := r.mapper.ToModel(resume)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	if ent, ok := r.mapper.ToEntity(m); ok {
		*resume = *ent
	}
	return nil
}

func (r *ResumeRepositoryImpl) Update(ctx context.Context, resume *entity.Resume) error {
	m, err := r.mapper.ToModel(resume)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ResumeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Resume{}, id).Error
}

func (r *ResumeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Resume, error) {
	var m model.Resume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	// A single corrupt row is still returned with empty content; the
	// service layer decides whether to replace it.
	ent, _ := r.mapper.ToEntity(&m)
	return ent, nil
}

func (r *ResumeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Resume, error) {
	var models []*model.Resume
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Resume, 0, len(models))
	for _, m := range models {
		ent, ok := r.mapper.ToEntity(m)
		if !ok {
			// Skip rows with unparseable content in listings.
			continue
		}
		entities = append(entities, ent)
	}
	return entities, nil
}

func (r *ResumeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Resume{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
