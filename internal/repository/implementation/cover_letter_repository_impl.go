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

type CoverLetterRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CoverLetterMapper
}

func NewCoverLetterRepository(db *gorm.DB) contract.CoverLetterRepository {
	return &CoverLetterRepositoryImpl{
		db:     db,
		mapper: mapper.NewCoverLetterMapper(),
	}
}

func (r *CoverLetterRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CoverLetterRepositoryImpl) Create(ctx context.Context, letter *entity.CoverLetter) error {
	m := r.mapper.ToModel(letter)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*letter = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoverLetterRepositoryImpl) Update(ctx context.Context, letter *entity.CoverLetter) error {
	m := r.mapper.ToModel(letter)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*letter = *r.mapper.ToEntity(m)
	return nil
}

func (r *CoverLetterRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CoverLetter{}, id).Error
}

func (r *CoverLetterRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CoverLetter, error) {
	var m model.CoverLetter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CoverLetterRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoverLetter, error) {
	var models []*model.CoverLetter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CoverLetter, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
