package implementation

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/mapper"
	"resumeforge-be/internal/model"
	"resumeforge-be/internal/repository/contract"
)

type ResumeEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ResumeMapper
}

func NewResumeEmbeddingRepository(db *gorm.DB) contract.ResumeEmbeddingRepository {
	return &ResumeEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewResumeMapper(),
	}
}

func (r *ResumeEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.ResumeEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.ResumeEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.EmbeddingToModel(e)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *ResumeEmbeddingRepositoryImpl) DeleteByResumeId(ctx context.Context, resumeId uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("resume_id = ?", resumeId).
		Delete(&model.ResumeEmbedding{}).Error
}

func (r *ResumeEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, resumeId uuid.UUID, embedding []float32, limit int, threshold float64) ([]*contract.ScoredResumeEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is 1 - cosine_similarity.
	type result struct {
		model.ResumeEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("resume_embeddings").
		Select("resume_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("resume_id = ?", resumeId).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredResumeEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredResumeEmbedding{
			Embedding:  r.mapper.EmbeddingToEntity(&res.ResumeEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *ResumeEmbeddingRepositoryImpl) FindByResumeId(ctx context.Context, resumeId uuid.UUID) ([]*entity.ResumeEmbedding, error) {
	var models []*model.ResumeEmbedding
	err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeId).
		Order("chunk_index ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.ResumeEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EmbeddingToEntity(m)
	}
	return entities, nil
}
