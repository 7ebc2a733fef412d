package contract

import (
	"context"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *entity.Resume) error
	Update(ctx context.Context, resume *entity.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Resume, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Resume, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// ScoredResumeEmbedding pairs a chunk with its cosine similarity to a query.
type ScoredResumeEmbedding struct {
	Embedding  *entity.ResumeEmbedding
	Similarity float64
}

type ResumeEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.ResumeEmbedding) error
	DeleteByResumeId(ctx context.Context, resumeId uuid.UUID) error
	FindByResumeId(ctx context.Context, resumeId uuid.UUID) ([]*entity.ResumeEmbedding, error)

	// SearchSimilarWithScore ranks one resume's chunks against a query
	// vector, dropping chunks below the similarity threshold.
	SearchSimilarWithScore(ctx context.Context, resumeId uuid.UUID, embedding []float32, limit int, threshold float64) ([]*ScoredResumeEmbedding, error)
}
