package contract

import (
	"context"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
)

type CoverLetterRepository interface {
	Create(ctx context.Context, letter *entity.CoverLetter) error
	Update(ctx context.Context, letter *entity.CoverLetter) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CoverLetter, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CoverLetter, error)
}
