package contract

import (
	"context"

	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/repository/specification"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	FindBySlug(ctx context.Context, slug string) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
}
