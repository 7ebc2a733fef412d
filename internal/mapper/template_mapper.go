package mapper

import (
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}
	return &entity.Template{
		Id:         t.Id,
		Slug:       t.Slug,
		Name:       t.Name,
		PreviewURL: t.PreviewURL,
		IsPremium:  t.IsPremium,
		SortOrder:  t.SortOrder,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}
	return &model.Template{
		Id:         t.Id,
		Slug:       t.Slug,
		Name:       t.Name,
		PreviewURL: t.PreviewURL,
		IsPremium:  t.IsPremium,
		SortOrder:  t.SortOrder,
		CreatedAt:  t.CreatedAt,
	}
}
