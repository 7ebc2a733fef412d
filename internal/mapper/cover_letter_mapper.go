package mapper

import (
	"resumeforge-be/internal/entity"
	"resumeforge-be/internal/model"
)

type CoverLetterMapper struct{}

func NewCoverLetterMapper() *CoverLetterMapper {
	return &CoverLetterMapper{}
}

func (m *CoverLetterMapper) ToEntity(c *model.CoverLetter) *entity.CoverLetter {
	if c == nil {
		return nil
	}
	return &entity.CoverLetter{
		Id:          c.Id,
		UserId:      c.UserId,
		ResumeId:    c.ResumeId,
		JobTitle:    c.JobTitle,
		CompanyName: c.CompanyName,
		Content:     c.Content,
		Generated:   c.Generated,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CoverLetterMapper) ToModel(c *entity.CoverLetter) *model.CoverLetter {
	if c == nil {
		return nil
	}
	return &model.CoverLetter{
		Id:          c.Id,
		UserId:      c.UserId,
		ResumeId:    c.ResumeId,
		JobTitle:    c.JobTitle,
		CompanyName: c.CompanyName,
		Content:     c.Content,
		Generated:   c.Generated,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
