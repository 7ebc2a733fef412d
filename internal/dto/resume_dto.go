package dto

import (
	"time"

	"github.com/google/uuid"

	"resumeforge-be/internal/entity"
)

type CreateResumeRequest struct {
	Title      string               `json:"title" validate:"required"`
	TemplateId string               `json:"template_id" validate:"required"`
	Content    entity.ResumeContent `json:"content"`
}

type CreateResumeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateResumeRequest struct {
	Id         uuid.UUID
	Title      string               `json:"title" validate:"required"`
	TemplateId string               `json:"template_id" validate:"required"`
	Content    entity.ResumeContent `json:"content"`
}

type UpdateResumeResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowResumeResponse struct {
	Id         uuid.UUID            `json:"id"`
	Title      string               `json:"title"`
	TemplateId string               `json:"template_id"`
	Content    entity.ResumeContent `json:"content"`
	SourceFile *string              `json:"source_file,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  *time.Time           `json:"updated_at"`
}

type ResumeListItem struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	TemplateId string     `json:"template_id"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type UploadResumeRequest struct {
	Title    string `json:"title"`
	FileName string `json:"file_name" validate:"required"`
	// Raw extracted text from the uploaded document.
	Text string `json:"text" validate:"required"`
}

type UploadResumeResponse struct {
	Id               uuid.UUID `json:"id"`
	RemainingCredits int       `json:"remaining_credits"`
}

type SetTemplateRequest struct {
	Id         uuid.UUID
	TemplateId string `json:"template_id" validate:"required"`
}

type TemplateResponse struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
	IsPremium  bool   `json:"is_premium"`
	Accessible bool   `json:"accessible"`
}

type JobMatchRequest struct {
	ResumeId       uuid.UUID `json:"resume_id" validate:"required"`
	JobDescription string    `json:"job_description" validate:"required,min=20"`
}

type JobMatchResponse struct {
	Score            float64          `json:"score"` // 0.0-1.0 cosine similarity
	MatchedSections  []MatchedSection `json:"matched_sections"`
	RemainingCredits int              `json:"remaining_credits"`
}

type MatchedSection struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
