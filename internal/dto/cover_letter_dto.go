package dto

import (
	"time"

	"github.com/google/uuid"
)

type GenerateCoverLetterRequest struct {
	ResumeId    *uuid.UUID `json:"resume_id"`
	JobTitle    string     `json:"job_title" validate:"required"`
	CompanyName string     `json:"company_name" validate:"required"`
	// Optional extra context pasted by the user, e.g. the job posting.
	JobDescription string `json:"job_description"`
	Tone           string `json:"tone" validate:"omitempty,oneof=professional friendly confident"`
}

type GenerateCoverLetterResponse struct {
	Id               uuid.UUID `json:"id"`
	Content          string    `json:"content"`
	RemainingCredits int       `json:"remaining_credits"`
}

type UpdateCoverLetterRequest struct {
	Id      uuid.UUID
	Content string `json:"content" validate:"required"`
}

type ShowCoverLetterResponse struct {
	Id          uuid.UUID  `json:"id"`
	ResumeId    *uuid.UUID `json:"resume_id,omitempty"`
	JobTitle    string     `json:"job_title"`
	CompanyName string     `json:"company_name"`
	Content     string     `json:"content"`
	Generated   bool       `json:"generated"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CoverLetterListItem struct {
	Id          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"job_title"`
	CompanyName string     `json:"company_name"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
