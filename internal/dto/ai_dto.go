package dto

import (
	"github.com/google/uuid"
)

type RewriteRequest struct {
	Text string `json:"text" validate:"required,min=10"`
	// Optional target tone or role to steer the rewrite.
	Instruction string `json:"instruction"`
}

type RewriteResponse struct {
	Text             string `json:"text"`
	RemainingCredits int    `json:"remaining_credits"`
}

type BulletOptimizationRequest struct {
	Bullets []string `json:"bullets" validate:"required,min=1,dive,required"`
	Role    string   `json:"role"`
}

type BulletOptimizationResponse struct {
	Bullets          []string `json:"bullets"`
	RemainingCredits int      `json:"remaining_credits"`
}

type CvRegenerationRequest struct {
	ResumeId uuid.UUID `json:"resume_id" validate:"required"`
	// Free-form direction for the regeneration, e.g. "emphasize leadership".
	Instruction string `json:"instruction"`
}

type CvRegenerationResponse struct {
	ResumeId         uuid.UUID `json:"resume_id"`
	RemainingCredits int       `json:"remaining_credits"`
}
