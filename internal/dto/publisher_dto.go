package dto

import (
	"github.com/google/uuid"
)

// PublishEmbedResumeMessage is the payload queued for the embedding worker
// whenever a resume is created or its content changes.
type PublishEmbedResumeMessage struct {
	ResumeId uuid.UUID `json:"resume_id"`
}
