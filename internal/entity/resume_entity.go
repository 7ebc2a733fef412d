// FILE: internal/entity/resume_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResumeContent is the structured document body. Persisted as JSONB; rows
// whose content fails to parse are skipped with a warning rather than
// failing the whole listing.
type ResumeContent struct {
	Summary    string           `json:"summary"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []string         `json:"skills"`
}

type ExperienceItem struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

type EducationItem struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

type Resume struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Title      string
	TemplateId string
	Content    ResumeContent
	SourceFile *string // set when created via upload
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// ResumeEmbedding stores one vector chunk of a resume, used by job match.
type ResumeEmbedding struct {
	Id             uuid.UUID
	ResumeId       uuid.UUID
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
}
