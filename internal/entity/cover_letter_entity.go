// FILE: internal/entity/cover_letter_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type CoverLetter struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ResumeId    *uuid.UUID
	JobTitle    string
	CompanyName string
	Content     string
	Generated   bool // true when produced by the AI pipeline
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
