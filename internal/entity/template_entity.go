// FILE: internal/entity/template_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Template is a resume layout. Slug matches the pricing catalog's free set;
// anything outside that set requires a paid plan.
type Template struct {
	Id         uuid.UUID
	Slug       string
	Name       string
	PreviewURL string
	IsPremium  bool
	SortOrder  int
	CreatedAt  time.Time
}
