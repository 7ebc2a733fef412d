package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByStatus filters subscriptions by status column.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ActiveAt keeps subscriptions whose period covers the instant
// (lifetime rows have a NULL end and always match).
type ActiveAt struct {
	At time.Time
}

func (s ActiveAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_end IS NULL OR subscription_end > ?", s.At)
}

// ByAction filters usage records or credit transactions by gated action.
type ByAction struct {
	Action string
}

func (s ByAction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action = ?", s.Action)
}

// Since keeps rows created at or after the instant.
type Since struct {
	At time.Time
}

func (s Since) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.At)
}
