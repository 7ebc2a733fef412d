package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan mirrors the in-code pricing catalog for display and
// reporting queries. Seeded by cmd/seed; the catalog stays authoritative.
type SubscriptionPlan struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug           string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Tagline        string    `gorm:"type:text"`
	Price          float64   `gorm:"type:decimal(10,2);not null"`
	BillingCycle   string    `gorm:"type:varchar(32);not null"`
	TemplateAccess string    `gorm:"type:varchar(32);not null;default:'free'"`
	UsesCredits    bool      `gorm:"default:true"`
	MonthlyCredits int       `gorm:"default:0"`
	IsMostPopular  bool      `gorm:"default:false"`
	IsActive       bool      `gorm:"default:true"`
	SortOrder      int       `gorm:"default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type UserSubscription struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId            string     `gorm:"type:varchar(64);not null;index"`
	Credits           int        `gorm:"not null;default:0;check:credits >= 0"`
	BillingCycle      string     `gorm:"type:varchar(32)"`
	SubscriptionStart time.Time  `gorm:"not null"`
	SubscriptionEnd   *time.Time `gorm:""`
	IsActive          bool       `gorm:"default:true"`
	Status            string     `gorm:"type:varchar(50);not null"`
	PaymentStatus     string     `gorm:"type:varchar(50);not null"`
	Version           int64      `gorm:"not null;default:1"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
