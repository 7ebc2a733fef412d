package dto

import (
	"time"
)

// PlanResponse is returned by GET /api/plans (public).
type PlanResponse struct {
	Id             string         `json:"id"`
	Name           string         `json:"name"`
	Tagline        string         `json:"tagline"`
	Price          float64        `json:"price"`
	BillingCycle   string         `json:"billing_cycle"`
	IsMostPopular  bool           `json:"is_most_popular"`
	TemplateAccess string         `json:"template_access"`
	UsesCredits    bool           `json:"uses_credits"`
	Credits        PlanCreditsDTO `json:"credits"`
	Features       map[string]int `json:"features"` // -1 = unlimited, 0 = not included
}

type PlanCreditsDTO struct {
	Starting int  `json:"starting"`
	Monthly  int  `json:"monthly"`
	Lifetime int  `json:"lifetime"`
	Resets   bool `json:"resets"`
}

// FeatureLimit represents a single feature's status for the current user.
type FeatureLimit struct {
	Used   int64 `json:"used"`
	Limit  int   `json:"limit"` // -1 = unlimited, 0 = disabled
	Cost   int   `json:"cost"`
	CanUse bool  `json:"can_use"`
}

// UsageStatusResponse is returned by GET /api/user/usage-status.
type UsageStatusResponse struct {
	Plan             PlanInfo                `json:"plan"`
	Credits          int                     `json:"credits"`
	Features         map[string]FeatureLimit `json:"features"`
	SubscriptionEnd  *time.Time              `json:"subscription_end,omitempty"`
	UpgradeAvailable bool                    `json:"upgrade_available"`
}

type PlanInfo struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type UpgradePlanRequest struct {
	PlanId       string `json:"plan_id" validate:"required"`
	BillingCycle string `json:"billing_cycle"`
}
