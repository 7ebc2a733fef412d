// Package pricing holds the static plan catalog and access rules.
//
// Plans are a closed set compiled into the binary. The database mirror
// (subscription_plans) exists for display and reporting; this table is the
// rules authority for entitlement decisions.
package pricing

type PlanID string
type FeatureAction string
type BillingCycle string

const (
	PlanFree         PlanID = "free"
	PlanWeekPass     PlanID = "week_pass"
	PlanQuarterlyPro PlanID = "quarterly_pro"
	PlanLifetime     PlanID = "lifetime"

	ActionAiRewrite          FeatureAction = "ai_rewrite"
	ActionCvRegeneration     FeatureAction = "cv_regeneration"
	ActionCoverLetter        FeatureAction = "cover_letter"
	ActionBulletOptimization FeatureAction = "bullet_optimization"
	ActionResumeUpload       FeatureAction = "resume_upload"
	ActionJobMatch           FeatureAction = "job_match"

	BillingCycleWeekly    BillingCycle = "weekly"
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
	BillingCycleLifetime  BillingCycle = "lifetime"
)

// Unlimited marks a feature limit with no cap. 0 = disabled.
const Unlimited = -1

// TemplateAccess levels for a plan.
type TemplateAccess string

const (
	TemplateAccessFree TemplateAccess = "free"
	TemplateAccessAll  TemplateAccess = "all"
)

// CreditRules governs how a plan grants and charges credits.
type CreditRules struct {
	UsesCredits     bool
	StartingCredits int
	MonthlyCredits  int
	LifetimeCredits int
	CreditsReset    bool
	// CreditCosts maps each gated action to its price. Missing action = 0.
	CreditCosts map[FeatureAction]int
}

// Cost returns the credit price of an action under these rules.
func (r CreditRules) Cost(action FeatureAction) int {
	return r.CreditCosts[action]
}

// Plan is an immutable catalog entry.
type Plan struct {
	ID             PlanID
	Name           string
	Tagline        string
	Price          float64
	BillingCycle   BillingCycle
	TemplateAccess TemplateAccess
	// FeatureLimits caps each gated action (Unlimited = no cap, 0 = disabled).
	FeatureLimits map[FeatureAction]int
	CreditRules   CreditRules
	IsMostPopular bool
	SortOrder     int
}

// Unlimited reports whether the plan grants uncapped use of an action.
func (p Plan) Unlimited(action FeatureAction) bool {
	limit, ok := p.FeatureLimits[action]
	return ok && limit == Unlimited
}

var defaultCreditCosts = map[FeatureAction]int{
	ActionAiRewrite:          1,
	ActionCvRegeneration:     3,
	ActionCoverLetter:        3,
	ActionBulletOptimization: 1,
	ActionResumeUpload:       2,
	ActionJobMatch:           2,
}

var catalog = map[PlanID]Plan{
	PlanFree: {
		ID:             PlanFree,
		Name:           "Free",
		Tagline:        "Try the builder with starter credits",
		Price:          0,
		BillingCycle:   BillingCycleMonthly,
		TemplateAccess: TemplateAccessFree,
		FeatureLimits: map[FeatureAction]int{
			ActionAiRewrite:          10,
			ActionCvRegeneration:     3,
			ActionCoverLetter:        2,
			ActionBulletOptimization: 10,
			ActionResumeUpload:       2,
			ActionJobMatch:           3,
		},
		CreditRules: CreditRules{
			UsesCredits:     true,
			StartingCredits: 10,
			MonthlyCredits:  10,
			CreditsReset:    true,
			CreditCosts:     defaultCreditCosts,
		},
		SortOrder: 0,
	},
	PlanWeekPass: {
		ID:             PlanWeekPass,
		Name:           "Week Pass",
		Tagline:        "Unlimited everything for one week",
		Price:          9.99,
		BillingCycle:   BillingCycleWeekly,
		TemplateAccess: TemplateAccessAll,
		FeatureLimits: map[FeatureAction]int{
			ActionAiRewrite:          Unlimited,
			ActionCvRegeneration:     Unlimited,
			ActionCoverLetter:        Unlimited,
			ActionBulletOptimization: Unlimited,
			ActionResumeUpload:       Unlimited,
			ActionJobMatch:           Unlimited,
		},
		CreditRules: CreditRules{
			UsesCredits: false,
			CreditCosts: defaultCreditCosts,
		},
		SortOrder: 1,
	},
	PlanQuarterlyPro: {
		ID:             PlanQuarterlyPro,
		Name:           "Quarterly Pro",
		Tagline:        "Serious search, serious credits",
		Price:          24.99,
		BillingCycle:   BillingCycleQuarterly,
		TemplateAccess: TemplateAccessAll,
		FeatureLimits: map[FeatureAction]int{
			ActionAiRewrite:          Unlimited,
			ActionCvRegeneration:     Unlimited,
			ActionCoverLetter:        200,
			ActionBulletOptimization: Unlimited,
			ActionResumeUpload:       Unlimited,
			ActionJobMatch:           200,
		},
		CreditRules: CreditRules{
			UsesCredits:     true,
			StartingCredits: 300,
			MonthlyCredits:  100,
			CreditsReset:    true,
			CreditCosts:     defaultCreditCosts,
		},
		IsMostPopular: true,
		SortOrder:     2,
	},
	PlanLifetime: {
		ID:             PlanLifetime,
		Name:           "Lifetime",
		Tagline:        "Pay once, keep it forever",
		Price:          89.99,
		BillingCycle:   BillingCycleLifetime,
		TemplateAccess: TemplateAccessAll,
		FeatureLimits: map[FeatureAction]int{
			ActionAiRewrite:          Unlimited,
			ActionCvRegeneration:     Unlimited,
			ActionCoverLetter:        Unlimited,
			ActionBulletOptimization: Unlimited,
			ActionResumeUpload:       Unlimited,
			ActionJobMatch:           Unlimited,
		},
		CreditRules: CreditRules{
			UsesCredits:     true,
			LifetimeCredits: 1000,
			StartingCredits: 1000,
			CreditsReset:    false,
			CreditCosts:     defaultCreditCosts,
		},
		SortOrder: 3,
	},
}

// AllActions lists every gated action, in display order.
var AllActions = []FeatureAction{
	ActionAiRewrite,
	ActionCvRegeneration,
	ActionCoverLetter,
	ActionBulletOptimization,
	ActionResumeUpload,
	ActionJobMatch,
}

// AllPlans returns the catalog entries ordered by SortOrder.
func AllPlans() []Plan {
	plans := make([]Plan, 0, len(catalog))
	for _, id := range []PlanID{PlanFree, PlanWeekPass, PlanQuarterlyPro, PlanLifetime} {
		plans = append(plans, catalog[id])
	}
	return plans
}

// GetPlan resolves a plan id, falling back to the free plan for unknown ids.
func GetPlan(id PlanID) Plan {
	if plan, ok := catalog[id]; ok {
		return plan
	}
	return catalog[PlanFree]
}

// ValidPlan reports whether the id names a catalog entry.
func ValidPlan(id PlanID) bool {
	_, ok := catalog[id]
	return ok
}

// ValidAction reports whether the action is part of the closed set.
func ValidAction(action FeatureAction) bool {
	_, ok := defaultCreditCosts[action]
	return ok
}

// IsPro reports whether a plan grants unlimited usage on its headline
// features (anything above free).
func IsPro(id PlanID) bool {
	plan := GetPlan(id)
	return plan.Unlimited(ActionAiRewrite) && plan.Unlimited(ActionCvRegeneration)
}

// freeTemplates is the set of template slugs available on every plan.
var freeTemplates = map[string]bool{
	"classic":      true,
	"modern":       true,
	"minimal":      true,
	"professional": true,
}

// CanAccessTemplate checks whether a plan may use a template.
func CanAccessTemplate(id PlanID, templateID string) bool {
	if freeTemplates[templateID] {
		return true
	}
	return GetPlan(id).TemplateAccess == TemplateAccessAll
}

// FreeTemplates returns the slugs of the always-available templates.
func FreeTemplates() []string {
	out := make([]string, 0, len(freeTemplates))
	for _, slug := range []string{"classic", "modern", "minimal", "professional"} {
		if freeTemplates[slug] {
			out = append(out, slug)
		}
	}
	return out
}

// CreditPack is a purchasable top-up bundle.
type CreditPack struct {
	ID      string
	Credits int
	Price   float64
	Label   string
	Savings string
}

var creditPacks = []CreditPack{
	{ID: "pack_small", Credits: 50, Price: 4.99, Label: "Starter Pack"},
	{ID: "pack_medium", Credits: 150, Price: 11.99, Label: "Job Hunter", Savings: "20% off"},
	{ID: "pack_large", Credits: 400, Price: 24.99, Label: "Career Change", Savings: "37% off"},
}

// CreditPacks returns the purchasable top-up bundles.
func CreditPacks() []CreditPack {
	return creditPacks
}

// GetCreditPack resolves a pack by id.
func GetCreditPack(id string) (CreditPack, bool) {
	for _, p := range creditPacks {
		if p.ID == id {
			return p, true
		}
	}
	return CreditPack{}, false
}
