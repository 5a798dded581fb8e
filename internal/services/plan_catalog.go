package services

import "github.com/shopspring/decimal"

// SubscriptionPlan is immutable reference data; the catalog is compiled in
// rather than persisted so pricing changes ship with a release.
type SubscriptionPlan struct {
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"` // 0 = permanent
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	Savings      string          `json:"savings,omitempty"`
}

const (
	PlanMonthly3 = "monthly_3"
	PlanYearly   = "yearly"
	PlanLifetime = "lifetime"
)

var planCatalog = []SubscriptionPlan{
	{
		Type:         PlanMonthly3,
		Name:         "HerHzzz 3-Month Membership",
		Price:        decimal.RequireFromString("29.99"),
		DurationDays: 90,
		Description:  "3 months of unlimited high-quality sleep audio",
		Features: []string{
			"Unlock all cycle-phase audio",
			"High-quality streams",
			"Personalized recommendations",
			"Ad-free listening",
		},
	},
	{
		Type:         PlanYearly,
		Name:         "HerHzzz 1-Year Membership",
		Price:        decimal.RequireFromString("99.99"),
		DurationDays: 365,
		Description:  "A full year of unlimited high-quality sleep audio",
		Features: []string{
			"Unlock all cycle-phase audio",
			"High-quality streams",
			"Personalized recommendations",
			"Ad-free listening",
			"Priority support",
			"Early access to new features",
		},
		Savings: "Save 17% over the 3-month plan",
	},
	{
		Type:         PlanLifetime,
		Name:         "HerHzzz Lifetime Membership",
		Price:        decimal.RequireFromString("299.99"),
		DurationDays: 0,
		Description:  "Pay once, keep everything forever",
		Features: []string{
			"Permanently unlock all audio",
			"High-quality streams",
			"Personalized recommendations",
			"Ad-free listening",
			"Priority support",
			"Early access to new features",
			"Free updates for life",
		},
		Savings: "Save 75% over the yearly plan",
	},
}

func Plans() []SubscriptionPlan {
	out := make([]SubscriptionPlan, len(planCatalog))
	copy(out, planCatalog)
	return out
}

func PlanByType(planType string) (SubscriptionPlan, bool) {
	for _, p := range planCatalog {
		if p.Type == planType {
			return p, true
		}
	}
	return SubscriptionPlan{}, false
}
