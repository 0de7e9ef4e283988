package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingModel determines which event type a campaign pays for.
type PricingModel string

const (
	PricingCPM PricingModel = "cpm" // cost per thousand impressions
	PricingCPC PricingModel = "cpc" // cost per click
	PricingCPA PricingModel = "cpa" // cost per conversion
)

// Campaign is the accounting record for a single advertising campaign.
// Money fields are fixed-point decimals; a nil budget pointer means the
// corresponding cap is not set.
type Campaign struct {
	ID           int64
	Name         string
	PricingModel PricingModel
	UnitPrice    decimal.Decimal
	DailyBudget  *decimal.Decimal
	TotalBudget  *decimal.Decimal
	SpentToday   decimal.Decimal
	SpentTotal   decimal.Decimal
	// LastSpendReset is the calendar date (midnight in the reference
	// timezone) as of which SpentToday last reset. Nil until the first
	// reservation touches the row.
	LastSpendReset *time.Time
	// FreqCapPerDay caps impressions per user per day. Zero means uncapped.
	FreqCapPerDay int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
