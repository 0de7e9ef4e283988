package domain

import "github.com/shopspring/decimal"

var perThousand = decimal.NewFromInt(1000)

// EventCost returns the amount a single event draws from the campaign budget.
// CPM campaigns pay unit price per thousand impressions, rounded half-up to
// six fractional digits. CPC pays the unit price per click, CPA per
// conversion. Any other pairing is non-monetized and costs zero: the event
// is still recorded but does not draw down budget.
func EventCost(model PricingModel, unitPrice decimal.Decimal, et EventType) decimal.Decimal {
	switch {
	case model == PricingCPM && et == EventImpression:
		return unitPrice.DivRound(perThousand, 6)
	case model == PricingCPC && et == EventClick:
		return unitPrice
	case model == PricingCPA && et == EventConversion:
		return unitPrice
	default:
		return decimal.Zero
	}
}
