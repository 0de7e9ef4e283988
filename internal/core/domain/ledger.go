package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReserveStatus is the outcome of a spend reservation against a campaign.
type ReserveStatus int

const (
	ReserveOK ReserveStatus = iota
	ReserveNotFound
	ReserveInactive
	ReserveDailyExceeded
	ReserveTotalExceeded
)

// ReserveSpend applies the ledger algorithm to the campaign in place:
// inactive check, lazy daily rollover, pricing, then both cap checks
// strictly before the accumulators are advanced. On rejection the
// accumulators are left untouched. The caller must hold exclusive access
// to the campaign for the duration of the call; today must be midnight of
// the reference day. The rollover compares calendar days, not instants:
// LastSpendReset may arrive in a different location than the reference
// clock (a DATE column decodes as midnight UTC) and must still match.
func (c *Campaign) ReserveSpend(et EventType, today time.Time) (decimal.Decimal, ReserveStatus) {
	if !c.Active {
		return decimal.Zero, ReserveInactive
	}
	if c.LastSpendReset == nil || !sameDay(*c.LastSpendReset, today) {
		c.SpentToday = decimal.Zero
		reset := today
		c.LastSpendReset = &reset
	}
	cost := EventCost(c.PricingModel, c.UnitPrice, et)
	newDaily := c.SpentToday.Add(cost)
	newTotal := c.SpentTotal.Add(cost)
	if c.DailyBudget != nil && newDaily.GreaterThan(*c.DailyBudget) {
		return decimal.Zero, ReserveDailyExceeded
	}
	if c.TotalBudget != nil && newTotal.GreaterThan(*c.TotalBudget) {
		return decimal.Zero, ReserveTotalExceeded
	}
	c.SpentToday = newDaily
	c.SpentTotal = newTotal
	return cost, ReserveOK
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
