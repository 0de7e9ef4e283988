package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func day(s string) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReserveSpendInactive(t *testing.T) {
	c := Campaign{PricingModel: PricingCPC, UnitPrice: d("1"), Active: false}
	cost, status := c.ReserveSpend(EventClick, day("2025-06-15"))
	require.Equal(t, ReserveInactive, status)
	require.True(t, cost.IsZero())
	require.True(t, c.SpentTotal.IsZero())
}

func TestReserveSpendAccumulates(t *testing.T) {
	c := Campaign{
		PricingModel: PricingCPC,
		UnitPrice:    d("0.25"),
		DailyBudget:  dp("1"),
		TotalBudget:  dp("10"),
		Active:       true,
	}
	today := day("2025-06-15")

	for i := 1; i <= 4; i++ {
		cost, status := c.ReserveSpend(EventClick, today)
		require.Equal(t, ReserveOK, status)
		require.True(t, cost.Equal(d("0.25")))
		require.True(t, c.SpentToday.LessThanOrEqual(*c.DailyBudget))
		require.True(t, c.SpentTotal.LessThanOrEqual(*c.TotalBudget))
	}
	require.True(t, c.SpentToday.Equal(d("1")))

	// Fifth click would push spent_today to 1.25 > 1.
	_, status := c.ReserveSpend(EventClick, today)
	require.Equal(t, ReserveDailyExceeded, status)
	require.True(t, c.SpentToday.Equal(d("1")), "rejection must not mutate")
}

func TestReserveSpendTotalCap(t *testing.T) {
	c := Campaign{
		PricingModel: PricingCPA,
		UnitPrice:    d("3"),
		TotalBudget:  dp("7"),
		Active:       true,
	}
	today := day("2025-06-15")

	for i := 0; i < 2; i++ {
		_, status := c.ReserveSpend(EventConversion, today)
		require.Equal(t, ReserveOK, status)
	}
	_, status := c.ReserveSpend(EventConversion, today)
	require.Equal(t, ReserveTotalExceeded, status)
	require.True(t, c.SpentTotal.Equal(d("6")))
}

// The daily accumulator resets exactly once per day change, lazily on the
// first reservation touching the new day.
func TestReserveSpendRolloverIdempotent(t *testing.T) {
	yesterday := day("2025-06-14")
	c := Campaign{
		PricingModel:   PricingCPC,
		UnitPrice:      d("0.10"),
		DailyBudget:    dp("0.30"),
		SpentToday:     d("0.30"),
		SpentTotal:     d("0.30"),
		LastSpendReset: &yesterday,
		Active:         true,
	}
	today := day("2025-06-15")

	cost, status := c.ReserveSpend(EventClick, today)
	require.Equal(t, ReserveOK, status)
	require.True(t, cost.Equal(d("0.10")))
	require.True(t, c.SpentToday.Equal(d("0.10")), "rollover then spend")
	require.True(t, c.SpentTotal.Equal(d("0.40")), "lifetime total never resets")
	require.True(t, c.LastSpendReset.Equal(today))

	// Same day again: no second reset.
	_, status = c.ReserveSpend(EventClick, today)
	require.Equal(t, ReserveOK, status)
	require.True(t, c.SpentToday.Equal(d("0.20")))

	_, status = c.ReserveSpend(EventClick, today)
	require.Equal(t, ReserveOK, status)
	require.True(t, c.SpentToday.Equal(d("0.30")))
}

// The stored reset date may carry a different location than the reference
// clock: a DATE column decodes as midnight UTC while the engine runs on,
// say, Berlin midnight. The same calendar day must not trigger a rollover,
// or the daily cap degrades into a per-event cap.
func TestRolloverComparesCalendarDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	lastReset := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	c := Campaign{
		PricingModel:   PricingCPM,
		UnitPrice:      d("10"),
		DailyBudget:    dp("0.01"),
		SpentToday:     d("0.01"),
		SpentTotal:     d("0.01"),
		LastSpendReset: &lastReset,
		Active:         true,
	}

	// Same calendar day, different instant: no reset, so the cap holds.
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, berlin)
	_, status := c.ReserveSpend(EventImpression, today)
	require.Equal(t, ReserveDailyExceeded, status)
	require.True(t, c.SpentToday.Equal(d("0.01")))

	// The next calendar day still rolls over.
	tomorrow := time.Date(2025, 6, 16, 0, 0, 0, 0, berlin)
	cost, status := c.ReserveSpend(EventImpression, tomorrow)
	require.Equal(t, ReserveOK, status)
	require.True(t, cost.Equal(d("0.01")))
	require.True(t, c.SpentToday.Equal(d("0.01")))
	require.True(t, c.SpentTotal.Equal(d("0.02")))
}

// A campaign without caps admits everything.
func TestReserveSpendUncapped(t *testing.T) {
	c := Campaign{PricingModel: PricingCPM, UnitPrice: d("1000"), Active: true}
	today := day("2025-06-15")

	for i := 0; i < 100; i++ {
		_, status := c.ReserveSpend(EventImpression, today)
		require.Equal(t, ReserveOK, status)
	}
	require.True(t, c.SpentTotal.Equal(d("100")))
}
