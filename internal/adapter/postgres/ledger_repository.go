package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adcap/internal/clock"
	"adcap/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL. ReserveSpend takes a row-level lock on the campaign, so two
// reservations against the same campaign are serialized by the database
// while different campaigns proceed in parallel.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Money columns travel as text: shopspring decimals round-trip NUMERIC
// exactly through their string form.
const campaignColumns = `id, name, pricing_model, unit_price::text,
       daily_budget::text, total_budget::text, spent_today::text,
       spent_total::text, last_spend_reset, freq_cap_per_day, active,
       created_at, updated_at`

// GetCampaign returns the campaign accounting record, or nil when no such
// campaign exists.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ReserveSpend locks the campaign row, applies the ledger algorithm and,
// on admission, writes back the accumulators and inserts the event record
// in the same transaction. A rejecting status rolls the transaction back
// so nothing is mutated, including the lazy daily rollover.
func (r *LedgerRepository) ReserveSpend(ctx context.Context, ev *domain.Event, now time.Time) (status domain.ReserveStatus, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil || status != domain.ReserveOK {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, ev.CampaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return domain.ReserveNotFound, nil
	}
	if err != nil {
		return 0, err
	}

	today := clock.StartOfDay(now)
	cost, status := c.ReserveSpend(ev.Type, today)
	if status != domain.ReserveOK {
		return status, nil
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns
        SET spent_today = $1, spent_total = $2, last_spend_reset = $3, updated_at = now()
        WHERE id = $4`,
		c.SpentToday.String(), c.SpentTotal.String(), today, ev.CampaignID)
	if err != nil {
		return 0, err
	}

	ev.Cost = cost
	ev.CreatedAt = now
	err = tx.QueryRow(ctx, `INSERT INTO events (campaign_id, ad_id, user_id, event_type, cost, created_at)
        VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		ev.CampaignID, ev.AdID, ev.UserID, string(ev.Type), ev.Cost.String(), ev.CreatedAt).Scan(&ev.ID)
	if err != nil {
		return 0, err
	}
	return domain.ReserveOK, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c            domain.Campaign
		pricingModel string
		unitPrice    string
		spentToday   string
		spentTotal   string
		dailyBudget  *string
		totalBudget  *string
		freqCap      *int
	)
	err := row.Scan(&c.ID, &c.Name, &pricingModel, &unitPrice,
		&dailyBudget, &totalBudget, &spentToday, &spentTotal,
		&c.LastSpendReset, &freqCap, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.PricingModel = domain.PricingModel(pricingModel)
	if c.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return nil, err
	}
	if c.SpentToday, err = decimal.NewFromString(spentToday); err != nil {
		return nil, err
	}
	if c.SpentTotal, err = decimal.NewFromString(spentTotal); err != nil {
		return nil, err
	}
	if c.DailyBudget, err = parseOptionalDecimal(dailyBudget); err != nil {
		return nil, err
	}
	if c.TotalBudget, err = parseOptionalDecimal(totalBudget); err != nil {
		return nil, err
	}
	if freqCap != nil {
		c.FreqCapPerDay = *freqCap
	}
	return &c, nil
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
