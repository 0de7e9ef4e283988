package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and a batch of historical events so a fresh
// deployment has data to ingest against. Safe to re-run: inserts use
// ON CONFLICT DO NOTHING.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	campaigns := []struct {
		id        int64
		name      string
		model     string
		unitPrice string
		daily     *string
		total     *string
		freqCap   *int
	}{
		{1, "Spring CPM Push", "cpm", "10.000000", ptr("100.00"), ptr("500.00"), intPtr(5)},
		{2, "Search Clicks", "cpc", "0.500000", ptr("50.00"), ptr("1000.00"), nil},
		{3, "Signup Conversions", "cpa", "4.250000", nil, ptr("2000.00"), nil},
		{4, "Always-on Awareness", "cpm", "2.500000", nil, nil, intPtr(3)},
	}
	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, name, pricing_model, unit_price, daily_budget, total_budget, freq_cap_per_day, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,true,now(),now()) ON CONFLICT DO NOTHING`,
			c.id, c.name, c.model, c.unitPrice, c.daily, c.total, c.freqCap)
		if err != nil {
			return err
		}
	}

	// A spread of historical events across yesterday for each campaign.
	types := []string{"impression", "click", "conversion"}
	for i := 0; i < 200; i++ {
		campaignID := int64(r.Intn(len(campaigns)) + 1)
		adID := uuid.NewString()
		userID := fmt.Sprintf("user-%d", r.Intn(50)+1)
		eventType := types[r.Intn(len(types))]
		ts := time.Now().AddDate(0, 0, -1).Add(time.Duration(r.Intn(86400)) * time.Second)
		_, err := db.Exec(ctx, `INSERT INTO events
    (campaign_id, ad_id, user_id, event_type, cost, created_at)
VALUES ($1,$2,$3,$4,0,$5) ON CONFLICT DO NOTHING`,
			campaignID, adID, userID, eventType, ts)
		if err != nil {
			return err
		}
	}
	return nil
}

func ptr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
