package memory

import (
	"context"
	"sync"
	"time"

	"adcap/internal/clock"
	"adcap/internal/core/domain"
)

// campaignRow pairs a campaign record with its own lock, mirroring the
// durable store's per-row SELECT ... FOR UPDATE.
type campaignRow struct {
	mu sync.Mutex
	c  domain.Campaign
}

// Ledger is an in-process port.LedgerRepository for tests and embedded
// single-instance deployments. Each campaign carries its own mutex, so a
// contended reservation on one campaign never blocks another. The outer
// mutex guards only the maps and the event log and is never held across
// a row lock.
type Ledger struct {
	mu        sync.Mutex
	campaigns map[int64]*campaignRow
	events    []domain.Event
	lastID    int64
}

func NewLedger() *Ledger {
	return &Ledger{campaigns: make(map[int64]*campaignRow)}
}

// PutCampaign stores or replaces a campaign record.
func (l *Ledger) PutCampaign(c domain.Campaign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.campaigns[c.ID] = &campaignRow{c: c}
}

func (l *Ledger) row(id int64) *campaignRow {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.campaigns[id]
}

func (l *Ledger) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := l.row(id)
	if row == nil {
		return nil, nil
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	cp := row.c
	return &cp, nil
}

func (l *Ledger) ReserveSpend(ctx context.Context, ev *domain.Event, now time.Time) (domain.ReserveStatus, error) {
	row := l.row(ev.CampaignID)
	if row == nil {
		return domain.ReserveNotFound, nil
	}

	row.mu.Lock()
	defer row.mu.Unlock()

	// Work on a copy so a rejection leaves the stored record untouched.
	c := row.c
	cost, status := c.ReserveSpend(ev.Type, clock.StartOfDay(now))
	if status != domain.ReserveOK {
		return status, nil
	}
	row.c = c

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastID++
	ev.ID = l.lastID
	ev.Cost = cost
	ev.CreatedAt = now
	l.events = append(l.events, *ev)
	return domain.ReserveOK, nil
}

// Events returns a snapshot of all recorded events.
func (l *Ledger) Events() []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Event, len(l.events))
	copy(out, l.events)
	return out
}
