package port

import (
	"context"
	"time"

	"adcap/internal/core/domain"
)

// LedgerRepository is the durable side of the enforcement engine. It is an
// outbound port in hexagonal architecture. Implementations must execute
// ReserveSpend as one exclusive critical section per campaign so concurrent
// reservations against the same campaign are linearized; reservations
// against different campaigns must never block each other.
type LedgerRepository interface {
	// GetCampaign returns the campaign or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ReserveSpend atomically reserves budget for ev on its campaign and,
	// when the reservation is admitted, persists ev with the computed cost
	// and timestamp filled in. A rejecting status mutates nothing. The
	// status is meaningful only when the error is nil; errors signal
	// transient store failures the caller may retry.
	ReserveSpend(ctx context.Context, ev *domain.Event, now time.Time) (domain.ReserveStatus, error)
}
