package port

import (
	"context"
	"time"

	"adcap/internal/core/domain"
)

// FrequencyLimiter enforces the per-user daily event cap. Implementations
// must guarantee that for N concurrent calls with the same key and cap C,
// exactly min(N, C) are admitted and the stored counter settles at
// min(N, C).
type FrequencyLimiter interface {
	// CheckAndIncrement admits the event and increments the counter for
	// (campaign, user, day-of-now, event type), or reports false without
	// mutating when the cap is already reached. A cap of zero or less
	// admits unconditionally without touching the store.
	CheckAndIncrement(ctx context.Context, campaignID int64, userID string, et domain.EventType, cap int, now time.Time) (bool, error)
}
