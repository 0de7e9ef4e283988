package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adcap/internal/core/domain"
	"adcap/internal/core/port"
)

// freqKey builds the counter key scoped per campaign, user, reference date
// and event type. The date component makes keys from different days
// distinct even before the previous day's counter expires.
func freqKey(campaignID int64, userID string, et domain.EventType, now time.Time) string {
	return fmt.Sprintf("freq:%d:%s:%s:%s", campaignID, userID, now.Format(time.DateOnly), et)
}

// NewFrequencyLimiter probes the server for Lua scripting support once and
// returns the matching strategy: the single-round-trip script limiter when
// EVAL is available, otherwise the optimistic WATCH/MULTI/EXEC fallback.
// Network-level probe failures are returned to the caller instead of being
// mistaken for a capability gap.
func NewFrequencyLimiter(ctx context.Context, client redis.UniversalClient) (port.FrequencyLimiter, error) {
	err := client.Eval(ctx, "return 1", []string{}).Err()
	if err == nil {
		return NewScriptLimiter(client), nil
	}
	var rerr redis.Error
	if errors.As(err, &rerr) {
		// The server answered but rejected EVAL: scripting unsupported.
		return NewOptimisticLimiter(client), nil
	}
	return nil, fmt.Errorf("probe scripting support: %w", err)
}
