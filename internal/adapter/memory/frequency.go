package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"adcap/internal/clock"
	"adcap/internal/core/domain"
)

type counter struct {
	count     int
	expiresAt time.Time
}

// FrequencyLimiter is an in-process port.FrequencyLimiter for tests and
// embedded single-instance deployments. State is local to the process, so
// it does not enforce a global cap across replicas.
type FrequencyLimiter struct {
	mu       sync.Mutex
	counters map[string]*counter
}

func NewFrequencyLimiter() *FrequencyLimiter {
	return &FrequencyLimiter{counters: make(map[string]*counter)}
}

func (l *FrequencyLimiter) CheckAndIncrement(ctx context.Context, campaignID int64, userID string, et domain.EventType, cap int, now time.Time) (bool, error) {
	if cap <= 0 {
		return true, nil
	}
	key := key(campaignID, userID, et, now)

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counters[key]
	if ok && !now.Before(c.expiresAt) {
		delete(l.counters, key)
		ok = false
	}
	if !ok {
		l.counters[key] = &counter{count: 1, expiresAt: clock.StartOfDay(now).AddDate(0, 0, 1)}
		return true, nil
	}
	if c.count >= cap {
		return false, nil
	}
	c.count++
	return true, nil
}

// Count reports the stored counter value for the key, or zero when no
// counter exists. Tests use it to assert the settled count.
func (l *FrequencyLimiter) Count(campaignID int64, userID string, et domain.EventType, now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.counters[key(campaignID, userID, et, now)]; ok {
		return c.count
	}
	return 0
}

func key(campaignID int64, userID string, et domain.EventType, now time.Time) string {
	return fmt.Sprintf("freq:%d:%s:%s:%s", campaignID, userID, now.Format(time.DateOnly), et)
}
