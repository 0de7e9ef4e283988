package redisadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adcap/internal/core/domain"
)

const (
	// maxRetries bounds the optimistic retry loop so heavy contention on
	// one key degrades into a transient error instead of livelock.
	maxRetries = 16
	retryDelay = 2 * time.Millisecond
)

// OptimisticLimiter implements port.FrequencyLimiter with a
// WATCH/MULTI/EXEC transaction for stores without Lua scripting. A
// concurrent writer on the same key aborts the transaction and the
// decision is retried from the watch step, up to maxRetries attempts.
type OptimisticLimiter struct {
	client redis.UniversalClient
}

func NewOptimisticLimiter(client redis.UniversalClient) *OptimisticLimiter {
	return &OptimisticLimiter{client: client}
}

func (l *OptimisticLimiter) CheckAndIncrement(ctx context.Context, campaignID int64, userID string, et domain.EventType, cap int, now time.Time) (bool, error) {
	if cap <= 0 {
		return true, nil
	}
	key := freqKey(campaignID, userID, et, now)
	ttl := time.Duration(counterTTLSeconds(now)) * time.Second

	var admitted bool
	txn := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if errors.Is(err, redis.Nil) {
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, 1, ttl)
				return nil
			})
			admitted = err == nil
			return err
		}
		if current >= cap {
			admitted = false
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Incr(ctx, key)
			return nil
		})
		admitted = err == nil
		return err
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := l.client.Watch(ctx, txn, key)
		if err == nil {
			return admitted, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return false, err
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return false, fmt.Errorf("frequency counter %s: still contended after %d attempts: %w", key, maxRetries, redis.TxFailedErr)
}
