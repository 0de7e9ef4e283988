package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adcap/internal/core/domain"
)

// With N concurrent calls against one key and cap C, exactly min(N, C)
// must be admitted and the counter must settle at min(N, C).
func TestCheckAndIncrementConcurrent(t *testing.T) {
	const (
		callers = 50
		cap     = 10
	)
	l := NewFrequencyLimiter()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	var (
		wg       sync.WaitGroup
		admitted atomic.Int64
	)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			ok, err := l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, cap, now)
			require.NoError(t, err)
			if ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, cap, admitted.Load())
	require.Equal(t, cap, l.Count(1, "u1", domain.EventImpression, now))
}

func TestUncappedNeverStoresCounter(t *testing.T) {
	l := NewFrequencyLimiter()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		ok, err := l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 0, now)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Zero(t, l.Count(1, "u1", domain.EventImpression, now))
}

func TestCounterExpiresAtDayBoundary(t *testing.T) {
	l := NewFrequencyLimiter()
	day1 := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		ok, err := l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 2, day1)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 2, day1)
	require.NoError(t, err)
	require.False(t, ok)

	// The next day starts a fresh counter for a fresh key.
	day2 := day1.Add(2 * time.Hour)
	ok, err = l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 2, day2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, l.Count(1, "u1", domain.EventImpression, day2))
}

func TestKeysAreScopedPerDimension(t *testing.T) {
	l := NewFrequencyLimiter()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	ok, err := l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 1, now)
	require.NoError(t, err)
	require.True(t, ok)

	// Same user, other campaign: unaffected.
	ok, err = l.CheckAndIncrement(context.Background(), 2, "u1", domain.EventImpression, 1, now)
	require.NoError(t, err)
	require.True(t, ok)

	// Same campaign, other user: unaffected.
	ok, err = l.CheckAndIncrement(context.Background(), 1, "u2", domain.EventImpression, 1, now)
	require.NoError(t, err)
	require.True(t, ok)

	// Same dimensions again: capped.
	ok, err = l.CheckAndIncrement(context.Background(), 1, "u1", domain.EventImpression, 1, now)
	require.NoError(t, err)
	require.False(t, ok)
}
