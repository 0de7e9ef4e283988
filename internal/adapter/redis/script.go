package redisadapter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"adcap/internal/clock"
	"adcap/internal/core/domain"
)

// capScript creates or increments the frequency counter while honouring the
// cap in a single atomic server-side operation. The reply is the counter
// value after the call, or cap+1 when the cap was already reached (in which
// case nothing was mutated). The caller admits iff the reply is <= cap.
var capScript = redis.NewScript(`
local key = KEYS[1]
local cap = tonumber(ARGV[1])
local ttl = tonumber(ARGV[2])
local current = redis.call('GET', key)
if current == false then
  redis.call('SET', key, 1, 'EX', ttl)
  return 1
end
local val = tonumber(current)
if val >= cap then
  return cap + 1
end
return redis.call('INCR', key)
`)

// ScriptLimiter implements port.FrequencyLimiter with one atomic Lua call
// per decision. Script.Run uses EVALSHA and transparently falls back to
// EVAL when the script is not cached yet.
type ScriptLimiter struct {
	client redis.UniversalClient
}

func NewScriptLimiter(client redis.UniversalClient) *ScriptLimiter {
	return &ScriptLimiter{client: client}
}

func (l *ScriptLimiter) CheckAndIncrement(ctx context.Context, campaignID int64, userID string, et domain.EventType, cap int, now time.Time) (bool, error) {
	if cap <= 0 {
		return true, nil
	}
	ttl := counterTTLSeconds(now)
	val, err := capScript.Run(ctx, l.client, []string{freqKey(campaignID, userID, et, now)}, cap, ttl).Int64()
	if err != nil {
		return false, err
	}
	return val <= int64(cap), nil
}

// counterTTLSeconds returns the whole seconds left until local midnight,
// never less than one so a key created in the day's final moment still
// expires instead of living forever.
func counterTTLSeconds(now time.Time) int {
	ttl := int(clock.UntilEndOfDay(now).Seconds())
	if ttl < 1 {
		ttl = 1
	}
	return ttl
}
