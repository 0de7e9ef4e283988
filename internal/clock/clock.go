package clock

import "time"

// Clock supplies the engine's reference time. Day boundaries for spend
// rollover and frequency counter expiry are derived from the location of
// the returned time, so a single clock fixes the reference timezone for
// the whole engine.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a Clock reporting wall time in loc.
func NewSystem(loc *time.Location) Clock {
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// StartOfDay returns midnight of now's calendar day in now's location.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// UntilEndOfDay returns the time remaining from now until the next local
// midnight. Used as the expiry for frequency counters so they vanish at
// the day boundary without a cleanup job.
func UntilEndOfDay(now time.Time) time.Duration {
	return StartOfDay(now).AddDate(0, 0, 1).Sub(now)
}
