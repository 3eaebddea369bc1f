package game

import "time"

// Clock decides when the next fixed-interval tick is due. Ticks stay on the
// interval grid regardless of frame timing. Missed ticks are not replayed: a
// check more than one interval late yields a single tick and restarts the grid.
type Clock struct {
	interval   time.Duration
	lastUpdate time.Time
}

func NewClock(interval time.Duration, now time.Time) *Clock {
	return &Clock{interval: interval, lastUpdate: now}
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Due reports whether a tick should run at now.
func (c *Clock) Due(now time.Time) bool {
	if now.Sub(c.lastUpdate) < c.interval {
		return false
	}
	c.lastUpdate = c.lastUpdate.Add(c.interval)
	if now.Sub(c.lastUpdate) >= c.interval {
		c.lastUpdate = now
	}
	return true
}
