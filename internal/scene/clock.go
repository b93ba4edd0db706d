package scene

import "time"

// Clock schedules fixed-interval animation ticks against real time. Ticks
// that fall behind are caught up one interval at a time so the animation
// speed does not depend on the frame rate.
type Clock struct {
	interval time.Duration
	next     time.Time
}

// maxCatchUp bounds the ticks replayed after a stall such as a window drag.
const maxCatchUp = 10

// NewClock starts a clock whose first tick is one interval after now.
func NewClock(interval time.Duration, now time.Time) *Clock {
	return &Clock{interval: interval, next: now.Add(interval)}
}

// Due returns how many ticks are due at now and schedules the next one.
func (c *Clock) Due(now time.Time) int {
	if now.Before(c.next) {
		return 0
	}
	n := int(now.Sub(c.next)/c.interval) + 1
	if n > maxCatchUp {
		n = maxCatchUp
		c.next = now.Add(c.interval)
		return n
	}
	c.next = c.next.Add(time.Duration(n) * c.interval)
	return n
}

// Until returns the time left before the next tick.
func (c *Clock) Until(now time.Time) time.Duration {
	return c.next.Sub(now)
}
