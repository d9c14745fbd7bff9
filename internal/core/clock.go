package core

import "time"

// Clock reports real time elapsed since the previous call.
type Clock interface {
	Elapsed() time.Duration
}

// RealClock measures wall-clock time between calls to Elapsed.
type RealClock struct {
	now  func() time.Time
	last time.Time
}

// NewRealClock creates a clock whose first Elapsed is measured from now.
func NewRealClock() *RealClock {
	return newRealClock(time.Now)
}

func newRealClock(now func() time.Time) *RealClock {
	return &RealClock{now: now, last: now()}
}

// Elapsed returns the time since the last call and restarts the measurement.
func (c *RealClock) Elapsed() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d
}

// ManualClock is a Clock advanced explicitly, for tests and replays.
type ManualClock struct {
	pending time.Duration
}

// Advance adds d to the time reported by the next Elapsed call.
func (c *ManualClock) Advance(d time.Duration) {
	c.pending += d
}

// Elapsed returns the accumulated advance and resets it.
func (c *ManualClock) Elapsed() time.Duration {
	d := c.pending
	c.pending = 0
	return d
}
