package clock

import "time"

// Clock turns wall-clock readings into per-tick elapsed time.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	ticks uint64
}

func New() *Clock {
	return WithSource(time.Now)
}

// WithSource builds a clock reading time from now, for tests.
func WithSource(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Tick returns the time elapsed since the previous tick.
func (c *Clock) Tick() time.Duration {
	t := c.now()
	dt := t.Sub(c.last)
	if dt < 0 {
		dt = 0
	}
	c.last = t
	c.ticks++
	return dt
}

// Elapsed is the time since the clock was created.
func (c *Clock) Elapsed() time.Duration {
	return c.last.Sub(c.start)
}

func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Period is the tick length for a target rate in Hz.
func Period(hz float64) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Duration(float64(time.Second) / hz)
}
