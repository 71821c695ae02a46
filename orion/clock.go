package orion

import (
	"time"
)

// seed used if the wall clock cannot provide one
const fallbackSeed uint32 = 34123123

type TimeSource func() time.Time

// Clock measures the time between frame boundaries.
type Clock struct {
	now  TimeSource
	last time.Time

	// total elapsed time in seconds
	t float32
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading time from now. The baseline
// for the first Advance is taken immediately.
func NewClockWithSource(now TimeSource) *Clock {
	return &Clock{
		now:  now,
		last: now(),
	}
}

// Advance returns the total elapsed time and the time since the previous
// call, both in seconds. A clock going backwards yields a dt of zero.
func (c *Clock) Advance() (t, dt float32) {
	now := c.now()

	dt = max(0, float32(now.Sub(c.last).Seconds()))

	c.last = now
	c.t += dt

	return c.t, dt
}

// Now returns the current time of the clocks time source.
func (c *Clock) Now() time.Time {
	return c.now()
}

// SeedFromTime derives an initial seed from the sub second part of now.
// A zero or pre-epoch time means the clock is unavailable.
func SeedFromTime(now time.Time) uint32 {
	if now.IsZero() || now.Before(time.Unix(0, 0)) {
		return fallbackSeed
	}

	return uint32(now.Nanosecond())
}

// NextSeed advances the per frame seed. This is a hash step for
// reproducible pseudo randomness, not a source of secure randomness.
func NextSeed(prev uint32) uint32 {
	return khash(prev * 196513497)
}

func khash(state uint32) uint32 {
	state = (state ^ 2747636419) * 2654435769
	state = (state ^ (state >> 16)) * 2654435769
	state = (state ^ (state >> 16)) * 2654435769
	return state
}
