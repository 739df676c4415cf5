package loop

import (
	"time"
)

// Clock supplies the elapsed time for each tick.
type Clock interface {
	Tick() time.Duration
}

// FrameClock paces ticks to a fixed frame rate and caps the reported delta
// so a stall (debugger, suspended terminal) never produces a huge step.
type FrameClock struct {
	frameTime time.Duration
	maxDelta  time.Duration
	last      time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock creates a clock for tickRate frames per second. A maxDelta of
// zero disables the cap.
func NewFrameClock(tickRate int, maxDelta time.Duration) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	c := &FrameClock{
		frameTime: time.Second / time.Duration(tickRate),
		maxDelta:  maxDelta,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	c.last = c.now()
	return c
}

// Tick waits until at least one frame time has passed since the previous
// tick and returns the elapsed time.
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	if elapsed := now.Sub(c.last); elapsed < c.frameTime {
		c.sleep(c.frameTime - elapsed)
		now = c.now()
	}

	dt := now.Sub(c.last)
	c.last = now
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	return dt
}
