package engine

import (
	"time"

	"github.com/pipejesus/chill-out/parameter"
)

// Clock turns provider readings into per-frame dt and elapsed seconds
type Clock struct {
	tp       TimeProvider
	start    time.Time
	last     time.Time
	maxDelta time.Duration
	frame    int64
	elapsed  float64
}

// NewClock starts counting from the provider's current time
func NewClock(tp TimeProvider) *Clock {
	now := tp.Now()
	return &Clock{
		tp:       tp,
		start:    now,
		last:     now,
		maxDelta: parameter.MaxFrameDelta,
	}
}

// Tick advances one frame
// dt is clamped to MaxFrameDelta; elapsed accumulates clamped dts so a stall
// does not teleport time driven motion
func (c *Clock) Tick() (dt, elapsed float64) {
	now := c.tp.Now()
	d := now.Sub(c.last)
	if d < 0 {
		d = 0
	}
	if d > c.maxDelta {
		d = c.maxDelta
	}
	c.last = now
	c.frame++

	dt = d.Seconds()
	c.elapsed += dt
	return dt, c.elapsed
}

// Frame returns the number of ticks taken
func (c *Clock) Frame() int64 {
	return c.frame
}

// Elapsed returns simulated seconds since start
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Wall returns real time since start, unclamped
func (c *Clock) Wall() time.Duration {
	return c.tp.Now().Sub(c.start)
}
