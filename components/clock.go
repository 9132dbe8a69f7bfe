package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the per-world frame clock.
//
// With a tick Rate set, Elapsed is derived from the tick count so that
// N ticks always cover exactly N/Rate seconds and Delta absorbs the
// nanosecond remainder. Without one, every frame covers Step.
type ClockData struct {
	Rate    int           // ticks per second, 0 for a fixed Step
	Step    time.Duration // fixed simulation step when Rate is 0
	Delta   time.Duration // time covered by the current frame
	Elapsed time.Duration
	Origin  time.Duration // Elapsed when Rate was last set
	Ticks   int           // unpaused ticks since Origin
	Frame   int
}

var Clock = donburi.NewComponentType[ClockData]()

// Advance moves the clock one frame. A paused frame covers no time.
func (c *ClockData) Advance(paused bool) {
	c.Frame++

	switch {
	case paused:
		c.Delta = 0
	case c.Rate > 0:
		c.Ticks++
		next := c.Origin + time.Duration(c.Ticks)*time.Second/time.Duration(c.Rate)
		c.Delta = next - c.Elapsed
		c.Elapsed = next
	case c.Step > 0:
		c.Delta = c.Step
		c.Elapsed += c.Step
	default:
		c.Delta = 0
	}
}

// SetRate switches the clock to tps ticks per second from the next frame on.
func (c *ClockData) SetRate(tps int) {
	c.Origin = c.Elapsed
	c.Ticks = 0
	c.Rate = tps
}

// SetStep switches the clock to a fixed step from the next frame on.
func (c *ClockData) SetStep(step time.Duration) {
	c.Rate = 0
	c.Step = step
}
