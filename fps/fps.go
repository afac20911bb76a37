// Package fps measures the frame rate of a render loop.
package fps

import (
	"time"
)

type state struct {
	fps        float64
	frametime  time.Duration
	frameCount int
	lastFrame  time.Time
	lastUpdate time.Time
}

// Counter is meant to be copied around by value,
// all copies share the same state.
type Counter struct {
	*state
	UpdateInterval time.Duration
	now            func() time.Time
}

func NewCounter(updateInterval time.Duration) Counter {
	return newCounter(updateInterval, time.Now)
}

func newCounter(updateInterval time.Duration, now func() time.Time) Counter {
	t := now()
	return Counter{
		state:          &state{lastFrame: t, lastUpdate: t},
		UpdateInterval: updateInterval,
		now:            now,
	}
}

// Tick records one frame.
func (c Counter) Tick() {
	c.frameCount++
	now := c.now()

	elapsed := now.Sub(c.lastUpdate)
	if elapsed >= c.UpdateInterval && elapsed > 0 {
		c.fps = float64(c.frameCount) / elapsed.Seconds()
		c.frameCount = 0
		c.lastUpdate = now
	}

	c.frametime = now.Sub(c.lastFrame)
	c.lastFrame = now
}

// Count records one frame and returns the latest measurement.
func (c Counter) Count() (fps float64, frametime time.Duration) {
	c.Tick()
	return c.fps, c.frametime
}

func (c Counter) FPS() float64 {
	return c.fps
}

func (c Counter) Frametime() time.Duration {
	return c.frametime
}
