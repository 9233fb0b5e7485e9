package core

import "time"

// Click is a pointer press delivered once per click, in world pixels.
type Click struct {
	X, Y int
}

// FrameClock converts host frame timestamps into variable simulation steps.
// The zero value is usable and never limits the step size.
type FrameClock struct {
	last    time.Time
	maxStep float64 // Upper bound for one step in seconds, 0 = unbounded
}

// NewFrameClock creates a clock that limits a single step to maxStep seconds.
// A host that was suspended (terminal in background, window dragged) would
// otherwise feed one huge dt into the simulation.
func NewFrameClock(maxStep float64) *FrameClock {
	return &FrameClock{maxStep: maxStep}
}

// Step returns the seconds elapsed since the previous call.
// The first call returns 0.
func (c *FrameClock) Step(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxStep > 0 && dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Reset forgets the previous timestamp so the next Step returns 0.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
