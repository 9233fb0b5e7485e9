package core

import (
	"testing"
	"time"
)

func TestFrameClockStep(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		maxStep  float64
		advance  time.Duration
		expected float64
	}{
		{"regular frame", 0.25, 16 * time.Millisecond, 0.016},
		{"long pause is limited", 0.25, 2 * time.Second, 0.25},
		{"unbounded clock", 0, 2 * time.Second, 2},
		{"clock going backwards", 0.25, -time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewFrameClock(tc.maxStep)
			if first := c.Step(start); first != 0 {
				t.Fatalf("first Step() = %f, expected 0", first)
			}
			dt := c.Step(start.Add(tc.advance))
			if diff := dt - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Step() = %f, expected %f", dt, tc.expected)
			}
		})
	}
}

func TestFrameClockReset(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var c FrameClock
	c.Step(start)
	c.Reset()

	if dt := c.Step(start.Add(time.Second)); dt != 0 {
		t.Errorf("Step() after Reset = %f, expected 0", dt)
	}
}
