// Package clock abstracts waiting so long pauses can be skipped in tests.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock provides the time operations the runtime waits on
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer that is stopped when ctx ends first
func (c *RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SimulatedClock advances instantly on Sleep and records every requested pause
type SimulatedClock struct {
	mu      sync.Mutex
	current time.Time
	sleeps  []time.Duration
	onSleep func(d time.Duration)
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// NewSimulatedClockNow creates a new SimulatedClock starting at the current time
func NewSimulatedClockNow() *SimulatedClock {
	return NewSimulatedClock(time.Now())
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Sleep advances the simulated time without blocking
func (c *SimulatedClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	if d > 0 {
		c.current = c.current.Add(d)
	}
	hook := c.onSleep
	c.mu.Unlock()

	if hook != nil {
		hook(d)
	}
	return ctx.Err()
}

// OnSleep installs a callback run after every Sleep, e.g. to cancel a context
func (c *SimulatedClock) OnSleep(fn func(d time.Duration)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSleep = fn
}

// Sleeps returns a copy of every requested pause, in order
func (c *SimulatedClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}
