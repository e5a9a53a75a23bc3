package engine

import (
	"sync"
	"time"
)

// Scheduler is the platform's frame callback: RequestFrame runs fn once,
// about one display refresh later.
type Scheduler interface {
	RequestFrame(fn func())
}

// Clock is the platform's monotonic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a clock advanced explicitly, for tests and headless runs.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ManualScheduler queues frame callbacks until Step runs them.
type ManualScheduler struct {
	pending []func()
}

// RequestFrame queues fn for the next Step.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// Step runs the callbacks queued before the call and reports whether any ran.
// Callbacks requested during Step wait for the next one.
func (s *ManualScheduler) Step() bool {
	if len(s.pending) == 0 {
		return false
	}

	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn()
	}
	return true
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Run steps a loop driven by s for up to frames frames, advancing clock by
// frameTime before each one. It returns the number of frames stepped.
func (s *ManualScheduler) Run(clock *ManualClock, frameTime time.Duration, frames int) int {
	n := 0
	for n < frames {
		clock.Advance(frameTime)
		if !s.Step() {
			break
		}
		n++
	}
	return n
}
