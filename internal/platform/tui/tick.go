// Package tui is the terminal host for the engine. Bubble Tea supplies the
// frame callback and raw input; mouse presses stand in for touches and a
// character screen stands in for the display.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame.
type FrameMsg time.Time

// FrameScheduler implements engine.Scheduler on top of tea.Tick.
// Callbacks queue up until the model receives the next FrameMsg and
// flushes them on the update goroutine.
type FrameScheduler struct {
	interval time.Duration
	pending  []func()
}

// NewFrameScheduler creates a scheduler ticking fps times per second.
func NewFrameScheduler(fps int) *FrameScheduler {
	s := &FrameScheduler{}
	s.SetFPS(fps)
	return s
}

// SetFPS changes the tick rate. Values below 1 fall back to 60.
func (s *FrameScheduler) SetFPS(fps int) {
	if fps < 1 {
		fps = 60
	}
	s.interval = time.Second / time.Duration(fps)
}

// Interval returns the time between frames.
func (s *FrameScheduler) Interval() time.Duration { return s.interval }

// RequestFrame queues fn for the next frame.
func (s *FrameScheduler) RequestFrame(fn func()) {
	s.pending = append(s.pending, fn)
}

// Flush runs the callbacks queued before the call and reports whether
// any ran. An empty queue means the loop has stopped.
func (s *FrameScheduler) Flush() bool {
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
func (s *FrameScheduler) Pending() int { return len(s.pending) }

// Tick returns a command that delivers the next FrameMsg.
func (s *FrameScheduler) Tick() tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
