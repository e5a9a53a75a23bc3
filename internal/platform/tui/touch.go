package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/input"
)

// tapper is a display node that resolves taps on interactive children.
type tapper interface {
	Tap(x, y float64, a *core.ScreenAdapter) bool
}

// TouchSource turns mouse events into single-point touch events.
// The left button is the finger; a terminal reports one pointer, so the
// touch id is always 0.
type TouchSource struct {
	emit    func(input.TouchEvent)
	pressed bool
	last    input.Touch
}

// OnTouch implements input.Source.
func (s *TouchSource) OnTouch(fn func(input.TouchEvent)) {
	s.emit = fn
}

// IsPressed reports whether a touch is in progress.
func (s *TouchSource) IsPressed() bool { return s.pressed }

// HandleMouse translates msg and dispatches the resulting event. Presses
// outside the adapter's safe area are ignored. On release, stage gets the
// tap first; a tap an interactive node consumed reaches the scenes as a
// cancel rather than an end, so it is not handled twice.
func (s *TouchSource) HandleMouse(msg tea.MouseMsg, stage tapper, a *core.ScreenAdapter) {
	t := input.Touch{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !a.IsInSafeArea(t.X, t.Y) {
			return
		}
		if s.pressed {
			s.send(input.TouchEvent{Phase: input.PhaseCancel, ChangedTouches: []input.Touch{s.last}})
		}
		s.pressed = true
		s.last = t
		s.send(input.TouchEvent{Phase: input.PhaseStart, Touches: []input.Touch{t}, ChangedTouches: []input.Touch{t}})

	case tea.MouseActionMotion:
		if !s.pressed {
			return
		}
		s.last = t
		s.send(input.TouchEvent{Phase: input.PhaseMove, Touches: []input.Touch{t}, ChangedTouches: []input.Touch{t}})

	case tea.MouseActionRelease:
		if !s.pressed {
			return
		}
		s.pressed = false
		s.last = t

		phase := input.PhaseEnd
		if stage != nil && stage.Tap(t.X, t.Y, a) {
			phase = input.PhaseCancel
		}
		s.send(input.TouchEvent{Phase: phase, ChangedTouches: []input.Touch{t}})
	}
}

// Cancel ends a touch in progress, e.g. when the terminal loses focus.
func (s *TouchSource) Cancel() {
	if !s.pressed {
		return
	}
	s.pressed = false
	s.send(input.TouchEvent{Phase: input.PhaseCancel, ChangedTouches: []input.Touch{s.last}})
}

func (s *TouchSource) send(ev input.TouchEvent) {
	if s.emit != nil {
		s.emit(ev)
	}
}
