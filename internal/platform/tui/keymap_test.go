package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/minigame/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"speed keys are host keys", runes("]"), core.ActionNone},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestFrameSchedulerFlush(t *testing.T) {
	s := NewFrameScheduler(50)
	if got := s.Interval(); got != 20*time.Millisecond {
		t.Errorf("Interval() = %v, expected 20ms", got)
	}

	if s.Flush() {
		t.Error("Flush() on an empty queue = true, expected false")
	}

	runs := 0
	var loop func()
	loop = func() {
		runs++
		if runs < 3 {
			s.RequestFrame(loop)
		}
	}
	s.RequestFrame(loop)

	for s.Flush() {
	}
	if runs != 3 {
		t.Errorf("runs = %d, expected 3", runs)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestFrameSchedulerDefaultFPS(t *testing.T) {
	s := NewFrameScheduler(0)
	if got := s.Interval(); got != time.Second/60 {
		t.Errorf("Interval() = %v, expected %v", got, time.Second/60)
	}
}
