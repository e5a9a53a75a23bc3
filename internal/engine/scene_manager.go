package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/eventbus"
)

// SceneManager owns at most one current scene and applies switch requests
// at a single point in the frame.
type SceneManager struct {
	rt      *Runtime
	current Scene
	next    *SwitchRequest
	sub     eventbus.ID
}

// NewSceneManager creates a manager listening for switch requests on rt.Bus.
// When several requests arrive before PerformSwitch, the last one wins.
func NewSceneManager(rt *Runtime) *SceneManager {
	m := &SceneManager{rt: rt}
	m.listen()
	return m
}

// listen subscribes to switch requests unless already subscribed.
func (m *SceneManager) listen() {
	if m.sub != 0 {
		return
	}
	m.sub = m.rt.Bus.Subscribe(EventSceneSwitch, func(args ...any) {
		if len(args) == 0 {
			return
		}
		if req, ok := args[0].(SwitchRequest); ok {
			m.SwitchTo(req.Factory, req.Params)
		}
	})
}

// Start builds and enters the first scene. A manager restarted after
// Close listens for switch requests again.
func (m *SceneManager) Start(factory Factory, params Params) error {
	if m.current != nil {
		return fmt.Errorf("engine: %w: scene already started, use SwitchTo", core.ErrIllegalState)
	}
	if factory == nil {
		return fmt.Errorf("engine: %w: nil scene factory", core.ErrInvalidArgument)
	}

	m.listen()

	m.current = factory(m.rt)
	EnterScene(m.current, params)
	return nil
}

// SwitchTo stages a switch. A nil factory is ignored.
func (m *SceneManager) SwitchTo(factory Factory, params Params) {
	if factory == nil {
		m.rt.Logger.Warn("ignoring scene switch without factory")
		return
	}
	if m.next != nil {
		m.rt.Logger.Debug("replacing pending scene switch")
	}
	m.next = &SwitchRequest{Factory: factory, Params: params}
}

// PerformSwitch exits the current scene and enters the pending one.
// Without a pending request it does nothing.
func (m *SceneManager) PerformSwitch() {
	if m.next == nil {
		return
	}
	req := *m.next
	m.next = nil

	if m.current != nil {
		ExitScene(m.current)
		m.current = nil
	}

	m.current = req.Factory(m.rt)
	EnterScene(m.current, req.Params)
}

// Update updates the current scene.
func (m *SceneManager) Update(dt time.Duration) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

// Current returns the current scene, or nil.
func (m *SceneManager) Current() Scene {
	return m.current
}

// HasPending reports whether a switch is staged.
func (m *SceneManager) HasPending() bool {
	return m.next != nil
}

// Close stops listening for switch requests and exits the current scene.
func (m *SceneManager) Close() {
	m.rt.Bus.Unsubscribe(EventSceneSwitch, m.sub)
	m.sub = 0
	m.next = nil

	if m.current != nil {
		ExitScene(m.current)
		m.current = nil
	}
}
