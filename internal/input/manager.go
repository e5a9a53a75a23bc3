// Package input routes raw touch events from the platform to the active
// scene and suppresses them while a modal block layer is open.
package input

import (
	"slices"

	"github.com/vovakirdan/minigame/internal/core"
)

// Phase identifies the kind of touch event.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Touch is a single contact point in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent is a raw platform input event.
// Touches holds the points still in contact; ChangedTouches holds the
// points this event is about.
type TouchEvent struct {
	Phase          Phase
	Touches        []Touch
	ChangedTouches []Touch
}

// Point returns the first changed touch, falling back to the first
// active touch. ok is false when the event carries no points.
func (e TouchEvent) Point() (Touch, bool) {
	if len(e.ChangedTouches) > 0 {
		return e.ChangedTouches[0], true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0], true
	}
	return Touch{}, false
}

// Handler receives routed touch events.
type Handler interface {
	OnTouchStart(TouchEvent)
	OnTouchMove(TouchEvent)
	OnTouchEnd(TouchEvent)
	OnTouchCancel(TouchEvent)
}

// ActionHandler is implemented by scenes that react to semantic key actions.
type ActionHandler interface {
	OnAction(core.Action)
}

// Source is the platform's raw touch input.
type Source interface {
	OnTouch(fn func(TouchEvent))
}

type registration struct {
	id      string
	handler Handler
}

// Manager holds the block-layer stack and the registered scene handlers.
type Manager struct {
	layers    []string
	scenes    []registration
	listening bool
}

// NewManager creates an input manager with no scenes and no layers.
func NewManager() *Manager {
	return &Manager{}
}

// PushBlockLayer pushes a layer id and returns it as the handle for PopBlockLayer.
func (m *Manager) PushBlockLayer(id string) string {
	m.layers = append(m.layers, id)
	return id
}

// PopBlockLayer removes the first occurrence of id. Missing ids are ignored.
func (m *Manager) PopBlockLayer(id string) {
	if idx := slices.Index(m.layers, id); idx >= 0 {
		m.layers = slices.Delete(m.layers, idx, idx+1)
	}
}

// ClearBlockLayers empties the layer stack.
func (m *Manager) ClearBlockLayers() {
	m.layers = nil
}

// IsBlocked reports whether any block layer is open.
func (m *Manager) IsBlocked() bool {
	return len(m.layers) > 0
}

// BlockDepth returns the number of open block layers.
func (m *Manager) BlockDepth() int {
	return len(m.layers)
}

// RegisterScene routes input to h under sceneID. Registering an existing
// id replaces its handler in place.
func (m *Manager) RegisterScene(sceneID string, h Handler) {
	for i := range m.scenes {
		if m.scenes[i].id == sceneID {
			m.scenes[i].handler = h
			return
		}
	}
	m.scenes = append(m.scenes, registration{id: sceneID, handler: h})
}

// UnregisterScene stops routing input to sceneID.
func (m *Manager) UnregisterScene(sceneID string) {
	m.scenes = slices.DeleteFunc(m.scenes, func(r registration) bool {
		return r.id == sceneID
	})
}

// SceneCount returns the number of registered scenes.
func (m *Manager) SceneCount() int {
	return len(m.scenes)
}

// StartListening attaches the manager to a platform source. Later calls
// are ignored.
func (m *Manager) StartListening(src Source) {
	if m.listening || src == nil {
		return
	}
	m.listening = true
	src.OnTouch(m.Dispatch)
}

// IsListening reports whether StartListening has attached a source.
func (m *Manager) IsListening() bool {
	return m.listening
}

// Dispatch routes ev to every registered scene, unless a block layer is open.
func (m *Manager) Dispatch(ev TouchEvent) {
	if m.IsBlocked() {
		return
	}

	for _, r := range slices.Clone(m.scenes) {
		switch ev.Phase {
		case PhaseStart:
			r.handler.OnTouchStart(ev)
		case PhaseMove:
			r.handler.OnTouchMove(ev)
		case PhaseEnd:
			r.handler.OnTouchEnd(ev)
		case PhaseCancel:
			r.handler.OnTouchCancel(ev)
		}
	}
}

// DispatchAction routes a key action to scenes implementing ActionHandler.
// Block layers do not apply: a modal must stay dismissable from the keyboard.
func (m *Manager) DispatchAction(a core.Action) {
	for _, r := range slices.Clone(m.scenes) {
		if h, ok := r.handler.(ActionHandler); ok {
			h.OnAction(a)
		}
	}
}
