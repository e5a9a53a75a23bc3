package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/minigame/internal/eventbus"
	"github.com/vovakirdan/minigame/internal/input"
)

// Params carries values from one scene to the next.
type Params map[string]any

// Int returns params[key] as an int, or def when missing or of another type.
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float returns params[key] as a float64, or def.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case time.Duration:
		return v.Seconds()
	default:
		return def
	}
}

// String returns params[key] as a string, or def.
func (p Params) String(key string, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Factory constructs a scene. It must not enter it.
type Factory func(rt *Runtime) Scene

// SwitchRequest is the payload of EventSceneSwitch.
type SwitchRequest struct {
	Factory Factory
	Params  Params
}

// Scene is a screen of the game: it owns game objects and receives input.
// Implementations embed *BaseScene and override the hooks they need;
// overriding Update should still call BaseScene.Update to drive objects.
type Scene interface {
	input.Handler
	Enter(params Params)
	Update(dt time.Duration)
	Cleanup()
	Base() *BaseScene
}

// BaseScene holds the state shared by every scene.
type BaseScene struct {
	id      string
	name    string
	active  bool
	objects []GameObject
	stage   Container
	rt      *Runtime

	modalSeq int
}

// NewBaseScene creates scene state bound to rt. stage is the scene's
// root display node and may be nil for scenes that draw nothing.
func NewBaseScene(rt *Runtime, name string, stage Container) *BaseScene {
	return &BaseScene{
		id:    fmt.Sprintf("scene_%s_%s", name, uuid.NewString()),
		name:  name,
		stage: stage,
		rt:    rt,
	}
}

// Base returns the scene state itself.
func (s *BaseScene) Base() *BaseScene { return s }

// ID returns the unique scene identifier.
func (s *BaseScene) ID() string { return s.id }

// Name returns the scene kind name.
func (s *BaseScene) Name() string { return s.name }

// IsActive reports whether the scene has been entered and not exited.
func (s *BaseScene) IsActive() bool { return s.active }

// Stage returns the scene's root display node.
func (s *BaseScene) Stage() Container { return s.stage }

// Runtime returns the services the scene was built with.
func (s *BaseScene) Runtime() *Runtime { return s.rt }

// Objects returns a copy of the owned game objects in insertion order.
func (s *BaseScene) Objects() []GameObject { return slices.Clone(s.objects) }

// Enter is a no-op.
func (s *BaseScene) Enter(Params) {}

// Cleanup is a no-op.
func (s *BaseScene) Cleanup() {}

// OnTouchStart is a no-op.
func (s *BaseScene) OnTouchStart(input.TouchEvent) {}

// OnTouchMove is a no-op.
func (s *BaseScene) OnTouchMove(input.TouchEvent) {}

// OnTouchEnd is a no-op.
func (s *BaseScene) OnTouchEnd(input.TouchEvent) {}

// OnTouchCancel is a no-op.
func (s *BaseScene) OnTouchCancel(input.TouchEvent) {}

// Update updates every owned object in insertion order. Objects destroyed
// earlier in the same pass are skipped.
func (s *BaseScene) Update(dt time.Duration) {
	for _, obj := range slices.Clone(s.objects) {
		if obj.Base().IsDestroyed() {
			continue
		}
		obj.Update(dt)
	}
}

// AddGameObject takes ownership of obj and attaches its display node to the stage.
func (s *BaseScene) AddGameObject(obj GameObject) {
	s.objects = append(s.objects, obj)

	if s.stage != nil {
		if n := obj.Base().Display(); n != nil {
			s.stage.AddChild(n)
		}
	}
}

// RemoveGameObject detaches and destroys obj. It returns false when the
// scene does not own obj.
func (s *BaseScene) RemoveGameObject(obj GameObject) bool {
	idx := slices.Index(s.objects, obj)
	if idx < 0 {
		return false
	}
	s.objects = slices.Delete(s.objects, idx, idx+1)

	if s.stage != nil {
		if n := obj.Base().Display(); n != nil {
			s.stage.RemoveChild(n)
		}
	}

	Destroy(obj)
	return true
}

// SwitchTo requests a switch to the scene built by factory. The switch
// happens at the start of the next frame, never during this call.
func (s *BaseScene) SwitchTo(factory Factory, params Params) {
	if params == nil {
		params = Params{}
	}
	s.rt.Bus.Emit(EventSceneSwitch, SwitchRequest{Factory: factory, Params: params})
}

// Subscribe listens on the runtime bus for as long as the scene is alive.
// The subscription is dropped automatically when the scene exits.
func (s *BaseScene) Subscribe(event string, h eventbus.Handler) eventbus.ID {
	return s.rt.Bus.SubscribeOwned(event, s, h)
}

// OpenModal pushes a block layer so touches stop reaching every scene.
// The returned id closes it.
func (s *BaseScene) OpenModal() string {
	s.modalSeq++
	id := fmt.Sprintf("modal_%s_%d_%d", s.id, time.Now().UnixMilli(), s.modalSeq)
	return s.rt.Input.PushBlockLayer(id)
}

// CloseModal pops the block layer opened by OpenModal.
func (s *BaseScene) CloseModal(id string) {
	s.rt.Input.PopBlockLayer(id)
}

// EnterScene activates sc: it registers its input handlers, drops any
// block layers left by the previous scene, then calls sc.Enter.
func EnterScene(sc Scene, params Params) {
	s := sc.Base()
	if params == nil {
		params = Params{}
	}

	s.active = true
	s.rt.Input.RegisterScene(s.id, sc)
	s.rt.Input.ClearBlockLayers()

	s.rt.Logger.Debug("scene enter", "scene", s.name, "params", params)
	sc.Enter(params)
	s.rt.Bus.Emit(EventSceneEnter, s.name)
}

// ExitScene deactivates sc: it unregisters input, destroys every owned
// object, calls sc.Cleanup, drops the scene's bus subscriptions and
// finally destroys the stage.
func ExitScene(sc Scene) {
	s := sc.Base()

	s.active = false
	s.rt.Input.UnregisterScene(s.id)

	for _, obj := range s.objects {
		Destroy(obj)
	}
	s.objects = nil

	sc.Cleanup()
	s.rt.Bus.UnsubscribeOwner(s)

	if s.stage != nil {
		s.stage.Destroy()
		s.stage = nil
	}

	s.rt.Logger.Debug("scene exit", "scene", s.name)
	s.rt.Bus.Emit(EventSceneExit, s.name)
}
