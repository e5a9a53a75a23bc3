package engine

import (
	"time"

	"github.com/vovakirdan/minigame/internal/core"
)

// GameObject is a scene-owned entity with a display node and a frame hook.
// Implementations embed *Object and override the hooks they need.
type GameObject interface {
	Init()
	Update(dt time.Duration)
	Cleanup()
	Base() *Object
}

// Object holds the state shared by every game object.
type Object struct {
	display     Node
	initialized bool
	destroyed   bool
}

// Base returns the object itself.
func (o *Object) Base() *Object { return o }

// Init is a no-op.
func (o *Object) Init() {}

// Update is a no-op.
func (o *Object) Update(time.Duration) {}

// Cleanup is a no-op.
func (o *Object) Cleanup() {}

// Display returns the owned display node, or nil.
func (o *Object) Display() Node { return o.display }

// SetDisplay sets the owned display node. Usually called from Init.
func (o *Object) SetDisplay(n Node) { o.display = n }

// IsInitialized reports whether Init has run through InitObject.
func (o *Object) IsInitialized() bool { return o.initialized }

// IsDestroyed reports whether Destroy has run.
func (o *Object) IsDestroyed() bool { return o.destroyed }

// Position returns the display node position. Z is 0 unless the node has
// a depth axis. Objects without a display node are at the origin.
func (o *Object) Position() core.Vec3 {
	if o.display == nil {
		return core.Vec3{}
	}

	p := o.display.Position()
	pos := core.Vec3{X: p.X, Y: p.Y}
	if d, ok := o.display.(DepthNode); ok {
		pos.Z = d.Z()
	}
	return pos
}

// SetPosition moves the display node. z is ignored for 2D nodes.
func (o *Object) SetPosition(x, y, z float64) {
	if o.display == nil {
		return
	}

	o.display.SetPosition(x, y)
	if d, ok := o.display.(DepthNode); ok {
		d.SetZ(z)
	}
}

// InitObject runs obj.Init once and returns obj, so constructors can end
// with `return engine.InitObject(o)`. Destroyed objects are not revived.
func InitObject[T GameObject](obj T) T {
	o := obj.Base()
	if o.initialized || o.destroyed {
		return obj
	}
	o.initialized = true
	obj.Init()
	return obj
}

// Destroy tears obj down once: it destroys the display node with its
// children, then calls obj.Cleanup. Later calls do nothing.
func Destroy(obj GameObject) {
	o := obj.Base()
	if o.destroyed {
		return
	}
	o.destroyed = true

	if o.display != nil {
		o.display.Destroy()
		o.display = nil
	}

	obj.Cleanup()
}
