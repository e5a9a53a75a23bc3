package render

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one value and hands every step to a setter.
// Call Update each frame; there is no global animation manager.
type Tween struct {
	tw    *gween.Tween
	set   func(float64)
	node  *Node
	Done  bool
	After func()
}

// NewTween animates from → to over d with easing fn, calling set with
// every new value.
func NewTween(from, to float64, d time.Duration, fn ease.TweenFunc, set func(float64)) *Tween {
	return &Tween{
		tw:  gween.New(float32(from), float32(to), float32(d.Seconds()), fn),
		set: set,
	}
}

// Update advances the tween by dt and reports whether it has finished.
// A tween bound to a destroyed node stops without writing.
func (t *Tween) Update(dt time.Duration) bool {
	if t.Done {
		return true
	}
	if t.node != nil && t.node.IsDestroyed() {
		t.Done = true
		return true
	}

	v, finished := t.tw.Update(float32(dt.Seconds()))
	t.set(float64(v))

	if finished {
		t.Done = true
		if t.After != nil {
			t.After()
		}
	}
	return t.Done
}

// Reset rewinds the tween to its start.
func (t *Tween) Reset() {
	t.tw.Reset()
	t.Done = false
}

// TweenX animates node.X.
func TweenX(node *Node, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	t := NewTween(node.X, to, d, fn, func(v float64) { node.X = v })
	t.node = node
	return t
}

// TweenY animates node.Y.
func TweenY(node *Node, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	t := NewTween(node.Y, to, d, fn, func(v float64) { node.Y = v })
	t.node = node
	return t
}

// TweenRotation animates node.Rotation.
func TweenRotation(node *Node, to float64, d time.Duration, fn ease.TweenFunc) *Tween {
	t := NewTween(node.Rotation, to, d, fn, func(v float64) { node.Rotation = v })
	t.node = node
	return t
}
