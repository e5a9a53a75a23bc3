package engine

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/minigame/internal/core"
)

func TestDestroyOrderAndIdempotence(t *testing.T) {
	var log []string
	obj := newTestObject("player", &log)
	node := obj.Display().(*fakeNode)

	Destroy(obj)
	Destroy(obj)
	Destroy(obj)

	expected := []string{"player.node.destroy", "player.cleanup"}
	if !reflect.DeepEqual(log, expected) {
		t.Errorf("Destroy log = %v, expected %v", log, expected)
	}
	if node.destroyed != 1 {
		t.Errorf("node destroyed %d times, expected 1", node.destroyed)
	}
	if !obj.IsDestroyed() {
		t.Error("IsDestroyed() should be true")
	}
	if obj.Display() != nil {
		t.Error("Display() should be nil after Destroy")
	}
}

func TestDestroyReleasesChildren(t *testing.T) {
	var log []string
	obj := newTestObject("ship", &log)
	root := obj.Display().(*fakeNode)
	child := newFakeNode("ship.flame", &log)
	root.AddChild(child)

	Destroy(obj)

	if child.destroyed != 1 {
		t.Errorf("child destroyed %d times, expected 1", child.destroyed)
	}
}

func TestDestroyWithoutDisplay(t *testing.T) {
	var log []string
	obj := &testObject{Object: &Object{}, name: "ghost", log: &log}

	Destroy(obj)

	if obj.cleanup != 1 {
		t.Errorf("cleanup = %d, expected 1", obj.cleanup)
	}
}

func TestObjectPosition(t *testing.T) {
	tests := []struct {
		name     string
		display  Node
		x, y, z  float64
		expected core.Vec3
	}{
		{"2D node ignores z", &fakeNode{}, 3, 4, 9, core.Vec3{X: 3, Y: 4}},
		{"depth node keeps z", &depthNode{}, 3, 4, 9, core.Vec3{X: 3, Y: 4, Z: 9}},
		{"no display", nil, 3, 4, 9, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Object{}
			if tt.display != nil {
				o.SetDisplay(tt.display)
			}
			o.SetPosition(tt.x, tt.y, tt.z)
			if got := o.Position(); got != tt.expected {
				t.Errorf("Position() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

type initCounter struct {
	*Object
	inits int
}

func (c *initCounter) Init() { c.inits++ }

func TestInitObjectRunsOnce(t *testing.T) {
	c := InitObject(&initCounter{Object: &Object{}})
	InitObject(c)

	if c.inits != 1 {
		t.Errorf("Init() ran %d times, expected 1", c.inits)
	}
	if !c.IsInitialized() {
		t.Error("IsInitialized() should be true")
	}

	d := &initCounter{Object: &Object{}}
	Destroy(d)
	InitObject(d)
	if d.inits != 0 {
		t.Errorf("Init() after Destroy ran %d times, expected 0", d.inits)
	}
}
