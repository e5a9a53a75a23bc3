package engine

import (
	"slices"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/input"
)

// fakeNode is a minimal container node recording lifecycle calls.
type fakeNode struct {
	name      string
	pos       core.Vec2
	children  []Node
	destroyed int
	log       *[]string
}

func newFakeNode(name string, log *[]string) *fakeNode {
	return &fakeNode{name: name, log: log}
}

func (n *fakeNode) Position() core.Vec2      { return n.pos }
func (n *fakeNode) SetPosition(x, y float64) { n.pos = core.Vec2{X: x, Y: y} }
func (n *fakeNode) AddChild(c Node)          { n.children = append(n.children, c) }

func (n *fakeNode) RemoveChild(c Node) {
	n.children = slices.DeleteFunc(n.children, func(o Node) bool { return o == c })
}

func (n *fakeNode) Destroy() {
	n.destroyed++
	if n.log != nil {
		*n.log = append(*n.log, n.name+".destroy")
	}
	for _, c := range n.children {
		c.Destroy()
	}
	n.children = nil
}

// depthNode adds a Z axis.
type depthNode struct {
	fakeNode
	z float64
}

func (n *depthNode) Z() float64     { return n.z }
func (n *depthNode) SetZ(z float64) { n.z = z }

// testObject records its hooks.
type testObject struct {
	*Object
	name    string
	log     *[]string
	updates int
	cleanup int
}

func newTestObject(name string, log *[]string) *testObject {
	o := &testObject{Object: &Object{}, name: name, log: log}
	o.SetDisplay(newFakeNode(name+".node", log))
	return o
}

func (o *testObject) Update(dt time.Duration) {
	o.updates++
	*o.log = append(*o.log, o.name+".update")
}

func (o *testObject) Cleanup() {
	o.cleanup++
	*o.log = append(*o.log, o.name+".cleanup")
}

// testScene records its lifecycle and lets tests hook into Update.
type testScene struct {
	*BaseScene
	log      *[]string
	params   Params
	updates  int
	onUpdate func(s *testScene)
	touches  []input.Phase
}

func newTestSceneFactory(name string, log *[]string, onUpdate func(s *testScene)) (Factory, *[]*testScene) {
	built := &[]*testScene{}
	return func(rt *Runtime) Scene {
		s := &testScene{
			BaseScene: NewBaseScene(rt, name, newFakeNode(name+".stage", log)),
			log:       log,
			onUpdate:  onUpdate,
		}
		*built = append(*built, s)
		return s
	}, built
}

func (s *testScene) Enter(params Params) {
	s.params = params
	*s.log = append(*s.log, s.Name()+".enter")
}

func (s *testScene) Update(dt time.Duration) {
	s.updates++
	*s.log = append(*s.log, s.Name()+".update")
	s.BaseScene.Update(dt)
	if s.onUpdate != nil {
		s.onUpdate(s)
	}
}

func (s *testScene) Cleanup() {
	*s.log = append(*s.log, s.Name()+".cleanup")
}

func (s *testScene) OnTouchStart(input.TouchEvent) { s.touches = append(s.touches, input.PhaseStart) }
func (s *testScene) OnTouchEnd(input.TouchEvent)   { s.touches = append(s.touches, input.PhaseEnd) }

func newTestRuntime() *Runtime {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewRuntime(cfg, nil)
}

// countOf returns how many times entry appears in log.
func countOf(log []string, entry string) int {
	n := 0
	for _, e := range log {
		if e == entry {
			n++
		}
	}
	return n
}

// indexOf returns the first index of entry in log, or -1.
func indexOf(log []string, entry string) int {
	return slices.Index(log, entry)
}
