package showcase

import (
	"math"
	"time"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/render"
)

const (
	triangleSize = 16
	// spinEase is how fast the spin speed approaches its target, per second.
	spinEase = 6.0
	// keyBoost is how long the confirm key holds the boost; terminals
	// report no key releases.
	keyBoost = 500 * time.Millisecond
)

// TriangleScene spins a triangle over a twinkling star field. Holding a
// touch speeds the spin up; releasing slows it back down smoothly.
type TriangleScene struct {
	*engine.BaseScene
	cfg   *config.Config
	stage *render.Node

	triangle []*render.Node
	field    *StarField

	rotation  float64
	speed     float64
	pressing  bool
	boostLeft time.Duration
}

func newTriangleScene(rt *engine.Runtime, cfg *config.Config) *TriangleScene {
	stage := demos.NewStage(SceneTriangle)
	return &TriangleScene{
		BaseScene: engine.NewBaseScene(rt, SceneTriangle, stage),
		cfg:       cfg,
		stage:     stage,
		speed:     cfg.Showcase.TriangleSpin,
	}
}

func (s *TriangleScene) Enter(engine.Params) {
	rt := s.Runtime()
	a := rt.Adapter
	w, h := a.DesignWidth(), a.DesignHeight()

	s.field = NewStarField(a.DesignBounds(), s.cfg.Pools.Stars, rt.Rand)
	s.AddGameObject(s.field)

	th := triangleSize * math.Sqrt(3) / 2
	pts := []core.Vec2{
		{X: 0, Y: -th * 2 / 3},
		{X: -triangleSize / 2, Y: th / 3},
		{X: triangleSize / 2, Y: th / 3},
	}

	body := render.NewPolygon("triangle.body", pts, '░', core.ColorNavy)
	edge := render.NewPolygon("triangle.edge", pts, 0, core.ColorBrightCyan)
	edge.SetZ(1)
	dot := render.NewText("triangle.core", "●", core.ColorCyan)
	dot.SetAnchor(0.5, 0.5)
	dot.SetZ(2)

	for _, n := range []*render.Node{body, edge, dot} {
		n.SetPosition(w/2, h/2)
		s.stage.AddChild(n)
	}
	s.triangle = []*render.Node{body, edge}

	hint := render.NewText("hint", "hold to spin faster, esc for menu", core.ColorDarkGray)
	hint.SetAnchor(0.5, 0.5)
	hint.SetPosition(w/2, h-2)
	hint.SetZ(2)
	s.stage.AddChild(hint)
}

func (s *TriangleScene) Update(dt time.Duration) {
	s.BaseScene.Update(dt)

	if s.boostLeft > 0 {
		s.boostLeft -= dt
	}

	target := s.cfg.Showcase.TriangleSpin
	if s.pressing || s.boostLeft > 0 {
		target *= s.cfg.Showcase.TriangleBoost
	}
	s.speed += (target - s.speed) * min(spinEase*dt.Seconds(), 1)
	s.rotation += s.speed * dt.Seconds()

	for _, n := range s.triangle {
		n.Rotation = s.rotation
	}
}

func (s *TriangleScene) OnTouchStart(input.TouchEvent)  { s.pressing = true }
func (s *TriangleScene) OnTouchEnd(input.TouchEvent)    { s.pressing = false }
func (s *TriangleScene) OnTouchCancel(input.TouchEvent) { s.pressing = false }

func (s *TriangleScene) OnAction(a core.Action) {
	switch a {
	case core.ActionConfirm:
		s.boostLeft = keyBoost
	case core.ActionBack:
		s.SwitchTo(MenuFactory(s.cfg), nil)
	}
}

// Speed returns the current spin speed in radians per second.
func (s *TriangleScene) Speed() float64 { return s.speed }

// Rotation returns the triangle angle in radians.
func (s *TriangleScene) Rotation() float64 { return s.rotation }

// Stars returns the star field.
func (s *TriangleScene) Stars() *StarField { return s.field }
