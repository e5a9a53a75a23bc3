package showcase

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/render"
)

const pulsePeriod = 600 * time.Millisecond

type menuItem struct {
	node     *render.Node
	activate func()
}

// MenuScene offers the game and the triangle scene. Buttons react to taps
// and to up/down/confirm.
type MenuScene struct {
	*engine.BaseScene
	cfg   *config.Config
	stage *render.Node

	items    []menuItem
	selected int
	pulse    *render.Tween
	glow     float64
	loadTime int
}

func newMenuScene(rt *engine.Runtime, cfg *config.Config) *MenuScene {
	stage := demos.NewStage(SceneMenu)
	return &MenuScene{
		BaseScene: engine.NewBaseScene(rt, SceneMenu, stage),
		cfg:       cfg,
		stage:     stage,
	}
}

func (s *MenuScene) Enter(params engine.Params) {
	s.loadTime = params.Int("loadTime", 0)
	s.Runtime().Logger.Info("menu params", "loadTime", s.loadTime)

	a := s.Runtime().Adapter
	cx, cy := a.DesignWidth()/2, a.DesignHeight()/2

	title := render.NewText("title", "Main Menu", core.ColorBrightWhite)
	title.SetAnchor(0.5, 0.5)
	title.SetPosition(cx, 4)
	s.stage.AddChild(title)

	if s.loadTime > 0 {
		sub := render.NewText("loaded", fmt.Sprintf("loaded in %d ms", s.loadTime), core.ColorDarkGray)
		sub.SetAnchor(0.5, 0.5)
		sub.SetPosition(cx, 6)
		s.stage.AddChild(sub)
	}

	s.addItem("start", "[ Start Game ]", cx, cy-1, s.startGame)
	s.addItem("triangle", "[ Triangle ]", cx, cy+2, s.openTriangle)

	hint := render.NewText("hint", "tap a button, or ↑/↓ and enter", core.ColorGray)
	hint.SetAnchor(0.5, 0.5)
	hint.SetPosition(cx, a.DesignHeight()-3)
	s.stage.AddChild(hint)

	s.restartPulse(0, 1)
	s.highlight()
}

func (s *MenuScene) addItem(name, label string, x, y float64, activate func()) {
	btn := render.NewButton(name, label, core.ColorGreen, activate)
	btn.SetPosition(x, y)
	s.stage.AddChild(btn)
	s.items = append(s.items, menuItem{node: btn, activate: activate})
}

func (s *MenuScene) startGame() {
	s.SwitchTo(GameFactory(s.cfg), engine.Params{"level": 1})
}

func (s *MenuScene) openTriangle() {
	s.SwitchTo(TriangleFactory(s.cfg), nil)
}

// restartPulse runs the highlight tween back and forth forever.
func (s *MenuScene) restartPulse(from, to float64) {
	s.pulse = render.NewTween(from, to, pulsePeriod, ease.InOutSine, func(v float64) {
		s.glow = v
	})
	s.pulse.After = func() { s.restartPulse(to, from) }
}

func (s *MenuScene) highlight() {
	for i, it := range s.items {
		switch {
		case i != s.selected:
			it.node.Color = core.ColorGreen
		case s.glow > 0.5:
			it.node.Color = core.ColorBrightYellow
		default:
			it.node.Color = core.ColorBrightGreen
		}
	}
}

func (s *MenuScene) Update(dt time.Duration) {
	s.BaseScene.Update(dt)
	s.pulse.Update(dt)
	s.highlight()
}

// Selected returns the index of the highlighted button.
func (s *MenuScene) Selected() int { return s.selected }

func (s *MenuScene) OnAction(a core.Action) {
	switch a {
	case core.ActionUp:
		s.selected = (s.selected + len(s.items) - 1) % len(s.items)
	case core.ActionDown:
		s.selected = (s.selected + 1) % len(s.items)
	case core.ActionConfirm:
		s.items[s.selected].activate()
	}
}

func (s *MenuScene) OnTouchEnd(ev input.TouchEvent) {
	if t, ok := ev.Point(); ok {
		s.Runtime().Logger.Debug("menu touch", "x", t.X, "y", t.Y)
	}
}
