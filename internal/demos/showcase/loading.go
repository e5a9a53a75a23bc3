package showcase

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/render"
)

const barWidth = 30

// LoadingScene fills a progress bar, then moves on to the menu with
// the time it took as the loadTime param (milliseconds).
type LoadingScene struct {
	*engine.BaseScene
	cfg   *config.Config
	stage *render.Node

	bar      *render.Node
	tween    *render.Tween
	progress float64
}

func newLoadingScene(rt *engine.Runtime, cfg *config.Config) *LoadingScene {
	stage := demos.NewStage(SceneLoading)
	return &LoadingScene{
		BaseScene: engine.NewBaseScene(rt, SceneLoading, stage),
		cfg:       cfg,
		stage:     stage,
	}
}

func (s *LoadingScene) Enter(params engine.Params) {
	a := s.Runtime().Adapter
	cx, cy := a.DesignWidth()/2, a.DesignHeight()/2

	title := render.NewText("title", "minigame", core.ColorBrightWhite)
	title.SetAnchor(0.5, 0.5)
	title.SetPosition(cx, cy-4)
	s.stage.AddChild(title)

	label := render.NewText("loading", "Loading...", core.ColorGray)
	label.SetAnchor(0.5, 0.5)
	label.SetPosition(cx, cy)
	s.stage.AddChild(label)

	s.bar = render.NewText("bar", progressBar(0), core.ColorCyan)
	s.bar.SetAnchor(0.5, 0.5)
	s.bar.SetPosition(cx, cy+2)
	s.stage.AddChild(s.bar)

	notice := render.NewText("notice", "Play in moderation. Take a break every hour.", core.ColorDarkGray)
	notice.SetAnchor(0.5, 0.5)
	notice.SetPosition(cx, a.DesignHeight()-3)
	s.stage.AddChild(notice)

	delay := loadingDelay(s.cfg)
	s.tween = render.NewTween(0, 1, delay, ease.OutQuad, func(v float64) {
		s.progress = v
		s.bar.Text = progressBar(v)
	})
	s.tween.After = func() {
		s.SwitchTo(MenuFactory(s.cfg), engine.Params{"loadTime": int(delay.Milliseconds())})
	}
}

func (s *LoadingScene) Update(dt time.Duration) {
	s.BaseScene.Update(dt)
	if s.tween != nil {
		s.tween.Update(dt)
	}
}

// Progress returns the bar fill in [0, 1].
func (s *LoadingScene) Progress() float64 { return s.progress }

func progressBar(v float64) string {
	v = core.ClampF(v, 0, 1)
	filled := int(v * barWidth)
	return fmt.Sprintf("[%s%s] %3d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		int(v*100),
	)
}
