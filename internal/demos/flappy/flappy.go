// Package flappy implements a Flappy Bird-style demo on the engine.
// The player flaps a bird through gaps in pipes that scroll in from the
// right; a crash ends the run and a tap starts the next one.
package flappy

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/registry"
	"github.com/vovakirdan/minigame/internal/render"
)

// ID is the registry and score-table identifier.
const ID = "flappy"

// GroundChar draws the ground line.
const GroundChar = '═'

// Factory builds the flappy scene. Params: "attempt" (run number) and
// "best" (best score so far).
func Factory(cfg *config.Config) engine.Factory {
	return func(rt *engine.Runtime) engine.Scene { return newScene(rt, cfg) }
}

// Scene is one run of the game, from the first flap to the crash.
// Restarting switches to a fresh Scene.
type Scene struct {
	*engine.BaseScene
	cfg   *config.Config
	stage *render.Node

	bird       *Bird
	pipes      *PipeField
	difficulty *config.DifficultyManager
	groundY    float64

	score   int
	best    int
	attempt int
	elapsed time.Duration

	over     bool
	reported bool
	modalID  string

	scoreText *render.Node
	overlay   *render.Node
}

func newScene(rt *engine.Runtime, cfg *config.Config) *Scene {
	stage := demos.NewStage(ID)
	return &Scene{
		BaseScene: engine.NewBaseScene(rt, ID, stage),
		cfg:       cfg,
		stage:     stage,
	}
}

func (s *Scene) Enter(params engine.Params) {
	s.attempt = params.Int("attempt", 1)
	s.best = params.Int("best", 0)

	rt := s.Runtime()
	w, h := rt.Adapter.DesignWidth(), rt.Adapter.DesignHeight()
	s.groundY = h - 1

	s.difficulty = config.NewDifficultyManager(s.cfg.Flappy.Difficulty)
	s.pipes = NewPipeField(&s.cfg.Flappy, s.difficulty, rt.Rand, w, s.groundY, s.cfg.Pools.Pipes)
	s.AddGameObject(s.pipes)

	s.bird = NewBird(s.cfg.Flappy, h/2)
	s.AddGameObject(s.bird)

	ground := render.NewText("ground", strings.Repeat(string(GroundChar), int(w)), core.ColorYellow)
	ground.SetPosition(0, s.groundY)
	s.stage.AddChild(ground)

	s.scoreText = render.NewText("score", "", core.ColorBrightWhite)
	s.scoreText.SetPosition(2, 0)
	s.scoreText.SetZ(20)
	s.stage.AddChild(s.scoreText)
	s.drawScore()

	s.Subscribe(demos.EventScore, func(...any) { s.drawScore() })

	rt.Logger.Debug("flappy run", "attempt", s.attempt, "best", s.best,
		"difficulty", s.difficulty.IsEnabled())
}

func (s *Scene) drawScore() {
	s.scoreText.Text = fmt.Sprintf(" Score: %d  Best: %d ", s.score, max(s.best, s.score))
}

func (s *Scene) Update(dt time.Duration) {
	if s.over {
		return
	}

	s.BaseScene.Update(dt)
	s.elapsed += dt

	bird := s.bird.Rect()
	if passed := s.pipes.Advance(dt, bird.X, s.score, s.elapsed); passed > 0 {
		s.score += passed
		s.Runtime().Bus.Emit(demos.EventScore, s.score)
	}

	// Hit top of screen
	if s.bird.Y() < 0 {
		s.bird.SetY(0)
		s.crash()
		return
	}

	// Hit the ground
	if bird.Bottom() >= s.groundY {
		s.bird.SetY(s.groundY - bird.H)
		s.crash()
		return
	}

	if s.pipes.Collides(s.bird.Rect()) {
		s.crash()
	}
}

func (s *Scene) crash() {
	s.over = true
	s.best = max(s.best, s.score)
	s.report()

	w, h := s.Runtime().Adapter.DesignWidth(), s.Runtime().Adapter.DesignHeight()

	s.overlay = render.NewContainer("gameover")
	s.overlay.SetZ(30)
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d  |  Tap or R to restart", s.score)}
	boxW := float64(max(len([]rune(lines[0])), len([]rune(lines[1]))) + 4)

	box := render.NewRect("gameover.box", boxW, 5, ' ', core.ColorDefault)
	box.SetPosition(w/2-boxW/2, h/2-2)
	s.overlay.AddChild(box)
	frame := render.NewRect("gameover.frame", boxW, 5, 0, core.ColorBrightRed)
	frame.SetPosition(w/2-boxW/2, h/2-2)
	s.overlay.AddChild(frame)

	for i, line := range lines {
		t := render.NewText("gameover.text", line, core.ColorBrightWhite)
		t.SetAnchor(0.5, 0)
		t.SetPosition(w/2, h/2-1+float64(i)*2)
		t.SetZ(1)
		s.overlay.AddChild(t)
	}

	s.stage.AddChild(s.overlay)
	s.Runtime().Logger.Info("flappy crash", "score", s.score, "attempt", s.attempt)
}

// report emits the run's final score once.
func (s *Scene) report() {
	if s.reported {
		return
	}
	s.reported = true
	s.Runtime().Bus.Emit(demos.EventGameOver, s.score)
}

func (s *Scene) restart() {
	s.SwitchTo(Factory(s.cfg), engine.Params{
		"attempt": s.attempt + 1,
		"best":    max(s.best, s.score),
	})
}

func (s *Scene) flapOrRestart() {
	if s.over {
		s.restart()
		return
	}
	s.bird.Flap()
}

func (s *Scene) OnTouchStart(input.TouchEvent) {
	s.flapOrRestart()
}

func (s *Scene) OnAction(a core.Action) {
	switch a {
	case core.ActionConfirm, core.ActionUp:
		if !s.IsPaused() {
			s.flapOrRestart()
		}
	case core.ActionRestart:
		if s.over {
			s.restart()
		}
	case core.ActionPause:
		s.togglePause()
	}
}

// togglePause blocks touches and freezes game time while paused.
func (s *Scene) togglePause() {
	if s.IsPaused() {
		s.CloseModal(s.modalID)
		s.modalID = ""
		s.Runtime().Time.Resume()
		return
	}
	if s.over {
		return
	}
	s.modalID = s.OpenModal()
	s.Runtime().Time.Pause()
}

func (s *Scene) Cleanup() {
	if s.IsPaused() {
		s.togglePause()
	}
	s.report()
}

// IsPaused reports whether the run is paused.
func (s *Scene) IsPaused() bool { return s.modalID != "" }

// IsOver reports whether the bird has crashed.
func (s *Scene) IsOver() bool { return s.over }

// Score returns the number of pipes passed.
func (s *Scene) Score() int { return s.score }

// Best returns the best score including this run.
func (s *Scene) Best() int { return max(s.best, s.score) }

// Attempt returns the run number.
func (s *Scene) Attempt() int { return s.attempt }

// Bird returns the player object.
func (s *Scene) Bird() *Bird { return s.bird }

// Pipes returns the pipe field.
func (s *Scene) Pipes() *PipeField { return s.pipes }

func init() {
	registry.Register(registry.Demo{
		ID:          ID,
		Title:       "Flappy Bird",
		Description: "Flap through the pipes; difficulty rises with the score",
		Build:       Factory,
		Params:      engine.Params{"attempt": 1},
	})
}
