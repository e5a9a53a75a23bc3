package showcase

import (
	"fmt"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/render"
)

// overlayDepth keeps the pause dialog above everything else on the stage.
const overlayDepth = 100

// GameScene scores a point for every tap on the background. The pause
// button opens a modal that freezes game time and swallows background
// taps until it is closed.
type GameScene struct {
	*engine.BaseScene
	cfg   *config.Config
	stage *render.Node

	level     int
	score     int
	scoreText *render.Node
	player    *Player

	modalID string
	overlay *render.Node
}

func newGameScene(rt *engine.Runtime, cfg *config.Config) *GameScene {
	stage := demos.NewStage(SceneGame)
	return &GameScene{
		BaseScene: engine.NewBaseScene(rt, SceneGame, stage),
		cfg:       cfg,
		stage:     stage,
	}
}

func (s *GameScene) Enter(params engine.Params) {
	s.level = params.Int("level", 1)
	s.Runtime().Logger.Info("game params", "level", s.level)

	a := s.Runtime().Adapter
	w, h := a.DesignWidth(), a.DesignHeight()

	hint := render.NewText("hint", "Game (tap anywhere to score)", core.ColorGray)
	hint.SetAnchor(0.5, 0)
	hint.SetPosition(w/2, 1)
	s.stage.AddChild(hint)

	s.scoreText = render.NewText("score", "Score: 0", core.ColorBrightYellow)
	s.scoreText.SetPosition(2, 3)
	s.stage.AddChild(s.scoreText)

	lvl := render.NewText("level", fmt.Sprintf("Level %d", s.level), core.ColorWhite)
	lvl.SetPosition(2, 4)
	s.stage.AddChild(lvl)

	pause := render.NewButton("pause", "[Pause]", core.ColorRed, s.ShowPauseMenu)
	pause.SetAnchor(1, 0)
	pause.SetPosition(w-2, 1)
	s.stage.AddChild(pause)

	s.player = NewPlayer(s.cfg.Showcase.PlayerSpin)
	s.player.SetPosition(w/2, h/2, 0)
	s.AddGameObject(s.player)

	s.Subscribe(demos.EventScore, s.onScore)
}

func (s *GameScene) onScore(args ...any) {
	if score, ok := demos.ScoreOf(args); ok {
		s.scoreText.Text = fmt.Sprintf("Score: %d", score)
	}
}

func (s *GameScene) addScore() {
	s.score += s.cfg.Showcase.ScorePerTap
	s.Runtime().Bus.Emit(demos.EventScore, s.score)
}

func (s *GameScene) OnTouchEnd(ev input.TouchEvent) {
	if s.IsPaused() {
		return
	}
	s.addScore()

	if x, y, ok := demos.TouchPoint(s.Runtime(), ev); ok {
		s.Runtime().Logger.Debug("game tap", "x", x, "y", y, "score", s.score)
	}
}

func (s *GameScene) OnAction(a core.Action) {
	switch a {
	case core.ActionConfirm:
		if !s.IsPaused() {
			s.addScore()
		}
	case core.ActionPause:
		if s.IsPaused() {
			s.ClosePauseMenu()
		} else {
			s.ShowPauseMenu()
		}
	case core.ActionBack:
		s.SwitchTo(MenuFactory(s.cfg), nil)
	}
}

// ShowPauseMenu opens the pause dialog.
func (s *GameScene) ShowPauseMenu() {
	if s.IsPaused() {
		return
	}

	s.modalID = s.OpenModal()
	s.Runtime().Time.Pause()

	a := s.Runtime().Adapter
	w, h := a.DesignWidth(), a.DesignHeight()

	s.overlay = render.NewContainer("pause.overlay")
	s.overlay.SetZ(overlayDepth)

	mask := render.NewRect("pause.mask", w, h, ' ', core.ColorDefault)
	s.overlay.AddChild(mask)

	box := render.NewRect("pause.box", 30, 8, 0, core.ColorWhite)
	box.SetPosition(w/2-15, h/2-5)
	s.overlay.AddChild(box)

	title := render.NewText("pause.title", "PAUSED", core.ColorBrightWhite)
	title.SetAnchor(0.5, 0.5)
	title.SetPosition(w/2, h/2-3)
	s.overlay.AddChild(title)

	resume := render.NewButton("pause.resume", "[ Resume ]", core.ColorBrightGreen, s.ClosePauseMenu)
	resume.SetPosition(w/2, h/2)
	s.overlay.AddChild(resume)

	s.stage.AddChild(s.overlay)
	s.Runtime().Logger.Info("pause menu opened, background input blocked")
}

// ClosePauseMenu closes the pause dialog and resumes game time.
func (s *GameScene) ClosePauseMenu() {
	if !s.IsPaused() {
		return
	}

	s.CloseModal(s.modalID)
	s.modalID = ""
	s.Runtime().Time.Resume()

	s.overlay.Destroy()
	s.overlay = nil
	s.Runtime().Logger.Info("pause menu closed, background input restored")
}

// IsPaused reports whether the pause dialog is open.
func (s *GameScene) IsPaused() bool { return s.modalID != "" }

// Score returns the current score.
func (s *GameScene) Score() int { return s.score }

// Level returns the level the scene was entered with.
func (s *GameScene) Level() int { return s.level }

// Player returns the spinning player object.
func (s *GameScene) Player() *Player { return s.player }

func (s *GameScene) Cleanup() {
	s.ClosePauseMenu()
	s.Runtime().Bus.Emit(demos.EventGameOver, s.score)
}
