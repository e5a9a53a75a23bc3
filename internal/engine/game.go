package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/input"
)

// Game drives the frame loop. Each frame it advances the time manager,
// applies any pending scene switch, then updates the current scene, always
// in that order.
type Game struct {
	rt     *Runtime
	scenes *SceneManager
	sched  Scheduler
	clock  Clock

	running  bool
	run      int // bumped by Start; frames of earlier runs are dropped
	lastTime time.Time
	frames   int
}

// NewGame creates a stopped game. A nil clock uses the system clock.
func NewGame(rt *Runtime, sched Scheduler, clock Clock) *Game {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Game{
		rt:     rt,
		scenes: NewSceneManager(rt),
		sched:  sched,
		clock:  clock,
	}
}

// Start begins listening on src, enters the first scene and runs the
// first frame. src may be nil for games without touch input. A closed
// game may be started again.
func (g *Game) Start(factory Factory, params Params, src input.Source) error {
	if g.running {
		return fmt.Errorf("engine: %w: game already started", core.ErrIllegalState)
	}

	g.rt.Input.StartListening(src)

	if err := g.scenes.Start(factory, params); err != nil {
		return err
	}

	g.running = true
	g.run++
	g.lastTime = g.clock.Now()
	g.rt.Logger.Info("game started", "scene", g.scenes.Current().Base().Name())

	g.loop(g.run)
	return nil
}

func (g *Game) loop(run int) {
	if !g.running || run != g.run {
		return
	}

	now := g.clock.Now()
	raw := max(now.Sub(g.lastTime), 0)
	g.lastTime = now

	g.rt.Time.Update(raw)
	g.scenes.PerformSwitch()
	g.scenes.Update(g.rt.Time.DeltaTime())
	g.frames++

	g.sched.RequestFrame(func() { g.loop(run) })
}

// Stop ends the loop. The next scheduled frame returns without running
// or scheduling another one.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.rt.Logger.Info("game stopped", "frames", g.frames, "total", g.rt.Time.TotalTime())
}

// Close stops the loop and exits the current scene.
func (g *Game) Close() {
	g.Stop()
	g.scenes.Close()
}

// IsRunning reports whether the loop is active.
func (g *Game) IsRunning() bool { return g.running }

// Frames returns the number of frames run.
func (g *Game) Frames() int { return g.frames }

// SceneManager returns the game's scene manager.
func (g *Game) SceneManager() *SceneManager { return g.scenes }

// Runtime returns the services shared by the game's scenes.
func (g *Game) Runtime() *Runtime { return g.rt }
