package flappy

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/registry"
)

const frameTime = 16 * time.Millisecond

func startGame(t *testing.T, params engine.Params) (*engine.Game, *engine.ManualScheduler, *engine.ManualClock) {
	t.Helper()

	cfg := config.Default()
	rt := engine.NewRuntime(cfg.Runtime(80, 24, 42), nil)
	sched := &engine.ManualScheduler{}
	clock := engine.NewManualClock(time.Unix(0, 0))
	g := engine.NewGame(rt, sched, clock)

	if err := g.Start(Factory(&cfg), params, nil); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	t.Cleanup(g.Close)
	return g, sched, clock
}

func current(g *engine.Game) *Scene {
	return g.SceneManager().Current().(*Scene)
}

func touch(g *engine.Game) {
	pt := []input.Touch{{X: 40, Y: 12}}
	g.Runtime().Input.Dispatch(input.TouchEvent{Phase: input.PhaseStart, Touches: pt, ChangedTouches: pt})
	g.Runtime().Input.Dispatch(input.TouchEvent{Phase: input.PhaseEnd, ChangedTouches: pt})
}

func TestFlappyRegistered(t *testing.T) {
	d, err := registry.Get(ID)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", ID, err)
	}
	if d.Params.Int("attempt", 0) != 1 {
		t.Errorf("default params = %v, expected attempt 1", d.Params)
	}
}

func TestBirdFallsAndFlaps(t *testing.T) {
	g, sched, clock := startGame(t, nil)
	s := current(g)
	start := s.Bird().Y()

	sched.Run(clock, frameTime, 3)
	if s.Bird().Y() <= start {
		t.Errorf("Y() = %v, expected the bird to fall below %v", s.Bird().Y(), start)
	}

	touch(g)
	if v := s.Bird().Velocity(); v != config.DefaultFlappyConfig().Physics.JumpImpulse {
		t.Errorf("Velocity() after flap = %v, expected the jump impulse", v)
	}

	before := s.Bird().Y()
	sched.Run(clock, frameTime, 1)
	if s.Bird().Y() >= before {
		t.Errorf("Y() = %v, expected the bird to rise above %v", s.Bird().Y(), before)
	}
}

func TestPhysicsScalesWithFrameTime(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	slow := NewBird(cfg, 5)
	fast := NewBird(cfg, 5)

	for range 60 {
		fast.Update(time.Second / 60)
	}
	for range 30 {
		slow.Update(time.Second / 30)
	}

	if diff := fast.Y() - slow.Y(); diff > 3 || diff < -3 {
		t.Errorf("Y() at 60fps = %v, at 30fps = %v, expected close positions", fast.Y(), slow.Y())
	}
}

func TestCrashReportsAndRestarts(t *testing.T) {
	g, sched, clock := startGame(t, engine.Params{"best": 7})

	var overs []int
	g.Runtime().Bus.Subscribe(demos.EventGameOver, func(args ...any) {
		if s, ok := demos.ScoreOf(args); ok {
			overs = append(overs, s)
		}
	})

	first := current(g)
	sched.Run(clock, frameTime, 120)

	if !first.IsOver() {
		t.Fatal("a bird that never flaps should hit the ground")
	}
	if len(overs) != 1 || overs[0] != 0 {
		t.Errorf("game over scores = %v, expected [0]", overs)
	}
	if bottom := first.Bird().Rect().Bottom(); bottom != 23 {
		t.Errorf("bird bottom = %v, expected to rest on the ground at 23", bottom)
	}

	y := first.Bird().Y()
	sched.Run(clock, frameTime, 10)
	if first.Bird().Y() != y {
		t.Error("the bird should not move after the crash")
	}

	touch(g)
	sched.Run(clock, frameTime, 1)

	next := current(g)
	if next == first {
		t.Fatal("a tap after the crash should switch to a new run")
	}
	if next.Attempt() != 2 || next.Best() != 7 {
		t.Errorf("next run attempt/best = %d/%d, expected 2/7", next.Attempt(), next.Best())
	}
	if len(overs) != 1 {
		t.Errorf("game over emitted %d times, expected once per run", len(overs))
	}
}

func TestPauseFreezesTheRun(t *testing.T) {
	g, sched, clock := startGame(t, nil)
	s := current(g)

	g.Runtime().Input.DispatchAction(core.ActionPause)
	if !s.IsPaused() || !g.Runtime().Input.IsBlocked() {
		t.Fatal("pause should block touches")
	}

	y := s.Bird().Y()
	touch(g)
	sched.Run(clock, frameTime, 30)
	if s.Bird().Y() != y || s.Bird().Velocity() != 0 {
		t.Error("the bird should not move or flap while paused")
	}

	g.Runtime().Input.DispatchAction(core.ActionPause)
	sched.Run(clock, frameTime, 2)
	if s.Bird().Y() == y {
		t.Error("the bird should fall again after resuming")
	}
}

func TestQuitMidRunReportsScore(t *testing.T) {
	g, sched, clock := startGame(t, nil)

	var overs []int
	g.Runtime().Bus.Subscribe(demos.EventGameOver, func(args ...any) {
		if s, ok := demos.ScoreOf(args); ok {
			overs = append(overs, s)
		}
	})

	sched.Run(clock, frameTime, 5)
	g.Close()

	if len(overs) != 1 {
		t.Errorf("game over emitted %d times on close, expected 1", len(overs))
	}
}

func newTestField(t *testing.T) *PipeField {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = false
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewPipeField(&cfg, diff, rand.New(rand.NewSource(1)), 80, 23, 4)
}

func TestPipeFieldScoresAndRecycles(t *testing.T) {
	f := newTestField(t)

	passed := 0
	for range 600 {
		passed += f.Advance(time.Second/60, 10, 0, 0)
	}

	if passed < 3 {
		t.Errorf("passed = %d, expected at least 3 pipes in 10s", passed)
	}
	if f.Count() < 1 || f.Count() > 3 {
		t.Errorf("Count() = %d, expected between 1 and 3 pipes on screen", f.Count())
	}
	if f.Allocated() != 4 {
		t.Errorf("Allocated() = %d, expected the 4 preallocated pipes to be reused", f.Allocated())
	}
}

func TestPipeFieldPreallocates(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)

	tests := []struct {
		initial  int
		expected int
	}{
		{4, 4},
		{0, 0},
		{-2, 0},
	}
	for _, tt := range tests {
		f := NewPipeField(&cfg, diff, rand.New(rand.NewSource(1)), 80, 23, tt.initial)
		if f.Allocated() != tt.expected || f.Count() != 0 {
			t.Errorf("NewPipeField(%d) Allocated()/Count() = %d/%d, expected %d/0",
				tt.initial, f.Allocated(), f.Count(), tt.expected)
		}
	}
}

func TestPipeFieldCollision(t *testing.T) {
	f := newTestField(t)
	f.Advance(0, 10, 0, 0)

	p := f.pipes.ActiveObjects()[0]
	p.x = 10

	tests := []struct {
		name     string
		rect     core.Rect
		expected bool
	}{
		{"inside the gap", core.NewRect(11, float64(p.gapY), 2, 2), false},
		{"top pipe", core.NewRect(11, float64(p.gapY)-1, 2, 2), true},
		{"bottom pipe", core.NewRect(11, float64(p.gapY+p.gapHeight)-1, 2, 2), true},
		{"before the pipe", core.NewRect(7, 0, 2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Collides(tt.rect); got != tt.expected {
				t.Errorf("Collides(%+v) = %v, expected %v", tt.rect, got, tt.expected)
			}
		})
	}
}
