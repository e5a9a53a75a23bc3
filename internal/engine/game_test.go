package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
)

const frameTime = 16 * time.Millisecond

func newTestGame() (*Game, *ManualScheduler, *ManualClock) {
	sched := &ManualScheduler{}
	clock := NewManualClock(time.Unix(0, 0))
	return NewGame(newTestRuntime(), sched, clock), sched, clock
}

func TestSceneManagerStartTwice(t *testing.T) {
	var log []string
	rt := newTestRuntime()
	m := NewSceneManager(rt)
	factory, _ := newTestSceneFactory("a", &log, nil)

	if err := m.Start(factory, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Start(factory, nil); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("second Start() error = %v, expected ErrIllegalState", err)
	}
}

func TestSceneManagerLastRequestWins(t *testing.T) {
	var log []string
	rt := newTestRuntime()
	m := NewSceneManager(rt)
	first, _ := newTestSceneFactory("a", &log, nil)
	_ = m.Start(first, nil)

	b, builtB := newTestSceneFactory("b", &log, nil)
	c, builtC := newTestSceneFactory("c", &log, nil)
	m.Current().Base().SwitchTo(b, Params{"n": 1})
	m.Current().Base().SwitchTo(c, Params{"n": 2})

	if !m.HasPending() {
		t.Fatal("HasPending() = false, expected true")
	}
	m.PerformSwitch()

	if len(*builtB) != 0 {
		t.Error("The earlier request should be dropped")
	}
	if len(*builtC) != 1 || (*builtC)[0].params.Int("n", 0) != 2 {
		t.Errorf("Expected scene c entered with n=2")
	}
	if m.HasPending() {
		t.Error("PerformSwitch should consume the pending request")
	}
}

func TestPerformSwitchWithoutPending(t *testing.T) {
	var log []string
	rt := newTestRuntime()
	m := NewSceneManager(rt)
	factory, built := newTestSceneFactory("a", &log, nil)
	_ = m.Start(factory, nil)

	m.PerformSwitch()

	if m.Current() != Scene((*built)[0]) {
		t.Error("PerformSwitch without a request should keep the current scene")
	}
}

func TestGameSwitchEndToEnd(t *testing.T) {
	var log []string
	g, sched, clock := newTestGame()

	bFactory, builtB := newTestSceneFactory("b", &log, nil)
	aFactory, builtA := newTestSceneFactory("a", &log, func(s *testScene) {
		if s.updates == 3 {
			s.SwitchTo(bFactory, Params{"level": 1})
		}
	})

	if err := g.Start(aFactory, nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sched.Run(clock, frameTime, 5)

	exitA := indexOf(log, "a.cleanup")
	enterB := indexOf(log, "b.enter")
	if exitA < 0 || enterB < 0 || exitA > enterB {
		t.Fatalf("expected a to exit before b enters, log = %v", log)
	}

	a := (*builtA)[0]
	if a.updates != 3 {
		t.Errorf("a updated %d times, expected 3 (never after the switch)", a.updates)
	}
	for _, e := range log[enterB:] {
		if e == "a.update" {
			t.Errorf("a updated after b entered: %v", log)
		}
	}

	b := (*builtB)[0]
	if len(b.params) != 1 || b.params.Int("level", 0) != 1 {
		t.Errorf("b.Enter params = %v, expected exactly {level:1}", b.params)
	}
	if g.SceneManager().Current() != Scene(b) {
		t.Error("Current() should be scene b")
	}
}

func TestGameFrameOrder(t *testing.T) {
	var log []string
	g, sched, clock := newTestGame()
	bFactory, _ := newTestSceneFactory("b", &log, nil)
	aFactory, _ := newTestSceneFactory("a", &log, func(s *testScene) {
		s.SwitchTo(bFactory, nil)
	})

	_ = g.Start(aFactory, nil, nil)
	log = nil
	sched.Run(clock, frameTime, 1)

	// The switch requested in frame 1 is applied before the update in frame 2
	expected := []string{"a.cleanup", "a.stage.destroy", "b.enter", "b.update"}
	for i, e := range expected {
		if i >= len(log) || log[i] != e {
			t.Fatalf("frame log = %v, expected prefix %v", log, expected)
		}
	}
}

func TestGameStartTwice(t *testing.T) {
	var log []string
	g, _, _ := newTestGame()
	factory, _ := newTestSceneFactory("a", &log, nil)

	if err := g.Start(factory, nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := g.Start(factory, nil, nil); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("second Start() error = %v, expected ErrIllegalState", err)
	}
}

func TestGameRestartAfterClose(t *testing.T) {
	var log []string
	g, sched, clock := newTestGame()
	aFactory, builtA := newTestSceneFactory("a", &log, nil)
	bFactory, builtB := newTestSceneFactory("b", &log, nil)

	if err := g.Start(aFactory, nil, nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sched.Run(clock, frameTime, 2)
	g.Close()

	if err := g.Start(aFactory, nil, nil); err != nil {
		t.Fatalf("Start() after Close() error = %v", err)
	}
	if len(*builtA) != 2 {
		t.Fatalf("built %d a scenes, expected 2", len(*builtA))
	}

	(*builtA)[1].SwitchTo(bFactory, nil)
	sched.Run(clock, frameTime, 3)

	if len(*builtB) != 1 {
		t.Fatalf("built %d b scenes, expected 1 (switch after restart was dropped)", len(*builtB))
	}
	if g.SceneManager().Current() != Scene((*builtB)[0]) {
		t.Error("Current() should be scene b")
	}
	if n := (*builtB)[0].updates; n != 3 {
		t.Errorf("b updated %d times, expected 3 (one loop per run)", n)
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}
}

func TestGameStopIsCooperative(t *testing.T) {
	var log []string
	g, sched, clock := newTestGame()
	factory, built := newTestSceneFactory("a", &log, nil)
	_ = g.Start(factory, nil, nil)
	sched.Run(clock, frameTime, 2)

	g.Stop()
	if g.IsRunning() {
		t.Fatal("IsRunning() = true after Stop")
	}

	// The already scheduled frame runs but does nothing and does not reschedule
	if sched.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", sched.Pending())
	}
	ran := sched.Run(clock, frameTime, 10)
	if ran != 1 {
		t.Errorf("Run() stepped %d frames, expected 1", ran)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after stop, expected 0", sched.Pending())
	}
	if (*built)[0].updates != 3 {
		t.Errorf("updates = %d, expected 3", (*built)[0].updates)
	}
}

func TestGameDeltaFollowsTimeManager(t *testing.T) {
	var log []string
	g, sched, clock := newTestGame()
	factory, _ := newTestSceneFactory("a", &log, nil)
	_ = g.Start(factory, nil, nil)
	rt := g.Runtime()

	sched.Run(clock, frameTime, 1)
	if rt.Time.DeltaTime() != frameTime {
		t.Errorf("DeltaTime() = %v, expected %v", rt.Time.DeltaTime(), frameTime)
	}

	rt.Time.Pause()
	sched.Run(clock, frameTime, 3)
	if rt.Time.DeltaTime() != 0 {
		t.Errorf("DeltaTime() while paused = %v, expected 0", rt.Time.DeltaTime())
	}
	if rt.Time.GameTime() != frameTime {
		t.Errorf("GameTime() = %v, expected %v", rt.Time.GameTime(), frameTime)
	}
	if rt.Time.TotalTime() != 4*frameTime {
		t.Errorf("TotalTime() = %v, expected %v", rt.Time.TotalTime(), 4*frameTime)
	}
	if g.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", g.Frames())
	}
}

func TestGameClose(t *testing.T) {
	var log []string
	g, _, _ := newTestGame()
	factory, built := newTestSceneFactory("a", &log, nil)
	_ = g.Start(factory, nil, nil)

	g.Close()

	if (*built)[0].IsActive() {
		t.Error("Close() should exit the current scene")
	}
	if g.SceneManager().Current() != nil {
		t.Error("Current() should be nil after Close")
	}
	if g.Runtime().Bus.ListenerCount(EventSceneSwitch) != 0 {
		t.Error("Close() should unsubscribe the scene manager")
	}
}
