// Package headless runs a demo without a terminal: a manual scheduler and
// clock drive a fixed number of frames, for smoke runs and benchmarks.
package headless

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/registry"
	"github.com/vovakirdan/minigame/internal/storage"
)

// Options configures a headless run.
type Options struct {
	Frames    int           // frames to run, including the first
	FrameTime time.Duration // clock advance per frame; 0 uses 1/fps
	Width     int
	Height    int
	Seed      int64
	Logger    *log.Logger
	Store     *storage.Store // nil skips persistence
	Player    string
}

// Result summarizes a headless run.
type Result struct {
	Frames     int
	TotalTime  time.Duration
	GameTime   time.Duration
	FinalScene string
	LastScore  int   // last game:score value
	GameOvers  []int // every game:over score, in order
}

// Best returns the highest game:over score, or 0.
func (r Result) Best() int {
	best := 0
	for _, s := range r.GameOvers {
		best = max(best, s)
	}
	return best
}

// Run plays demo for opts.Frames frames and closes it.
func Run(demo registry.Demo, cfg *config.Config, opts Options) (Result, error) {
	var res Result
	if opts.Frames < 1 {
		return res, fmt.Errorf("headless: frames must be positive, got %d", opts.Frames)
	}
	if opts.FrameTime <= 0 {
		opts.FrameTime = time.Second / time.Duration(max(cfg.FPS, 1))
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = int(cfg.Design.Width), int(cfg.Design.Height)
	}
	if opts.Player == "" {
		opts.Player = "headless"
	}

	rt := engine.NewRuntime(cfg.Runtime(opts.Width, opts.Height, opts.Seed), opts.Logger)
	if cfg.Time.Scale > 0 {
		rt.Time.SetTimeScale(cfg.Time.Scale)
	}

	rt.Bus.Subscribe(demos.EventScore, func(args ...any) {
		if s, ok := demos.ScoreOf(args); ok {
			res.LastScore = s
		}
	})
	rt.Bus.Subscribe(demos.EventGameOver, func(args ...any) {
		s, ok := demos.ScoreOf(args)
		if !ok {
			return
		}
		res.GameOvers = append(res.GameOvers, s)
		if opts.Store != nil && s > 0 {
			if _, err := opts.Store.SaveScore(demo.ID, opts.Player, s); err != nil {
				rt.Logger.Warn("cannot save score", "err", err)
			}
		}
	})

	sched := &engine.ManualScheduler{}
	clock := engine.NewManualClock(time.Now())
	g := engine.NewGame(rt, sched, clock)

	factory, params := demo.Start(cfg)
	if err := g.Start(factory, params, nil); err != nil {
		return res, fmt.Errorf("headless: cannot start %s: %w", demo.ID, err)
	}

	// Start ran the first frame.
	sched.Run(clock, opts.FrameTime, opts.Frames-1)

	res.Frames = g.Frames()
	res.TotalTime = rt.Time.TotalTime()
	res.GameTime = rt.Time.GameTime()
	if s := g.SceneManager().Current(); s != nil {
		res.FinalScene = s.Base().Name()
	}

	g.Close()

	if opts.Store != nil {
		_, err := opts.Store.SaveSession(storage.Session{
			DemoID:     demo.ID,
			Player:     opts.Player,
			Frames:     res.Frames,
			TotalTime:  res.TotalTime,
			GameTime:   res.GameTime,
			BestScore:  res.Best(),
			FinalScene: res.FinalScene,
		})
		if err != nil {
			return res, fmt.Errorf("headless: cannot save session: %w", err)
		}
	}
	return res, nil
}
