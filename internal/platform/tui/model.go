package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/demos"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/logging"
	"github.com/vovakirdan/minigame/internal/registry"
	"github.com/vovakirdan/minigame/internal/storage"
)

// statusLines is the number of terminal rows below the scene.
const statusLines = 1

// Time scale bounds for the [ and ] keys.
const (
	minTimeScale = 0.125
	maxTimeScale = 8
)

const noticeDuration = 3 * time.Second

// DefaultScreenshotDir is where ctrl+s writes screen dumps.
const DefaultScreenshotDir = "~/.minigame/screenshots"

// ConfigMsg carries a reloaded config into the program.
type ConfigMsg struct {
	Config config.Config
}

// Options configures a Model.
type Options struct {
	Demo   registry.Demo
	Config *config.Config // nil uses config.Default()
	Store  *storage.Store // nil disables persistence
	Logger *log.Logger
	Clock  engine.Clock // nil uses the system clock
	Player string
	Seed   int64

	Width, Height int // initial terminal size

	ScreenshotDir string
}

// Model hosts one running demo: it owns the Runtime, drives the engine
// loop from FrameMsg and turns terminal input into touches and actions.
type Model struct {
	opts  Options
	cfg   *config.Config
	store *storage.Store

	rt     *engine.Runtime
	game   *engine.Game
	sched  *FrameScheduler
	touch  *TouchSource
	screen *core.Screen

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int

	score   int
	best    int
	runBest int

	notice      string
	noticeUntil time.Time

	finished bool
	err      error
	onExit   tea.Cmd
}

// NewModel builds the runtime for opts.Demo. The game starts in Init.
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		c := config.Default()
		cfg = &c
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 80, 24
	}
	sceneH := max(h-statusLines, 1)

	rt := engine.NewRuntime(cfg.Runtime(w, sceneH, opts.Seed), opts.Logger.With("demo", opts.Demo.ID))
	rt.Adapter.SetSafeInsets(cfg.Design.SafeArea.Insets())
	if cfg.Time.Scale > 0 {
		rt.Time.SetTimeScale(cfg.Time.Scale)
	}

	sched := NewFrameScheduler(cfg.FPS)
	m := &Model{
		opts:   opts,
		cfg:    cfg,
		store:  opts.Store,
		rt:     rt,
		game:   engine.NewGame(rt, sched, opts.Clock),
		sched:  sched,
		touch:  &TouchSource{},
		screen: core.NewScreen(w, sceneH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  w,
	}
	m.best = m.highScore()

	rt.Bus.Subscribe(demos.EventScore, func(args ...any) {
		if s, ok := demos.ScoreOf(args); ok {
			m.score = s
		}
	})
	rt.Bus.Subscribe(demos.EventGameOver, m.onGameOver)
	rt.Bus.Subscribe(engine.EventSceneEnter, func(...any) { m.score = 0 })

	return m
}

func (m *Model) highScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.opts.Demo.ID)
	if err != nil {
		m.rt.Logger.Warn("cannot read high score", "err", err)
		return 0
	}
	return best
}

// onGameOver persists the final score of a run.
func (m *Model) onGameOver(args ...any) {
	score, ok := demos.ScoreOf(args)
	if !ok {
		return
	}
	m.score = score
	m.runBest = max(m.runBest, score)
	m.best = max(m.best, score)

	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.opts.Demo.ID, m.opts.Player, score); err != nil {
		m.rt.Logger.Warn("cannot save score", "err", err)
		return
	}
	logging.Important(m.rt.Logger, "score saved", "player", m.opts.Player, "score", score)
}

// Init starts the game and the frame ticker.
func (m *Model) Init() tea.Cmd {
	factory, params := m.opts.Demo.Start(m.cfg)
	if _, set := params["best"]; !set && m.best > 0 {
		params["best"] = m.best
	}

	if err := m.game.Start(factory, params, m.touch); err != nil {
		m.err = fmt.Errorf("tui: cannot start %s: %w", m.opts.Demo.ID, err)
		m.finished = true
		return m.exit()
	}
	return m.sched.Tick()
}

// Update handles messages and advances the loop on FrameMsg.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if m.finished {
			return m, nil
		}
		if m.sched.Flush() {
			return m, m.sched.Tick()
		}
		// The loop saw the stop and did not ask for another frame.
		m.finish()
		return m, m.exit()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.finished {
			m.touch.HandleMouse(msg, m.stageTapper(), m.rt.Adapter)
		}
		return m, nil

	case tea.BlurMsg:
		m.touch.Cancel()
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Stop only; the program exits once the loop has observed it.
		m.game.Stop()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.setTimeScale(m.rt.Time.TimeScale() / 2)
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		m.setTimeScale(m.rt.Time.TimeScale() * 2)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone && !m.finished {
		m.rt.Input.DispatchAction(a)
	}
	return m, nil
}

func (m *Model) setTimeScale(scale float64) {
	scale = core.ClampF(scale, minTimeScale, maxTimeScale)
	m.rt.Time.SetTimeScale(scale)
	m.setNotice(fmt.Sprintf("speed x%.3g", scale))
	m.rt.Logger.Debug("time scale changed", "scale", scale)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeUntil = time.Now().Add(noticeDuration)
}

func (m *Model) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	sceneH := max(h-statusLines, 1)
	m.width = w
	m.screen.Resize(w, sceneH)
	m.rt.Adapter.Resize(float64(w), float64(sceneH))
	m.help.Width = w
}

// applyConfig takes the settings that can change while running.
func (m *Model) applyConfig(cfg config.Config) {
	if cfg.Time.Scale > 0 {
		m.rt.Time.SetTimeScale(cfg.Time.Scale)
	}
	logging.SetLevel(m.rt.Logger, cfg.Log.Level)
	m.rt.Adapter.SetSafeInsets(cfg.Design.SafeArea.Insets())
	m.sched.SetFPS(cfg.FPS)
	m.setNotice("config reloaded")
	m.rt.Logger.Info("config reloaded", "scale", cfg.Time.Scale, "level", cfg.Log.Level, "fps", cfg.FPS)
}

// finish exits the current scene and records the session once.
func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true

	finalScene := ""
	if s := m.game.SceneManager().Current(); s != nil {
		finalScene = s.Base().Name()
	}
	frames := m.game.Frames()
	total, gameTime := m.rt.Time.TotalTime(), m.rt.Time.GameTime()

	// Close emits the last game:over, so the score is saved before the session.
	m.game.Close()
	m.touch.Cancel()

	if m.store == nil {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		DemoID:     m.opts.Demo.ID,
		Player:     m.opts.Player,
		Frames:     frames,
		TotalTime:  total,
		GameTime:   gameTime,
		BestScore:  m.runBest,
		FinalScene: finalScene,
	})
	if err != nil {
		m.rt.Logger.Warn("cannot save session", "err", err)
	}
}

func (m *Model) exit() tea.Cmd {
	if m.onExit != nil {
		return m.onExit
	}
	return tea.Quit
}

// stage returns the current scene's root node, or nil between scenes.
func (m *Model) stage() engine.Container {
	s := m.game.SceneManager().Current()
	if s == nil {
		return nil
	}
	return s.Base().Stage()
}

func (m *Model) stageTapper() tapper {
	if t, ok := m.stage().(tapper); ok {
		return t
	}
	return nil
}

// draw renders the current scene into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	if r, ok := m.stage().(engine.Renderer); ok {
		r.Render(m.screen, m.rt.Adapter)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := config.ExpandHome(m.opts.ScreenshotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.rt.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.opts.Demo.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.rt.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.setNotice("saved " + name)
	m.rt.Logger.Info("screenshot saved", "path", path)
}

// View renders the scene and the status bar.
func (m *Model) View() string {
	if m.finished {
		return ""
	}

	m.draw()

	if m.showHelp {
		return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	if time.Now().After(m.noticeUntil) {
		m.notice = ""
	}
	sceneName := ""
	if s := m.game.SceneManager().Current(); s != nil {
		sceneName = s.Base().Name()
	}
	return RenderScreen(m.screen) + "\n" + renderStatus(status{
		title:     m.opts.Demo.Title,
		scene:     sceneName,
		score:     m.score,
		best:      max(m.best, m.score),
		timeScale: m.rt.Time.TimeScale(),
		paused:    m.rt.Time.IsPaused(),
		notice:    m.notice,
	}, m.width)
}

// Runtime returns the services of the hosted game.
func (m *Model) Runtime() *engine.Runtime { return m.rt }

// Game returns the hosted game.
func (m *Model) Game() *engine.Game { return m.game }

// Score returns the last score the demo reported.
func (m *Model) Score() int { return m.score }

// Best returns the best known score for the demo.
func (m *Model) Best() int { return max(m.best, m.score) }

// Finished reports whether the game has been closed.
func (m *Model) Finished() bool { return m.finished }

// Err returns the error that ended the model, if any.
func (m *Model) Err() error { return m.err }

// RunOptions adds program-level settings to Options.
type RunOptions struct {
	Options
	// WatchPath, when set, is reloaded on change and applied live.
	WatchPath string
}

// Run plays one demo in the terminal until the user quits.
func Run(ctx context.Context, opts RunOptions) error {
	m := NewModel(opts.Options)

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
	p := tea.NewProgram(m, progOpts...)

	if opts.WatchPath != "" {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := config.Watch(watchCtx, opts.WatchPath,
				func(cfg config.Config) { p.Send(ConfigMsg{Config: cfg}) },
				func(err error) { m.rt.Logger.Warn("config reload failed", "err", err) },
			)
			if err != nil {
				m.rt.Logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	_, err := p.Run()
	if err != nil {
		// Interrupted programs still record their session.
		m.finish()
		return err
	}
	return m.Err()
}
