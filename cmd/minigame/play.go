package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/platform/headless"
	"github.com/vovakirdan/minigame/internal/platform/tui"
	"github.com/vovakirdan/minigame/internal/registry"
)

var (
	flagDifficulty string
	flagHeadless   bool
	flagFrames     int
	flagFrameTime  time.Duration
	flagWatch      bool
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Play a demo",
	Long: `Start playing the specified demo.

Controls:
  Mouse click      - Touch
  Space/Enter      - Confirm (flap)
  Arrows/WASD/hjkl - Move
  P                - Pause
  R                - Restart (after game over)
  [ / ]            - Slow down / speed up time
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options (flappy):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  minigame play showcase
  minigame play flappy --difficulty hard
  minigame play flappy --config ./my.yaml --watch
  minigame play flappy --headless --frames 600`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal and print a summary")
	playCmd.Flags().IntVar(&flagFrames, "frames", 600, "Frames to run in headless mode")
	playCmd.Flags().DurationVar(&flagFrameTime, "frame-time", 0, "Clock step per headless frame (default 1/fps)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the scoreboard (default: current user)")
}

func runPlay(_ *cobra.Command, args []string) error {
	demo, err := registry.Get(args[0])
	if err != nil {
		return unknownDemo(err)
	}

	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return presetErr
		}
		config.ApplyFlappyPreset(&cfg.Flappy, preset)
	}

	player := flagPlayer
	if player == "" {
		player = playerName()
	}

	if flagHeadless {
		return runHeadless(demo, &cfg, player)
	}

	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()

	watchPath := ""
	if flagWatch {
		if cfgPath == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; none was found")
		}
		watchPath = cfgPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Run(ctx, tui.RunOptions{
		Options: tui.Options{
			Demo:   demo,
			Config: &cfg,
			Store:  store,
			Logger: logger,
			Player: player,
			Seed:   flagSeed,
			Width:  width,
			Height: height,
		},
		WatchPath: watchPath,
	})
	if runErr != nil {
		return fmt.Errorf("running demo: %w", runErr)
	}
	return nil
}

func runHeadless(demo registry.Demo, cfg *config.Config, player string) error {
	logger, closer := newLogger(*cfg, false)
	defer closer.Close()

	store := openStore(*cfg, logger)
	if store != nil {
		defer store.Close()
	}

	start := time.Now()
	res, err := headless.Run(demo, cfg, headless.Options{
		Frames:    flagFrames,
		FrameTime: flagFrameTime,
		Seed:      flagSeed,
		Logger:    logger,
		Store:     store,
		Player:    player,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s frames in %v (game time %v, wall %v)\n",
		demo.Title, humanize.Comma(int64(res.Frames)), res.TotalTime, res.GameTime,
		time.Since(start).Round(time.Millisecond))
	fmt.Printf("  final scene: %s\n", res.FinalScene)
	fmt.Printf("  games over:  %d (best %d)\n", len(res.GameOvers), res.Best())
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
