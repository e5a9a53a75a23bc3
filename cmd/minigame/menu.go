package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start minigame with a demo picker",
	Long: `Start minigame in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo.
After a demo ends, you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select demo
  Tab          - Scoreboard
  Q            - Quit

Examples:
  minigame menu
  minigame menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer := newLogger(cfg, true)
	defer closer.Close()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.RunSession(ctx, tui.SessionOptions{
		Config: &cfg,
		Store:  store,
		Logger: logger,
		Player: playerName(),
		Seed:   flagSeed,
		Width:  width,
		Height: height,
	})
}
