// minigame runs small games built on a scene and game-object engine in
// the terminal.
//
// Usage:
//
//	minigame list              - List available demos
//	minigame play <demo>       - Play a demo
//	minigame menu              - Pick demos interactively
//	minigame serve             - Start SSH server for remote play
//	minigame scores [demo]     - Show high scores and play sessions
//
// Global flags:
//
//	--config <path> - Config file (YAML, or TOML by extension)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default from config: ~/.minigame/scores.db)
//	--log-level     - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/logging"
	"github.com/vovakirdan/minigame/internal/storage"

	// Import demos to register them
	_ "github.com/vovakirdan/minigame/internal/demos/flappy"
	_ "github.com/vovakirdan/minigame/internal/demos/showcase"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minigame",
	Short: "minigame - scene-based mini games in your terminal",
	Long: `minigame runs small games built on a scene and game-object engine.
Mouse clicks act as touches; the keyboard offers shortcuts on top.

Available commands:
  list     - Show all available demos
  play     - Play a specific demo directly
  menu     - Interactive demo picker
  serve    - Start SSH server for remote play
  scores   - View high scores and play sessions

Examples:
  minigame list
  minigame play showcase
  minigame play flappy --difficulty hard
  minigame play flappy --headless --frames 600
  minigame serve --ssh :2222
  minigame scores flappy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config file (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, important, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config named by --config, or the first one found
// in the search path, and applies the global flag overrides.
func loadConfig() (config.Config, string, error) {
	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, path, nil
}

// newLogger returns a logger on stderr, or on the configured log file
// while a full-screen program owns the terminal.
func newLogger(cfg config.Config, toFile bool) (*log.Logger, io.Closer) {
	opts := logging.Options{Prefix: "minigame", Level: cfg.Log.Level}
	if !toFile || cfg.Log.File == "" {
		return logging.New(os.Stderr, opts), io.NopCloser(nil)
	}

	logger, closer, err := logging.OpenFile(config.ExpandHome(cfg.Log.File), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		return logging.Discard(), io.NopCloser(nil)
	}
	return logger, closer
}

// openStore opens the scores database. A failure is reported and play
// continues without persistence.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

// unknownDemo wraps a registry lookup error with a hint.
func unknownDemo(err error) error {
	return fmt.Errorf("%w\nRun 'minigame list' to see available demos", err)
}

// playerName returns the local user name.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
