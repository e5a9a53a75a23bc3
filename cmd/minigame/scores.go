package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minigame/internal/platform/tui"
	"github.com/vovakirdan/minigame/internal/registry"
	"github.com/vovakirdan/minigame/internal/storage"
)

var (
	flagInteractive bool
	flagSessions    bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [demo]",
	Short: "Show high scores and play sessions",
	Long: `Display the top scores for a demo, or for every demo when none is given.

Examples:
  minigame scores
  minigame scores flappy
  minigame scores flappy --sessions
  minigame scores --interactive
  minigame scores flappy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagSessions, "sessions", false, "Show recent play sessions instead of scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the demo")
}

func runScores(_ *cobra.Command, args []string) error {
	var demos []registry.Demo
	if len(args) == 1 {
		d, err := registry.Get(args[0])
		if err != nil {
			return unknownDemo(err)
		}
		demos = []registry.Demo{d}
	} else {
		demos = registry.List()
	}
	if flagClear && len(args) == 0 {
		return fmt.Errorf("--clear needs a demo id")
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		startID := ""
		if len(args) == 1 {
			startID = args[0]
		}
		width, height := terminalSize()
		return tui.RunScoreboard(store, startID, width, height)
	case flagClear:
		if err := store.ClearScores(demos[0].ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", demos[0].Title)
		return nil
	}

	for _, d := range demos {
		if flagSessions {
			err = printSessions(store, d)
		} else {
			err = printScores(store, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, d registry.Demo) error {
	scores, err := store.TopScores(d.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", d.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minigame play %s' to set the first high score!\n\n", d.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "When")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10s  %s\n",
			i+1, entry.Player, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}
	fmt.Println()
	return nil
}

func printSessions(store *storage.Store, d registry.Demo) error {
	sessions, err := store.RecentSessions(d.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	stats, err := store.Stats(d.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("Sessions - %s\n", d.Title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %-10s  %s\n", "Player", "Frames", "Played", "Best", "Ended in", "When")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-10s  %-10v  %-6d  %-10s  %s\n",
			s.Player, humanize.Comma(int64(s.Frames)), s.TotalTime.Round(time.Second), s.BestScore,
			s.FinalScene, humanize.Time(s.CreatedAt))
	}
	fmt.Println()
	fmt.Printf("%s sessions, %s frames, %v played, best %d\n\n",
		humanize.Comma(int64(stats.Count)), humanize.Comma(int64(stats.Frames)),
		stats.TotalTime.Round(time.Second), stats.BestScore)
	return nil
}
