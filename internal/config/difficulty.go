package config

import (
	"time"

	"github.com/vovakirdan/minigame/internal/core"
)

// Minimum playable values, in design units.
const (
	minGap     = 4
	minSpacing = 15
)

// DifficultyManager calculates dynamic game parameters from score or
// elapsed game time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0, 1)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0). Score progression uses
// score; time progression uses elapsed game time in seconds.
func (d *DifficultyManager) Level(score int, elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0, 1)
	return core.Lerp(d.initialLevel, 1, progress)
}

// Speed scales baseSpeed up to base * (1 + speed_multiplier) at max level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed time.Duration) float64 {
	level := d.Level(score, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks baseGap by up to gap_reduction, never below a playable gap.
func (d *DifficultyManager) GapSize(baseGap int, score int, elapsed time.Duration) int {
	level := d.Level(score, elapsed)
	reduction := int(level * float64(d.cfg.Scaling.GapReduction))
	return max(baseGap-reduction, minGap)
}

// Spacing shrinks baseSpacing by up to spacing_reduction, never below a
// playable distance.
func (d *DifficultyManager) Spacing(baseSpacing int, score int, elapsed time.Duration) int {
	level := d.Level(score, elapsed)
	reduction := int(level * float64(d.cfg.Scaling.SpacingReduction))
	return max(baseSpacing-reduction, minSpacing)
}
