// Package config provides YAML/TOML configuration loading, live reload and
// difficulty management for the minigame host and its demos.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/minigame/internal/core"
)

// Config is the whole runtime configuration.
type Config struct {
	FPS      int            `yaml:"fps" toml:"fps"`
	Design   DesignConfig   `yaml:"design" toml:"design"`
	Time     TimeConfig     `yaml:"time" toml:"time"`
	Log      LogConfig      `yaml:"log" toml:"log"`
	Storage  StorageConfig  `yaml:"storage" toml:"storage"`
	Pools    PoolsConfig    `yaml:"pools" toml:"pools"`
	Showcase ShowcaseConfig `yaml:"showcase" toml:"showcase"`
	Flappy   FlappyConfig   `yaml:"flappy" toml:"flappy"`
}

// DesignConfig defines the resolution scenes are laid out in.
type DesignConfig struct {
	Width    float64        `yaml:"width" toml:"width"`
	Height   float64        `yaml:"height" toml:"height"`
	SafeArea SafeAreaConfig `yaml:"safe_area" toml:"safe_area"`
}

// SafeAreaConfig reserves screen edges, in cells.
type SafeAreaConfig struct {
	Top    float64 `yaml:"top" toml:"top"`
	Right  float64 `yaml:"right" toml:"right"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Left   float64 `yaml:"left" toml:"left"`
}

// Insets converts the safe area to adapter insets.
func (s SafeAreaConfig) Insets() core.Insets {
	return core.Insets{Top: s.Top, Right: s.Right, Bottom: s.Bottom, Left: s.Left}
}

// TimeConfig controls the game clock.
type TimeConfig struct {
	Scale float64 `yaml:"scale" toml:"scale"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, important, warn, error
	File  string `yaml:"file" toml:"file"`   // used while the TUI owns the terminal
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// PoolsConfig sets the initial size of object pools.
type PoolsConfig struct {
	Pipes int `yaml:"pipes" toml:"pipes"`
	Stars int `yaml:"stars" toml:"stars"`
}

// ShowcaseConfig tunes the showcase demo.
type ShowcaseConfig struct {
	LoadingDelayMS int     `yaml:"loading_delay_ms" toml:"loading_delay_ms"`
	PlayerSpin     float64 `yaml:"player_spin" toml:"player_spin"`     // radians per second
	ScorePerTap    int     `yaml:"score_per_tap" toml:"score_per_tap"` // points per background tap
	TriangleSpin   float64 `yaml:"triangle_spin" toml:"triangle_spin"` // base radians per second
	TriangleBoost  float64 `yaml:"triangle_boost" toml:"triangle_boost"`
}

// FlappyConfig contains all configuration for the Flappy demo.
// Physics values are per 1/60 s step and scale with frame time.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed" toml:"base_speed"`
}

// FlappyObstacles defines pipe parameters for Flappy.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width" toml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing" toml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size" toml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size" toml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin" toml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"`
}

// FlappyPlayer defines the bird's placement and hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x" toml:"x"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`   // added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction" toml:"gap_reduction"`         // gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction" toml:"spacing_reduction"` // spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: %w: unknown difficulty %q (use easy, normal, hard or fixed)", core.ErrInvalidArgument, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Runtime converts the config to engine runtime settings for a screen.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		DesignW:  c.Design.Width,
		DesignH:  c.Design.Height,
		TickRate: c.FPS,
		Seed:     seed,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps must be within 1..240, got %d", c.FPS))
	}
	if c.Design.Width <= 0 || c.Design.Height <= 0 {
		errs = append(errs, fmt.Errorf("design size must be positive, got %vx%v", c.Design.Width, c.Design.Height))
	}
	if c.Time.Scale < 0 {
		errs = append(errs, fmt.Errorf("time.scale must not be negative, got %v", c.Time.Scale))
	}
	if c.Pools.Pipes < 0 || c.Pools.Stars < 0 {
		errs = append(errs, errors.New("pool sizes must not be negative"))
	}
	if c.Flappy.Obstacles.MinGapSize > c.Flappy.Obstacles.MaxGapSize {
		errs = append(errs, errors.New("flappy.obstacles.min_gap_size exceeds max_gap_size"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", core.ErrInvalidArgument, errors.Join(errs...))
	}
	return nil
}
