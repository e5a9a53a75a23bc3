package config

import (
	_ "embed"
)

//go:embed defaults/minigame.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded configuration. It matches the embedded
// default file and is used when even that cannot be parsed.
func Default() Config {
	return Config{
		FPS: 60,
		Design: DesignConfig{
			Width:  80,
			Height: 24,
		},
		Time: TimeConfig{Scale: 1.0},
		Log: LogConfig{
			Level: "info",
			File:  "~/.minigame/minigame.log",
		},
		Storage: StorageConfig{Path: "~/.minigame/scores.db"},
		Pools: PoolsConfig{
			Pipes: 4,
			Stars: 40,
		},
		Showcase: ShowcaseConfig{
			LoadingDelayMS: 1500,
			PlayerSpin:     1.0,
			ScorePerTap:    10,
			TriangleSpin:   0.6,
			TriangleBoost:  4.0,
		},
		Flappy: DefaultFlappyConfig(),
	}
}

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			BaseSpeed:    0.8,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}
