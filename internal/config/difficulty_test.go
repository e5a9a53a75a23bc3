package config

import (
	"testing"
	"time"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 50},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{25, 0.6},
		{50, 1.0},
		{500, 1.0},
	}

	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got < tt.expected-1e-9 || got > tt.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})

	if got := d.Level(0, 30*time.Second); got != 0.5 {
		t.Errorf("Level(30s) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := d.Level(100, time.Hour); got != 0.4 {
		t.Errorf("Level() = %v, expected the initial level 0.4", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling: ScalingConfig{
			SpeedMultiplier:  1.0,
			GapReduction:     20,
			SpacingReduction: 100,
		},
	})

	if got := d.Speed(0.8, 10, 0); got != 1.6 {
		t.Errorf("Speed() at max = %v, expected 1.6", got)
	}
	if got := d.GapSize(12, 10, 0); got != minGap {
		t.Errorf("GapSize() = %d, expected the floor %d", got, minGap)
	}
	if got := d.Spacing(40, 10, 0); got != minSpacing {
		t.Errorf("Spacing() = %d, expected the floor %d", got, minSpacing)
	}
	if got := d.GapSize(12, 0, 0); got != 12 {
		t.Errorf("GapSize() at level 0 = %d, expected 12", got)
	}
}
