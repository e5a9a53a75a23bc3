// Package timing provides the per-frame game clock with pause and time scale.
package timing

import "time"

// Manager tracks frame timing for one running game.
//
// TotalTime always advances with real frame deltas. GameTime and DeltaTime
// follow the time scale and stop while paused.
type Manager struct {
	timeScale float64
	paused    bool

	deltaTime time.Duration
	totalTime time.Duration
	gameTime  time.Duration
}

// NewManager creates a manager with scale 1 and no elapsed time.
func NewManager() *Manager {
	m := &Manager{}
	m.Reset()
	return m
}

// Update advances the clock by one frame of raw (unscaled) duration.
func (m *Manager) Update(raw time.Duration) {
	m.totalTime += raw

	if m.paused {
		m.deltaTime = 0
		return
	}

	m.deltaTime = time.Duration(float64(raw) * m.timeScale)
	m.gameTime += m.deltaTime
}

// SetTimeScale sets the game speed multiplier. Negative values clamp to 0.
func (m *Manager) SetTimeScale(scale float64) {
	m.timeScale = max(0, scale)
}

// TimeScale returns the current speed multiplier.
func (m *Manager) TimeScale() float64 {
	return m.timeScale
}

// Pause freezes game time.
func (m *Manager) Pause() {
	m.paused = true
}

// Resume unfreezes game time.
func (m *Manager) Resume() {
	m.paused = false
}

// TogglePause flips the paused state and returns the new value.
func (m *Manager) TogglePause() bool {
	m.paused = !m.paused
	return m.paused
}

// IsPaused reports whether game time is frozen.
func (m *Manager) IsPaused() bool {
	return m.paused
}

// DeltaTime returns the scaled duration of the last frame (0 while paused).
func (m *Manager) DeltaTime() time.Duration {
	return m.deltaTime
}

// TotalTime returns the real time accumulated across all frames.
func (m *Manager) TotalTime() time.Duration {
	return m.totalTime
}

// GameTime returns the scaled time accumulated while unpaused.
func (m *Manager) GameTime() time.Duration {
	return m.gameTime
}

// Reset restores the initial state.
func (m *Manager) Reset() {
	m.timeScale = 1
	m.paused = false
	m.deltaTime = 0
	m.totalTime = 0
	m.gameTime = 0
}
