package timing

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func TestUpdate(t *testing.T) {
	m := NewManager()
	m.Update(frame)
	m.Update(frame)

	if m.DeltaTime() != frame {
		t.Errorf("DeltaTime() = %v, expected %v", m.DeltaTime(), frame)
	}
	if m.TotalTime() != 2*frame {
		t.Errorf("TotalTime() = %v, expected %v", m.TotalTime(), 2*frame)
	}
	if m.GameTime() != 2*frame {
		t.Errorf("GameTime() = %v, expected %v", m.GameTime(), 2*frame)
	}
}

func TestUpdatePaused(t *testing.T) {
	m := NewManager()
	m.Update(frame)
	m.Pause()

	for i := 0; i < 5; i++ {
		m.Update(frame)
		if m.DeltaTime() != 0 {
			t.Fatalf("DeltaTime() while paused = %v, expected 0", m.DeltaTime())
		}
	}

	if m.GameTime() != frame {
		t.Errorf("GameTime() = %v, expected %v", m.GameTime(), frame)
	}
	if m.TotalTime() != 6*frame {
		t.Errorf("TotalTime() = %v, expected %v", m.TotalTime(), 6*frame)
	}

	m.Resume()
	m.Update(frame)
	if m.GameTime() != 2*frame {
		t.Errorf("GameTime() after Resume = %v, expected %v", m.GameTime(), 2*frame)
	}
}

func TestTimeScale(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		stored   float64
		expected time.Duration
	}{
		{"normal", 1, 1, 16 * time.Millisecond},
		{"double", 2, 2, 32 * time.Millisecond},
		{"half", 0.5, 0.5, 8 * time.Millisecond},
		{"frozen", 0, 0, 0},
		{"negative clamps", -5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.SetTimeScale(tt.scale)
			if m.TimeScale() != tt.stored {
				t.Errorf("TimeScale() = %v, expected %v", m.TimeScale(), tt.stored)
			}
			m.Update(frame)
			if m.DeltaTime() != tt.expected {
				t.Errorf("DeltaTime() = %v, expected %v", m.DeltaTime(), tt.expected)
			}
			if m.TotalTime() != frame {
				t.Errorf("TotalTime() = %v, expected %v", m.TotalTime(), frame)
			}
		})
	}
}

func TestTogglePause(t *testing.T) {
	m := NewManager()

	if !m.TogglePause() || !m.IsPaused() {
		t.Error("First TogglePause() should pause")
	}
	if m.TogglePause() || m.IsPaused() {
		t.Error("Second TogglePause() should resume")
	}
}

func TestReset(t *testing.T) {
	m := NewManager()
	m.SetTimeScale(3)
	m.Update(frame)
	m.Pause()

	m.Reset()

	if m.TimeScale() != 1 || m.IsPaused() {
		t.Errorf("Reset() left scale=%v paused=%v, expected 1 false", m.TimeScale(), m.IsPaused())
	}
	if m.DeltaTime() != 0 || m.TotalTime() != 0 || m.GameTime() != 0 {
		t.Error("Reset() should zero all times")
	}
}
