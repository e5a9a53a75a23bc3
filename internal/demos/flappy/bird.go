package flappy

import (
	"strings"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/render"
)

// Visual characters for rendering
const (
	BodyChar = '●'
	HeadUp   = '◥'
	HeadFlat = '▶'
	HeadDown = '◢'
)

// tiltDuration is how long the bird takes to nose over after a flap.
const tiltDuration = 600 * time.Millisecond

// physicsStep is the frame length the physics values are tuned for.
const physicsStep = time.Second / 60

// Bird is the player. Its physics values are per 1/60 s and scale with
// the frame delta, so speed does not depend on the frame rate.
type Bird struct {
	*engine.Object
	cfg config.FlappyConfig

	y    float64
	vel  float64
	tilt float64 // -1 nose up, 1 nose down

	tiltTween *render.Tween
	rows      []*render.Node
}

// NewBird creates an initialized bird with its top at y.
func NewBird(cfg config.FlappyConfig, y float64) *Bird {
	return engine.InitObject(&Bird{Object: &engine.Object{}, cfg: cfg, y: y})
}

func (b *Bird) Init() {
	root := render.NewContainer("bird")
	root.SetPosition(float64(b.cfg.Player.X), b.y)
	root.SetZ(10)

	w, h := max(b.cfg.Player.Width, 1), max(b.cfg.Player.Height, 1)
	for dy := range h {
		row := render.NewText("bird.row", strings.Repeat(string(BodyChar), w), core.ColorBrightYellow)
		row.SetPosition(0, float64(dy))
		root.AddChild(row)
		b.rows = append(b.rows, row)
	}

	b.SetDisplay(root)
	b.drawHead()
}

// Flap gives the bird its jump impulse and tilts it nose up.
func (b *Bird) Flap() {
	b.vel = b.cfg.Physics.JumpImpulse
	b.tiltTween = render.NewTween(-1, 1, tiltDuration, ease.InQuad, func(v float64) { b.tilt = v })
}

func (b *Bird) Update(dt time.Duration) {
	steps := dt.Seconds() / physicsStep.Seconds()

	b.vel = min(b.vel+b.cfg.Physics.Gravity*steps, b.cfg.Physics.MaxFallSpeed)
	b.y += b.vel * steps

	if b.tiltTween != nil && b.tiltTween.Update(dt) {
		b.tiltTween = nil
	}

	b.SetPosition(float64(b.cfg.Player.X), b.y, 0)
	b.drawHead()
}

func (b *Bird) drawHead() {
	if len(b.rows) == 0 {
		return
	}

	head := HeadFlat
	switch {
	case b.tilt < -0.33:
		head = HeadUp
	case b.tilt > 0.33:
		head = HeadDown
	}

	top := []rune(b.rows[0].Text)
	top[len(top)-1] = head
	b.rows[0].Text = string(top)
}

// Rect returns the bird's hitbox in design units.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(float64(b.cfg.Player.X), b.y, float64(b.cfg.Player.Width), float64(b.cfg.Player.Height))
}

// Y returns the top of the hitbox.
func (b *Bird) Y() float64 { return b.y }

// SetY moves the bird vertically, for clamping against the edges.
func (b *Bird) SetY(y float64) {
	b.y = y
	b.SetPosition(float64(b.cfg.Player.X), b.y, 0)
}

// Velocity returns the vertical speed per 1/60 s; negative is up.
func (b *Bird) Velocity() float64 { return b.vel }
