package showcase

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/pool"
	"github.com/vovakirdan/minigame/internal/render"
)

// Star lifetimes, after which a star fades out and respawns elsewhere.
const (
	minStarLife = 4 * time.Second
	maxStarLife = 12 * time.Second
)

type star struct {
	node   *render.Node
	base   float64 // resting brightness
	speed  float64 // twinkle radians per second
	phase  float64
	life   time.Duration
	bright float64
}

func newStar() *star {
	n := render.NewText("star", "·", core.ColorWhite)
	n.Visible = false
	return &star{node: n}
}

// Reset hides the star until it is spawned again.
func (s *star) Reset() {
	s.node.Visible = false
	s.life = 0
}

// Destroy releases the star's node.
func (s *star) Destroy() {
	s.node.Destroy()
}

func (s *star) twinkle(dt time.Duration) {
	s.phase += s.speed * dt.Seconds()
	s.bright = s.base + math.Sin(s.phase)*0.3

	// Fade out over the last second of life.
	if s.life < time.Second {
		s.bright *= max(s.life.Seconds(), 0)
	}

	s.node.Text = string(core.GlyphForBrightness(s.bright))
	s.life -= dt
}

// StarField twinkles a fixed number of pooled stars across an area.
// Expired stars go back to the pool and are replaced at a new spot.
type StarField struct {
	*engine.Object
	area  core.Rect
	count int
	rng   *rand.Rand

	root  *render.Node
	stars *pool.Pool[*star]
}

// NewStarField creates an initialized field of count stars inside area.
func NewStarField(area core.Rect, count int, rng *rand.Rand) *StarField {
	return engine.InitObject(&StarField{
		Object: &engine.Object{},
		area:   area,
		count:  max(count, 0),
		rng:    rng,
	})
}

func (f *StarField) Init() {
	f.root = render.NewContainer("stars")
	f.root.SetZ(-1)
	f.SetDisplay(f.root)

	f.stars = pool.MustNew(newStar, f.count)
	for range f.count {
		f.spawn()
	}
}

func (f *StarField) spawn() {
	s := f.stars.Acquire()
	s.node.SetPosition(
		f.area.X+f.rng.Float64()*f.area.W,
		f.area.Y+f.rng.Float64()*f.area.H,
	)
	s.base = f.rng.Float64()*0.5 + 0.3
	s.speed = f.rng.Float64()*1.2 + 0.6
	s.phase = f.rng.Float64() * 2 * math.Pi
	s.life = minStarLife + time.Duration(f.rng.Int63n(int64(maxStarLife-minStarLife)))
	s.node.Visible = true
	f.root.AddChild(s.node)
}

func (f *StarField) Update(dt time.Duration) {
	for _, s := range f.stars.ActiveObjects() {
		s.twinkle(dt)
		if s.life <= 0 {
			f.stars.Release(s)
			f.spawn()
		}
	}
}

func (f *StarField) Cleanup() {
	f.stars.Clear()
}

// Active returns the number of stars on screen.
func (f *StarField) Active() int { return f.stars.ActiveCount() }

// Spawned returns how many star objects the pool has ever created.
func (f *StarField) Spawned() int { return f.stars.Created() }
