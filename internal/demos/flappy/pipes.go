package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/pool"
	"github.com/vovakirdan/minigame/internal/render"
)

// Pipe glyphs
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// pipe is a vertical obstacle with a gap for the bird to pass through.
// Pipes are pooled; a released pipe is hidden until it is spawned again.
type pipe struct {
	root      *render.Node
	top       *render.Node
	bottom    *render.Node
	topCap    *render.Node
	bottomCap *render.Node

	x         float64
	gapY      int  // Y position where gap starts (top of gap)
	gapHeight int  // Height of the passable gap
	passed    bool // Whether the bird has passed this pipe (for scoring)
}

func newPipe() *pipe {
	p := &pipe{
		root:      render.NewContainer("pipe"),
		top:       render.NewPolygon("pipe.top", nil, PipeChar, core.ColorGreen),
		bottom:    render.NewPolygon("pipe.bottom", nil, PipeChar, core.ColorGreen),
		topCap:    render.NewPolygon("pipe.cap", nil, PipeCapTop, core.ColorBrightGreen),
		bottomCap: render.NewPolygon("pipe.cap", nil, PipeCapBottom, core.ColorBrightGreen),
	}
	for _, n := range []*render.Node{p.top, p.bottom, p.topCap, p.bottomCap} {
		p.root.AddChild(n)
	}
	p.root.Visible = false
	return p
}

// Reset hides the pipe until it is spawned again.
func (p *pipe) Reset() {
	p.root.Visible = false
	p.passed = false
}

// Destroy releases the pipe's nodes.
func (p *pipe) Destroy() {
	p.root.Destroy()
}

// layout sizes the four pipe sections for the current gap.
func (p *pipe) layout(width, groundY float64) {
	gapTop := float64(p.gapY)
	gapBottom := float64(p.gapY + p.gapHeight)

	p.top.Points = rectPoints(0, 0, width, gapTop)
	p.topCap.Points = rectPoints(0, gapTop-1, width, 1)
	p.bottom.Points = rectPoints(0, gapBottom, width, groundY-gapBottom)
	p.bottomCap.Points = rectPoints(0, gapBottom, width, 1)
	p.topCap.SetZ(1)
	p.bottomCap.SetZ(1)
}

// topRect returns the collision rectangle for the top portion of the pipe.
func (p *pipe) topRect(width float64) core.Rect {
	return core.NewRect(p.x, 0, width, float64(p.gapY))
}

// bottomRect returns the collision rectangle for the bottom portion of the pipe.
func (p *pipe) bottomRect(width, groundY float64) core.Rect {
	bottomY := float64(p.gapY + p.gapHeight)
	return core.NewRect(p.x, bottomY, width, groundY-bottomY)
}

func rectPoints(x, y, w, h float64) []core.Vec2 {
	if h <= 0 || w <= 0 {
		return nil
	}
	return []core.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

// PipeField spawns, moves and recycles pipes.
type PipeField struct {
	*engine.Object
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	width   float64
	groundY float64

	root    *render.Node
	pipes   *pool.Pool[*pipe]
	initial int
}

// NewPipeField creates an initialized field spanning width design units
// above groundY. initial pipes are preallocated.
func NewPipeField(cfg *config.FlappyConfig, diff *config.DifficultyManager, rng *rand.Rand, width, groundY float64, initial int) *PipeField {
	return engine.InitObject(&PipeField{
		Object:     &engine.Object{},
		cfg:        cfg,
		difficulty: diff,
		rng:        rng,
		width:      width,
		groundY:    groundY,
		initial:    max(initial, 0),
	})
}

func (f *PipeField) Init() {
	f.root = render.NewContainer("pipes")
	f.SetDisplay(f.root)

	f.pipes = pool.MustNew(newPipe, f.initial)
}

// Advance moves pipes left and spawns new ones as needed. birdX is the
// bird's left edge. Returns the number of pipes passed this frame.
func (f *PipeField) Advance(dt time.Duration, birdX float64, score int, elapsed time.Duration) int {
	steps := dt.Seconds() / physicsStep.Seconds()
	speed := f.difficulty.Speed(f.cfg.Physics.BaseSpeed, score, elapsed) * steps
	pipeWidth := float64(f.cfg.Obstacles.PipeWidth)

	passed := 0
	for _, p := range f.pipes.ActiveObjects() {
		p.x -= speed
		p.root.X = p.x

		if !p.passed && p.x+pipeWidth < birdX {
			p.passed = true
			passed++
		}

		// Remove pipes that have moved off the left side
		if p.x+pipeWidth <= 0 {
			f.pipes.Release(p)
		}
	}

	spacing := float64(f.difficulty.Spacing(f.cfg.Obstacles.PipeSpacing, score, elapsed))
	active := f.pipes.ActiveObjects()
	if len(active) == 0 || active[len(active)-1].x < f.width-spacing {
		f.spawn(score, elapsed)
	}

	return passed
}

// spawn places a new pipe at the right edge.
func (f *PipeField) spawn(score int, elapsed time.Duration) {
	obs := f.cfg.Obstacles

	// Random variation in gap size (between minGap and the difficulty gap)
	currentGap := max(f.difficulty.GapSize(obs.MaxGapSize, score, elapsed), obs.MinGapSize)
	gapHeight := obs.MinGapSize
	if r := currentGap - obs.MinGapSize; r > 0 {
		gapHeight += f.rng.Intn(r + 1)
	}

	minGapY := obs.TopMargin
	maxGapY := max(int(f.groundY)-obs.BottomMargin-gapHeight, minGapY)
	gapY := minGapY
	if maxGapY > minGapY {
		gapY += f.rng.Intn(maxGapY - minGapY + 1)
	}

	p := f.pipes.Acquire()
	p.x = f.width
	p.gapY = gapY
	p.gapHeight = gapHeight
	p.passed = false
	p.layout(float64(obs.PipeWidth), f.groundY)
	p.root.SetPosition(p.x, 0)
	p.root.Visible = true
	f.root.AddChild(p.root)
}

// Collides reports whether r overlaps any pipe.
func (f *PipeField) Collides(r core.Rect) bool {
	w := float64(f.cfg.Obstacles.PipeWidth)
	for _, p := range f.pipes.ActiveObjects() {
		if r.Intersects(p.topRect(w)) || r.Intersects(p.bottomRect(w, f.groundY)) {
			return true
		}
	}
	return false
}

func (f *PipeField) Cleanup() {
	f.pipes.Clear()
}

// Count returns the number of pipes on screen.
func (f *PipeField) Count() int { return f.pipes.ActiveCount() }

// Allocated returns how many pipes the pool has ever created.
func (f *PipeField) Allocated() int { return f.pipes.Created() }
