package showcase

import (
	"math"
	"time"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/render"
)

const playerRadius = 4

// Player is a spinning hexagon with a name tag.
type Player struct {
	*engine.Object
	spin     float64 // radians per second
	rotation float64
	body     *render.Node
}

// NewPlayer creates an initialized player spinning at spin rad/s.
func NewPlayer(spin float64) *Player {
	return engine.InitObject(&Player{Object: &engine.Object{}, spin: spin})
}

func (p *Player) Init() {
	root := render.NewContainer("player")

	p.body = render.NewPolygon("player.body", regularPolygon(6, playerRadius), 0, core.ColorCyan)
	root.AddChild(p.body)

	label := render.NewText("player.label", "Player", core.ColorWhite)
	label.SetAnchor(0.5, 0.5)
	label.SetPosition(0, playerRadius+2)
	root.AddChild(label)

	p.SetDisplay(root)
}

func (p *Player) Update(dt time.Duration) {
	p.rotation += dt.Seconds() * p.spin
	p.body.Rotation = p.rotation
}

// Rotation returns the current body angle in radians.
func (p *Player) Rotation() float64 { return p.rotation }

func regularPolygon(sides int, radius float64) []core.Vec2 {
	pts := make([]core.Vec2, sides)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts[i] = core.Vec2{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}
