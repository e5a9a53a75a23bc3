package render

import (
	"math"

	"github.com/vovakirdan/minigame/internal/core"
)

// outlineRune is used for polygons without a fill.
const outlineRune = '*'

// Render draws the node and its visible descendants onto screen.
// Children are drawn after their parent, ordered by Z.
func (n *Node) Render(screen *core.Screen, a *core.ScreenAdapter) {
	if !n.Visible || n.destroyed {
		return
	}

	switch n.Type {
	case NodeTypeText:
		n.drawText(screen, a)
	case NodeTypePolygon:
		n.drawPolygon(screen, a)
	}

	for _, c := range n.sortedChildren() {
		c.Render(screen, a)
	}
}

func (n *Node) drawText(screen *core.Screen, a *core.ScreenAdapter) {
	if n.Text == "" {
		return
	}
	x, y := n.textOrigin(a)
	screen.DrawText(x, y, n.Text, n.Color)
}

func (n *Node) drawPolygon(screen *core.Screen, a *core.ScreenAdapter) {
	if len(n.Points) < 2 {
		return
	}

	pts := n.worldPoints()
	for i, p := range pts {
		pts[i] = a.ToScreen(p.X, p.Y)
	}

	if n.Fill == 0 || len(pts) < 3 {
		n.drawOutline(screen, pts)
		return
	}
	fillPolygon(screen, pts, core.Cell{Rune: n.Fill, Color: n.Color})
}

func (n *Node) drawOutline(screen *core.Screen, pts []core.Vec2) {
	cell := core.Cell{Rune: outlineRune, Color: n.Color}
	for i := range pts {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		screen.DrawLine(
			int(math.Round(p0.X)), int(math.Round(p0.Y)),
			int(math.Round(p1.X)), int(math.Round(p1.Y)),
			cell,
		)
	}
}

// fillPolygon sets every cell whose center lies inside the polygon
// (even-odd rule) to cell.
func fillPolygon(screen *core.Screen, pts []core.Vec2, cell core.Cell) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := max(int(math.Floor(minX)), 0)
	y0 := max(int(math.Floor(minY)), 0)
	x1 := min(int(math.Ceil(maxX)), screen.Width()-1)
	y1 := min(int(math.Ceil(maxY)), screen.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if pointInPolygon(float64(x)+0.5, float64(y)+0.5, pts) {
				screen.SetCell(x, y, cell)
			}
		}
	}
}

func pointInPolygon(x, y float64, pts []core.Vec2) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := pj.X + (y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if x < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
