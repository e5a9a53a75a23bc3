// Package render provides the character-cell scene graph that scenes build
// their display from. A Node is a container, a text label or a filled
// polygon; the host walks the current scene's stage every frame and draws
// it onto a core.Screen.
package render

import (
	"math"
	"slices"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
)

// NodeType distinguishes what a node draws.
type NodeType int

const (
	NodeTypeContainer NodeType = iota
	NodeTypeText
	NodeTypePolygon
)

// Node is an element of the scene graph. Positions are in design units,
// relative to the parent.
type Node struct {
	Name string
	Type NodeType

	// Transform (local)
	X, Y     float64
	Depth    float64
	Rotation float64 // radians, polygons only
	AnchorX  float64 // 0 = left, 0.5 = center, 1 = right
	AnchorY  float64

	Visible bool
	Color   core.Color

	// Text fields (NodeTypeText)
	Text string

	// Polygon fields (NodeTypePolygon). Points are relative to the node
	// position; a zero Fill draws the outline only.
	Points []core.Vec2
	Fill   rune

	// Interactive nodes receive taps from the host, independently of the
	// input manager's block layers (modal buttons rely on that).
	Interactable bool
	OnTap        func()

	parent    *Node
	children  []*Node
	destroyed bool
}

// NewContainer creates an empty grouping node.
func NewContainer(name string) *Node {
	return &Node{Name: name, Type: NodeTypeContainer, Visible: true}
}

// NewText creates a text label.
func NewText(name, text string, color core.Color) *Node {
	return &Node{Name: name, Type: NodeTypeText, Visible: true, Text: text, Color: color}
}

// NewPolygon creates a polygon from points around the node origin.
func NewPolygon(name string, points []core.Vec2, fill rune, color core.Color) *Node {
	return &Node{
		Name:    name,
		Type:    NodeTypePolygon,
		Visible: true,
		Points:  slices.Clone(points),
		Fill:    fill,
		Color:   color,
	}
}

// NewRect creates a w×h rectangle polygon with its top-left at the origin.
func NewRect(name string, w, h float64, fill rune, color core.Color) *Node {
	return NewPolygon(name, []core.Vec2{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, fill, color)
}

// NewButton creates an interactive, centered text label.
func NewButton(name, label string, color core.Color, onTap func()) *Node {
	n := NewText(name, label, color)
	n.AnchorX, n.AnchorY = 0.5, 0.5
	n.Interactable = true
	n.OnTap = onTap
	return n
}

// Position returns the local position.
func (n *Node) Position() core.Vec2 { return core.Vec2{X: n.X, Y: n.Y} }

// SetPosition sets the local position.
func (n *Node) SetPosition(x, y float64) { n.X, n.Y = x, y }

// Z returns the draw order among siblings; higher draws on top.
func (n *Node) Z() float64 { return n.Depth }

// SetZ sets the draw order among siblings.
func (n *Node) SetZ(z float64) { n.Depth = z }

// SetAnchor sets the anchor point for text placement.
func (n *Node) SetAnchor(x, y float64) { n.AnchorX, n.AnchorY = x, y }

// WorldPosition returns the position in design units, including all parents.
func (n *Node) WorldPosition() core.Vec2 {
	var p core.Vec2
	for cur := n; cur != nil; cur = cur.parent {
		p.X += cur.X
		p.Y += cur.Y
	}
	return p
}

// --- Tree manipulation ---

// AddChild appends child. Nodes of other types, destroyed nodes and
// additions that would create a cycle are ignored. A child that already
// has a parent is moved.
func (n *Node) AddChild(child engine.Node) {
	c, ok := child.(*Node)
	if !ok || c == nil || c.destroyed || n.destroyed || isAncestor(c, n) {
		return
	}

	if c.parent != nil {
		c.parent.removeChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches child without destroying it.
func (n *Node) RemoveChild(child engine.Node) {
	c, ok := child.(*Node)
	if !ok || c == nil || c.parent != n {
		return
	}
	n.removeChild(c)
	c.parent = nil
}

// RemoveFromParent detaches the node from its parent.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Destroy detaches the node from its parent and destroys it together
// with all descendants. Calling it again does nothing.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.RemoveFromParent()
	n.destroy()
}

func (n *Node) destroy() {
	n.destroyed = true
	for _, c := range n.children {
		c.parent = nil
		c.destroy()
	}
	n.children = nil
	n.OnTap = nil
	n.Points = nil
}

// IsDestroyed reports whether Destroy has run.
func (n *Node) IsDestroyed() bool { return n.destroyed }

func (n *Node) removeChild(c *Node) {
	n.children = slices.DeleteFunc(n.children, func(o *Node) bool { return o == c })
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Geometry ---

// worldPoints returns the polygon vertices in design units, rotated and
// translated to the node's world position.
func (n *Node) worldPoints() []core.Vec2 {
	origin := n.WorldPosition()
	pts := make([]core.Vec2, len(n.Points))
	for i, p := range n.Points {
		r := core.Rotate(p, n.Rotation)
		pts[i] = core.Vec2{X: origin.X + r.X, Y: origin.Y + r.Y}
	}
	return pts
}

// ScreenBounds returns the area the node itself covers on screen, in cells.
// Containers have empty bounds.
func (n *Node) ScreenBounds(a *core.ScreenAdapter) core.Rect {
	switch n.Type {
	case NodeTypeText:
		x, y := n.textOrigin(a)
		return core.NewRect(float64(x), float64(y), float64(len([]rune(n.Text))), 1)
	case NodeTypePolygon:
		if len(n.Points) == 0 {
			return core.Rect{}
		}
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range n.worldPoints() {
			s := a.ToScreen(p.X, p.Y)
			minX, maxX = math.Min(minX, s.X), math.Max(maxX, s.X)
			minY, maxY = math.Min(minY, s.Y), math.Max(maxY, s.Y)
		}
		return core.NewRect(minX, minY, maxX-minX, maxY-minY)
	default:
		return core.Rect{}
	}
}

// textOrigin returns the screen cell of the first rune. Text is not scaled:
// one rune is always one cell.
func (n *Node) textOrigin(a *core.ScreenAdapter) (int, int) {
	p := n.WorldPosition()
	s := a.ToScreen(p.X, p.Y)
	w := float64(len([]rune(n.Text)))
	return int(math.Round(s.X - n.AnchorX*w)), int(math.Round(s.Y - n.AnchorY))
}

// --- Interaction ---

// HitTest returns the topmost visible interactable node under the screen
// point (x, y), searching this node and its descendants.
func (n *Node) HitTest(x, y float64, a *core.ScreenAdapter) *Node {
	if !n.Visible || n.destroyed {
		return nil
	}

	ordered := n.sortedChildren()
	for i := len(ordered) - 1; i >= 0; i-- {
		if hit := ordered[i].HitTest(x, y, a); hit != nil {
			return hit
		}
	}

	if n.Interactable && n.OnTap != nil && n.ScreenBounds(a).Contains(x, y) {
		return n
	}
	return nil
}

// Tap calls OnTap on the node HitTest finds and reports whether one did.
func (n *Node) Tap(x, y float64, a *core.ScreenAdapter) bool {
	hit := n.HitTest(x, y, a)
	if hit == nil {
		return false
	}
	hit.OnTap()
	return true
}

func (n *Node) sortedChildren() []*Node {
	ordered := slices.Clone(n.children)
	slices.SortStableFunc(ordered, func(a, b *Node) int {
		switch {
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		default:
			return 0
		}
	})
	return ordered
}
