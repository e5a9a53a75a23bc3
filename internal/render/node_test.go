package render

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
)

var (
	_ engine.Container = (*Node)(nil)
	_ engine.DepthNode = (*Node)(nil)
	_ engine.Renderer  = (*Node)(nil)
)

func identity() *core.ScreenAdapter {
	return core.NewScreenAdapter(20, 10, 20, 10)
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewText("child", "x", core.ColorWhite)

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children()) != 0 {
		t.Error("child should be removed from its old parent")
	}
	if child.Parent() != b {
		t.Error("Parent() should be the new parent")
	}
}

func TestAddChildRejectsCycle(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	root.AddChild(mid)

	mid.AddChild(root)

	if root.Parent() != nil {
		t.Error("AddChild should refuse to create a cycle")
	}
}

func TestDestroyRecursive(t *testing.T) {
	stage := NewContainer("stage")
	group := NewContainer("group")
	leaf := NewText("leaf", "hi", core.ColorWhite)
	stage.AddChild(group)
	group.AddChild(leaf)

	group.Destroy()
	group.Destroy()

	if !group.IsDestroyed() || !leaf.IsDestroyed() {
		t.Error("Destroy should destroy all descendants")
	}
	if len(stage.Children()) != 0 {
		t.Error("Destroy should detach the node from its parent")
	}
	if leaf.Parent() != nil {
		t.Error("destroyed children should lose their parent")
	}
}

func TestWorldPosition(t *testing.T) {
	root := NewContainer("root")
	root.SetPosition(10, 5)
	child := NewText("child", "x", core.ColorWhite)
	child.SetPosition(2, 1)
	root.AddChild(child)

	if got := child.WorldPosition(); got != (core.Vec2{X: 12, Y: 6}) {
		t.Errorf("WorldPosition() = %+v, expected (12, 6)", got)
	}
}

func TestRenderText(t *testing.T) {
	screen := core.NewScreen(20, 10)
	label := NewText("title", "HELLO", core.ColorYellow)
	label.SetAnchor(0.5, 0)
	label.SetPosition(10, 2)

	label.Render(screen, identity())

	if got := screen.Row(2); got[8:13] != "HELLO" {
		t.Errorf("Row(2) = %q, expected HELLO centered at column 10", got)
	}
	if screen.GetCell(8, 2).Color != core.ColorYellow {
		t.Error("text should keep its color")
	}
}

func TestRenderFilledRect(t *testing.T) {
	screen := core.NewScreen(20, 10)
	rect := NewRect("box", 4, 2, '#', core.ColorGreen)
	rect.SetPosition(3, 3)

	rect.Render(screen, identity())

	filled := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if screen.Get(x, y) == '#' {
				filled++
				if x < 3 || x > 6 || y < 3 || y > 4 {
					t.Errorf("cell (%d, %d) filled outside the rectangle", x, y)
				}
			}
		}
	}
	if filled != 8 {
		t.Errorf("filled cells = %d, expected 8", filled)
	}
}

func TestRenderZOrder(t *testing.T) {
	screen := core.NewScreen(20, 10)
	stage := NewContainer("stage")
	top := NewText("top", "T", core.ColorWhite)
	top.SetZ(10)
	bottom := NewText("bottom", "B", core.ColorWhite)
	stage.AddChild(top)
	stage.AddChild(bottom)

	stage.Render(screen, identity())

	if screen.Get(0, 0) != 'T' {
		t.Errorf("Get(0, 0) = %q, expected the higher-Z node on top", screen.Get(0, 0))
	}
}

func TestRenderSkipsHidden(t *testing.T) {
	screen := core.NewScreen(20, 10)
	stage := NewContainer("stage")
	label := NewText("label", "X", core.ColorWhite)
	stage.AddChild(label)
	stage.Visible = false

	stage.Render(screen, identity())

	if screen.Get(0, 0) != ' ' {
		t.Error("hidden subtrees should not render")
	}
}

func TestTapTopmost(t *testing.T) {
	stage := NewContainer("stage")
	var tapped []string

	under := NewButton("under", "[ UNDER ]", core.ColorWhite, func() { tapped = append(tapped, "under") })
	under.SetPosition(10, 5)
	over := NewButton("over", "[ OVER ]", core.ColorWhite, func() { tapped = append(tapped, "over") })
	over.SetPosition(10, 5)
	over.SetZ(1)
	stage.AddChild(under)
	stage.AddChild(over)

	if !stage.Tap(10, 5, identity()) {
		t.Fatal("Tap() on a button = false, expected true")
	}
	if len(tapped) != 1 || tapped[0] != "over" {
		t.Errorf("tapped = %v, expected [over]", tapped)
	}

	if stage.Tap(0, 0, identity()) {
		t.Error("Tap() on empty space should return false")
	}

	over.Visible = false
	stage.Tap(10, 5, identity())
	if tapped[len(tapped)-1] != "under" {
		t.Errorf("hidden buttons should not take taps, tapped = %v", tapped)
	}
}

func TestTween(t *testing.T) {
	node := NewContainer("n")
	tw := TweenX(node, 10, time.Second, ease.Linear)
	finished := false
	tw.After = func() { finished = true }

	tw.Update(500 * time.Millisecond)
	if math.Abs(node.X-5) > 0.01 {
		t.Errorf("X at half time = %v, expected 5", node.X)
	}

	if !tw.Update(time.Second) {
		t.Error("Update() past the end should report finished")
	}
	if math.Abs(node.X-10) > 0.01 || !finished {
		t.Errorf("X = %v finished=%v, expected 10 true", node.X, finished)
	}
}

func TestTweenStopsOnDestroyedNode(t *testing.T) {
	node := NewContainer("n")
	tw := TweenRotation(node, math.Pi, time.Second, ease.Linear)

	node.Destroy()
	tw.Update(500 * time.Millisecond)

	if !tw.Done || node.Rotation != 0 {
		t.Error("tween should stop without writing once its node is destroyed")
	}
}
