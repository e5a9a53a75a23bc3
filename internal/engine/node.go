package engine

import "github.com/vovakirdan/minigame/internal/core"

// Node is the display node a game object owns.
type Node interface {
	Position() core.Vec2
	SetPosition(x, y float64)
	// Destroy releases the node and all of its children.
	Destroy()
}

// DepthNode is a node with a depth axis.
type DepthNode interface {
	Node
	Z() float64
	SetZ(z float64)
}

// Container is a node that holds child nodes.
type Container interface {
	Node
	AddChild(child Node)
	RemoveChild(child Node)
}

// Renderer draws itself onto a screen buffer.
type Renderer interface {
	Render(screen *core.Screen, adapter *core.ScreenAdapter)
}
