// Package demos holds what the bundled demos share: the bus events a host
// listens to and a few scene-building helpers.
package demos

import (
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/render"
)

// Bus events emitted by demo scenes. Both carry the score as an int.
const (
	EventScore    = "game:score"
	EventGameOver = "game:over"
)

// ScoreOf extracts the score argument of EventScore and EventGameOver.
func ScoreOf(args []any) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	score, ok := args[0].(int)
	return score, ok
}

// NewStage creates the root node of a scene.
func NewStage(name string) *render.Node {
	return render.NewContainer(name + ".stage")
}

// TouchPoint returns the design-space position of the event's first
// changed touch.
func TouchPoint(rt *engine.Runtime, ev input.TouchEvent) (x, y float64, ok bool) {
	t, ok := ev.Point()
	if !ok {
		return 0, 0, false
	}
	p := rt.Adapter.ToDesign(t.X, t.Y)
	return p.X, p.Y, true
}
