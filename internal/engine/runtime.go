// Package engine implements the scene and game-object lifecycle, the
// deferred scene switch and the frame loop.
//
// The engine does not draw or read input itself. A host supplies a frame
// scheduler, a clock and a touch source; scenes build their display nodes
// through whatever node type the host renders.
package engine

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/eventbus"
	"github.com/vovakirdan/minigame/internal/input"
	"github.com/vovakirdan/minigame/internal/logging"
	"github.com/vovakirdan/minigame/internal/timing"
)

// Event names published by the engine.
const (
	EventSceneSwitch = "scene:switch"
	EventSceneEnter  = "scene:enter"
	EventSceneExit   = "scene:exit"
)

// Runtime bundles the per-game services every scene and object shares.
// One Runtime is built per running game and passed to scene factories.
type Runtime struct {
	Bus     *eventbus.Bus
	Input   *input.Manager
	Time    *timing.Manager
	Adapter *core.ScreenAdapter
	Logger  *log.Logger
	Config  core.RuntimeConfig
	Rand    *rand.Rand
}

// NewRuntime creates fresh services for cfg. A nil logger discards output.
func NewRuntime(cfg core.RuntimeConfig, logger *log.Logger) *Runtime {
	if logger == nil {
		logger = logging.Discard()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	designW, designH := cfg.DesignW, cfg.DesignH
	if designW <= 0 || designH <= 0 {
		designW, designH = float64(cfg.ScreenW), float64(cfg.ScreenH)
	}

	return &Runtime{
		Bus:     eventbus.New(),
		Input:   input.NewManager(),
		Time:    timing.NewManager(),
		Adapter: core.NewScreenAdapter(designW, designH, float64(cfg.ScreenW), float64(cfg.ScreenH)),
		Logger:  logger,
		Config:  cfg,
		Rand:    rand.New(rand.NewSource(seed)),
	}
}
