// Package showcase is the engine tour: a loading screen, a menu, a tap
// scoring scene with a pause modal and a spinning triangle.
package showcase

import (
	"time"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/engine"
	"github.com/vovakirdan/minigame/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "showcase"

// Scene names, as reported by BaseScene.Name.
const (
	SceneLoading  = "loading"
	SceneMenu     = "menu"
	SceneGame     = "game"
	SceneTriangle = "triangle"
)

// LoadingFactory builds the first scene of the demo.
func LoadingFactory(cfg *config.Config) engine.Factory {
	return func(rt *engine.Runtime) engine.Scene { return newLoadingScene(rt, cfg) }
}

// MenuFactory builds the main menu.
func MenuFactory(cfg *config.Config) engine.Factory {
	return func(rt *engine.Runtime) engine.Scene { return newMenuScene(rt, cfg) }
}

// GameFactory builds the tap scoring scene.
func GameFactory(cfg *config.Config) engine.Factory {
	return func(rt *engine.Runtime) engine.Scene { return newGameScene(rt, cfg) }
}

// TriangleFactory builds the star field scene.
func TriangleFactory(cfg *config.Config) engine.Factory {
	return func(rt *engine.Runtime) engine.Scene { return newTriangleScene(rt, cfg) }
}

func loadingDelay(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Showcase.LoadingDelayMS) * time.Millisecond
}

func init() {
	registry.Register(registry.Demo{
		ID:          ID,
		Title:       "Engine Showcase",
		Description: "Loading screen, menu, tap scoring with a pause modal, spinning triangle",
		Build:       LoadingFactory,
	})
}
