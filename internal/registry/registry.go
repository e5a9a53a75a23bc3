// Package registry provides a global registry of playable demos.
// Demos register themselves in init() functions, allowing the platform
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/minigame/internal/config"
	"github.com/vovakirdan/minigame/internal/core"
	"github.com/vovakirdan/minigame/internal/engine"
)

// Builder returns the factory of a demo's first scene. The config is
// captured by the scenes, so one demo can be started with different
// settings in different sessions.
type Builder func(cfg *config.Config) engine.Factory

// Demo describes a registered demo.
type Demo struct {
	// ID is the unique identifier (e.g., "showcase", "flappy").
	// Used for CLI commands and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by `minigame list`.
	Description string

	// Build creates the first scene's factory.
	Build Builder

	// Params are passed to the first scene's Enter.
	Params engine.Params
}

// Start returns the first scene factory and a copy of the default params.
func (d Demo) Start(cfg *config.Config) (engine.Factory, engine.Params) {
	params := make(engine.Params, len(d.Params))
	for k, v := range d.Params {
		params[k] = v
	}
	return d.Build(cfg), params
}

var (
	demos = make(map[string]Demo)
	mu    sync.RWMutex
)

// Register adds a demo to the registry.
// Typically called from a demo's init() function.
// Panics if the demo is incomplete or its ID is already registered.
func Register(d Demo) {
	mu.Lock()
	defer mu.Unlock()

	if d.ID == "" || d.Build == nil {
		panic(fmt.Sprintf("registry: demo %q needs an ID and a builder", d.ID))
	}
	if _, exists := demos[d.ID]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", d.ID))
	}
	if d.Title == "" {
		d.Title = d.ID
	}

	demos[d.ID] = d
}

// List returns all registered demos, sorted by ID.
func List() []Demo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Demo, 0, len(demos))
	for _, d := range demos {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a demo by its ID.
// Returns an error if the ID is not registered.
func Get(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := demos[id]
	if !ok {
		return Demo{}, fmt.Errorf("registry: %w: unknown demo %q", core.ErrInvalidArgument, id)
	}

	return d, nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := demos[id]
	return ok
}

// unregister removes a demo. Tests use it to keep the registry clean.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(demos, id)
}
