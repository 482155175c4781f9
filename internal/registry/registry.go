// Package registry maps game IDs to factories so the terminal host and the
// SSH server can create a fresh game per session without importing the
// game package directly. Games register from init().
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/hugo/internal/core"
)

// Game is what the platform drives once per tick. Implementations hold only
// simulation state; key handling, timing and terminal output stay in the
// platform.
type Game interface {
	// ID identifies the game in the registry and in log fields.
	ID() string

	// Reset discards the current session and builds a new one from cfg.
	// The seed in cfg drives every random choice of the session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State reports score, meters and the menu/pause/game-over flags.
	State() core.GameState
}

// Factory creates a game ready for Reset.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
