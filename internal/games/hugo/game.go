// Package hugo implements a rope-climbing lane runner. The climber dodges
// bat patterns and enemy fire by jumping between ropes while the world
// scrolls down, collecting coins and power-ups on the way.
package hugo

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
	"github.com/vovakirdan/hugo/internal/registry"
)

var (
	sessionMu     sync.RWMutex
	sessionConfig = config.DefaultHugoConfig()
)

// SetConfig makes cfg the config of every game created by New, including
// games the registry creates for SSH sessions. Invalid configs are rejected
// and the previous config stays in effect.
func SetConfig(cfg config.HugoConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid hugo config: %w", err)
	}
	sessionMu.Lock()
	defer sessionMu.Unlock()
	sessionConfig = cfg
	return nil
}

// LoadConfig loads the config at path (or the default search path) and
// applies a difficulty preset. Invalid configs are returned as errors.
func LoadConfig(path string, preset config.DifficultyPreset) (config.HugoConfig, error) {
	cfg, err := config.LoadHugo(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyHugoPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid hugo config after %q preset: %w", preset, err)
	}
	return cfg, nil
}

// Game adapts the World to the platform's Game interface and handles the
// menu, pause and restart flow around it.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.HugoConfig // Validated when the game is created
	world   *World
	paused  bool
	last    Outcome
	runs    int
}

// New creates a game using the config set by SetConfig, or the defaults.
func New() *Game {
	sessionMu.RLock()
	defer sessionMu.RUnlock()
	return &Game{cfg: sessionConfig}
}

// NewWithConfig creates a game that uses cfg. The config is validated here
// so Reset never meets an invalid one.
func NewWithConfig(cfg config.HugoConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hugo config: %w", err)
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hugo"
}

// Reset builds a fresh world seeded from runtime and shows the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	w, err := NewWorld(g.cfg, core.NewRNG(runtime.Seed))
	if err != nil {
		// Both constructors validate the config, so this is a bug.
		panic(fmt.Sprintf("hugo: reset with invalid config: %v", err))
	}
	g.world = w
	g.paused = false
	g.last = Outcome{}
	g.runs = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.last = Outcome{}

	switch g.world.run.Phase {
	case PhaseMenu:
		if in.Has(core.ActionStart) {
			g.start()
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionStart), in.Has(core.ActionRestart):
			g.world.Reset()
			g.start()
		case in.Has(core.ActionBack):
			g.world.Reset()
		}

	case PhasePlaying:
		if in.Has(core.ActionBack) {
			g.world.Reset()
			g.paused = false
			break
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.last = g.world.Step(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	g.world.Start()
	g.paused = false
	g.runs++
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.world.Render(dst, g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Meters:   g.world.Meters(),
		GameOver: g.world.run.Phase == PhaseGameOver,
		Paused:   g.paused,
		InMenu:   g.world.run.Phase == PhaseMenu,
	}
}

// Report describes the last Step as key/value pairs for debug logging.
// Ticks where nothing spawned, was collected or hit return nil.
func (g *Game) Report() []any {
	o := g.last
	if o.Pattern == "" && !o.EnemySpawned && len(o.Collected) == 0 && o.Hazard == HazardNone {
		return nil
	}
	kv := []any{
		"run", g.runs,
		"distance", int(g.world.run.Distance),
		"speed", g.world.run.ScrollSpeed,
		"level", fmt.Sprintf("%.2f", g.world.Level()),
	}
	if o.Pattern != "" {
		kv = append(kv, "pattern", o.Pattern)
	}
	if o.EnemySpawned {
		kv = append(kv, "enemies", len(g.world.Enemies().Enemies()))
	}
	for _, k := range o.Collected {
		kv = append(kv, "collected", k.String())
	}
	if o.Points > 0 {
		kv = append(kv, "points", o.Points)
	}
	if o.Hazard != HazardNone {
		kv = append(kv, "hazard", o.Hazard.String())
	}
	return kv
}

// Register the game with the registry
func init() {
	registry.Register("hugo", func() registry.Game {
		return New()
	})
}
