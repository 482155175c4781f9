package hugo

import (
	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// scriptedRNG replays queued values, then falls back to fixed ones.
// The fallback float (0.99) fails every probability roll in the game.
type scriptedRNG struct {
	floats []float64
	ints   []int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// quietConfig disables every spawner so tests can place entities by hand.
func quietConfig() config.HugoConfig {
	cfg := config.DefaultHugoConfig()
	cfg.Obstacles.MinGap = 1 << 30
	cfg.Obstacles.MaxGap = 1 << 30
	cfg.Enemies.SpawnDistance = 1e12
	cfg.Collectibles.CoinSpawnDistance = 1e12
	cfg.Collectibles.PowerUpSpawnDistance = 1e12
	return cfg
}

func newTestWorld(cfg config.HugoConfig, rng core.RNG) *World {
	w, err := NewWorld(cfg, rng)
	if err != nil {
		panic(err)
	}
	w.Start()
	return w
}

func newTestGame(cfg config.HugoConfig) *Game {
	g, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// idle is an input frame with nothing held.
var idle = core.NewInputFrame()
