package hugo

import (
	"fmt"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// Hazard is what ended a run.
type Hazard int

const (
	HazardNone Hazard = iota
	HazardObstacle
	HazardProjectile
)

func (h Hazard) String() string {
	switch h {
	case HazardObstacle:
		return "obstacle"
	case HazardProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// Outcome reports what happened during one Step.
type Outcome struct {
	Pattern      string            // Name of the pattern spawned this tick
	EnemySpawned bool
	Collected    []CollectibleKind // Pickups in collection order
	Points       int               // Coin points gained
	Hazard       Hazard
}

// World is the simulation of one run: every entity collection plus the
// run state. Only Step mutates it during play.
type World struct {
	cfg        config.HugoConfig
	difficulty *config.DifficultyManager

	lanes        *Lanes
	player       *Player
	patterns     *PatternSpawner
	enemies      *EnemyManager
	items        *CollectibleSpawner
	obstacles    []Obstacle
	collectibles []Collectible

	run RunState
}

// NewWorld builds a world in the menu phase. The pattern table is
// validated here; an invalid table is a startup error.
func NewWorld(cfg config.HugoConfig, rng core.RNG) (*World, error) {
	table, err := NewPatternTable(cfg.Obstacles.Patterns, cfg.World.NumLanes)
	if err != nil {
		return nil, fmt.Errorf("hugo: %w", err)
	}

	lanes := NewLanes(cfg.World)
	w := &World{
		cfg:          cfg,
		difficulty:   config.NewDifficultyManager(cfg.Difficulty),
		lanes:        lanes,
		player:       NewPlayer(cfg.Player, lanes),
		patterns:     NewPatternSpawner(table, lanes, cfg.Obstacles, rng),
		enemies:      NewEnemyManager(cfg.Enemies, cfg.World, rng),
		items:        NewCollectibleSpawner(cfg.Collectibles, lanes, rng),
		obstacles:    make([]Obstacle, 0, 16),
		collectibles: make([]Collectible, 0, 8),
	}
	w.Reset()
	return w, nil
}

// Reset clears the run and returns to the menu. The RNG stream is not
// rewound, so the next run differs from the last.
func (w *World) Reset() {
	w.lanes.Reset()
	w.player.Reset()
	w.patterns.Reset()
	w.enemies.Reset()
	w.items.Reset()
	w.obstacles = w.obstacles[:0]
	w.collectibles = w.collectibles[:0]
	w.run = RunState{
		Phase:       PhaseMenu,
		ScrollSpeed: w.difficulty.InitialSpeed(),
	}
}

// Start begins play from the menu.
func (w *World) Start() {
	if w.run.Phase == PhaseMenu {
		w.run.Phase = PhasePlaying
	}
}

// Step runs one tick of the pipeline. It does nothing outside PhasePlaying.
// Order: input, movement, distance, spawning, culling, pickups, hazards,
// power-up timers, speed. The speed computed at the end is used next tick.
func (w *World) Step(in core.InputFrame) Outcome {
	var out Outcome
	if w.run.Phase != PhasePlaying {
		return out
	}
	w.run.Tick++
	speed := w.run.ScrollSpeed

	w.player.HandleInput(in)
	w.player.Update()

	w.advance(speed)

	w.run.Distance += speed

	w.spawn(&out)

	w.cull()

	w.collect(&out)

	if hazard := w.hazard(); hazard != HazardNone {
		out.Hazard = hazard
		w.run.Phase = PhaseGameOver
		return out
	}

	if w.run.DoublePointsTicks > 0 {
		w.run.DoublePointsTicks--
	}

	w.run.ScrollSpeed = w.difficulty.ScrollSpeed(w.run.Distance)
	return out
}

func (w *World) advance(speed float64) {
	w.lanes.Advance(speed)
	w.run.BackgroundOffset = wrap(w.run.BackgroundOffset+speed/2, w.cfg.World.BackgroundHeight)

	for i := range w.obstacles {
		w.obstacles[i].Y += speed
		w.obstacles[i].anim++
	}
	w.enemies.Update(speed)
	for i := range w.collectibles {
		w.collectibles[i].Y += speed
		w.collectibles[i].anim++
	}
}

func (w *World) spawn(out *Outcome) {
	coins := 0
	for _, c := range w.collectibles {
		if c.Kind == Coin {
			coins++
		}
	}
	w.collectibles = append(w.collectibles, w.items.TrySpawn(w.run.Distance, coins)...)

	if obs := w.patterns.TrySpawn(w.run.Distance); len(obs) > 0 {
		w.obstacles = append(w.obstacles, obs...)
		h := w.patterns.History()
		out.Pattern = h[len(h)-1].Name
	}

	if _, ok := w.enemies.TrySpawnEnemy(w.run.Distance); ok {
		out.EnemySpawned = true
	}
}

// cull drops entities that scrolled past the bottom or flew off the sides.
func (w *World) cull() {
	bottom := w.cfg.World.Height

	obstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Y <= bottom {
			obstacles = append(obstacles, o)
		}
	}
	w.obstacles = obstacles

	w.enemies.Cull()

	items := w.collectibles[:0]
	for _, c := range w.collectibles {
		if c.Y <= bottom {
			items = append(items, c)
		}
	}
	w.collectibles = items
}

// collect applies every pickup touching the player and removes it.
func (w *World) collect(out *Outcome) {
	hitbox := w.player.Hitbox()
	for i := range w.collectibles {
		c := &w.collectibles[i]
		if c.Collected || !c.Rect().Intersects(hitbox) {
			continue
		}
		c.Collected = true
		out.Collected = append(out.Collected, c.Kind)

		switch c.Kind {
		case Coin:
			pts := w.cfg.Scoring.PointsPerCoin
			if w.run.DoublePointsActive() {
				pts *= 2
			}
			w.run.CoinPoints += pts
			out.Points += pts
		case PowerUpInvincibility:
			w.player.ActivateInvincibility()
		case PowerUpDoublePoints:
			w.run.DoublePointsTicks = w.cfg.Collectibles.DoublePointsTicks
		}
	}

	kept := w.collectibles[:0]
	for _, c := range w.collectibles {
		if !c.Collected {
			kept = append(kept, c)
		}
	}
	w.collectibles = kept
}

// hazard returns the first hazard touching the player. Invincibility
// disables the check entirely.
func (w *World) hazard() Hazard {
	if w.player.Invincible() {
		return HazardNone
	}
	hitbox := w.player.Hitbox()
	for _, o := range w.obstacles {
		if o.Hitbox().Intersects(hitbox) {
			return HazardObstacle
		}
	}
	if w.enemies.CheckProjectileHit(hitbox) {
		return HazardProjectile
	}
	return HazardNone
}

// Run returns a copy of the run state.
func (w *World) Run() RunState {
	return w.run
}

// Score returns the current total score.
func (w *World) Score() int {
	return w.run.Score(w.cfg.Scoring)
}

// Level returns how far the scroll speed is between base and max (0.0 to 1.0).
func (w *World) Level() float64 {
	return w.difficulty.Level(w.run.Distance)
}

// Meters returns the distance climbed in meters.
func (w *World) Meters() int {
	return w.run.Meters(w.cfg.Scoring)
}

// Lanes returns the lane layout.
func (w *World) Lanes() *Lanes {
	return w.lanes
}

// Player returns the player.
func (w *World) Player() *Player {
	return w.player
}

// Obstacles returns the live obstacles.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Collectibles returns the live coins and power-ups.
func (w *World) Collectibles() []Collectible {
	return w.collectibles
}

// Enemies returns the enemy manager.
func (w *World) Enemies() *EnemyManager {
	return w.enemies
}

// Patterns returns the obstacle pattern spawner.
func (w *World) Patterns() *PatternSpawner {
	return w.patterns
}
