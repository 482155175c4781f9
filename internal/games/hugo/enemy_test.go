package hugo

import (
	"testing"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

func newTestEnemies(rng core.RNG) (*EnemyManager, config.HugoConfig) {
	cfg := config.DefaultHugoConfig()
	return NewEnemyManager(cfg.Enemies, cfg.World, rng), cfg
}

func activeEnemy(cfg config.HugoConfig) Enemy {
	return Enemy{
		X: cfg.Enemies.Inset, Y: 200,
		W: cfg.Enemies.Width, H: cfg.Enemies.Height,
		Origin: OriginLeft, Phase: EnemyActive, Facing: 1,
		TargetX: cfg.Enemies.Inset, TargetY: 200,
	}
}

func TestEnemyForcedShot(t *testing.T) {
	rng := &scriptedRNG{}
	m, cfg := newTestEnemies(rng)
	m.enemies = append(m.enemies, activeEnemy(cfg))

	rng.floats = []float64{0}
	m.Update(0)

	if got := len(m.Projectiles()); got != 1 {
		t.Fatalf("projectiles = %d, expected 1", got)
	}
	if got := m.Enemies()[0].ShootCooldown; got != cfg.Enemies.ShootCooldown {
		t.Errorf("cooldown = %d, expected %d", got, cfg.Enemies.ShootCooldown)
	}

	p := m.Projectiles()[0]
	e := m.Enemies()[0]
	if p.Dir != 1 || p.X != e.X+e.W || p.Y != e.Y+e.H/2 {
		t.Errorf("projectile %+v not at the right edge of %+v", p, e)
	}

	// Rolls are suppressed until the cooldown runs out, even if they would hit.
	for i, n := 0, cfg.Enemies.ShootCooldown-1; i < n; i++ {
		rng.floats = []float64{0}
		m.Update(0)
	}
	if got := len(m.Projectiles()); got != 1 {
		t.Fatalf("projectiles = %d during cooldown, expected 1", got)
	}

	rng.floats = []float64{0}
	m.Update(0)
	if got := len(m.Projectiles()); got != 2 {
		t.Errorf("projectiles = %d after cooldown, expected 2", got)
	}
}

func TestEnemyShootChanceGrowsWithTime(t *testing.T) {
	rng := &scriptedRNG{}
	m, cfg := newTestEnemies(rng)

	e := activeEnemy(cfg)
	roll := cfg.Enemies.ShootChance + cfg.Enemies.ShootBonusCap/2

	rng.floats = []float64{roll}
	if m.rollShot(&e) {
		t.Fatal("fresh enemy should miss a roll above the base chance")
	}

	e.TicksActive = 10000
	rng.floats = []float64{roll}
	if !m.rollShot(&e) {
		t.Fatal("long-lived enemy should hit a roll inside the bonus")
	}
}

func TestEnemyEntryPhase(t *testing.T) {
	tests := []struct {
		name   string
		rng    *scriptedRNG
		origin Origin
	}{
		// Side roll fails, RangeInt picks side_min_y, Intn(2)=0 picks left.
		{"left", &scriptedRNG{floats: []float64{0.9}, ints: []int{0, 0}}, OriginLeft},
		{"right", &scriptedRNG{floats: []float64{0.9}, ints: []int{0, 1}}, OriginRight},
		// Bottom roll succeeds, second roll picks the left inset.
		{"bottom", &scriptedRNG{floats: []float64{0.1, 0.2}}, OriginBottom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cfg := newTestEnemies(tc.rng)
			e, ok := m.TrySpawnEnemy(cfg.Enemies.SpawnDistance)
			if !ok {
				t.Fatal("expected a spawn")
			}
			if e.Origin != tc.origin || e.Phase != EnemyEntering {
				t.Fatalf("spawned %s/%d, expected %s entering", e.Origin, e.Phase, tc.origin)
			}

			// Entering enemies survive culling even when below the cull line.
			m.Cull()
			if len(m.Enemies()) != 1 {
				t.Fatal("entering enemy was culled")
			}

			for i := 0; i < 1000 && m.Enemies()[0].Phase == EnemyEntering; i++ {
				before := m.Enemies()[0]
				m.Update(3)
				after := m.Enemies()[0]
				if overshoots(before, after) {
					t.Fatalf("overshot target: %+v -> %+v", before, after)
				}
			}

			got := m.Enemies()[0]
			if got.Phase != EnemyActive {
				t.Fatal("enemy never became active")
			}
			if got.X != got.TargetX || got.Y != got.TargetY {
				t.Errorf("enemy at (%v, %v), expected exact target (%v, %v)", got.X, got.Y, got.TargetX, got.TargetY)
			}
		})
	}
}

// overshoots reports whether an entering enemy passed its target on any axis.
func overshoots(before, after Enemy) bool {
	passed := func(from, to, target float64) bool {
		return (from < target && to > target) || (from > target && to < target)
	}
	return passed(before.X, after.X, before.TargetX) || passed(before.Y, after.Y, before.TargetY)
}

func TestEnemySpawnGating(t *testing.T) {
	m, cfg := newTestEnemies(&scriptedRNG{})
	d := cfg.Enemies.SpawnDistance

	if _, ok := m.TrySpawnEnemy(d - 1); ok {
		t.Error("spawned before spawn distance")
	}
	if _, ok := m.TrySpawnEnemy(d); !ok {
		t.Error("expected spawn at spawn distance")
	}
	if _, ok := m.TrySpawnEnemy(d + 1); ok {
		t.Error("spawned again without waiting")
	}
	if _, ok := m.TrySpawnEnemy(2 * d); !ok {
		t.Error("expected second spawn")
	}
	if _, ok := m.TrySpawnEnemy(3 * d); ok {
		t.Errorf("spawned beyond max %d on screen", cfg.Enemies.MaxOnScreen)
	}
}

func TestBottomEnemiesStayForTheRun(t *testing.T) {
	rng := &scriptedRNG{floats: []float64{0.1, 0.2, 0.1, 0.2}}
	m, cfg := newTestEnemies(rng)
	d := cfg.Enemies.SpawnDistance

	for _, at := range []float64{d, 2 * d} {
		e, ok := m.TrySpawnEnemy(at)
		if !ok || e.Origin != OriginBottom {
			t.Fatalf("spawn at %v = %+v, %v; expected a bottom enemy", at, e, ok)
		}
	}
	for i := 0; i < 2000; i++ {
		m.Update(5)
		m.Cull()
	}

	if got := len(m.Enemies()); got != cfg.Enemies.MaxOnScreen {
		t.Fatalf("enemies after a long run = %d, expected %d resting bottom enemies", got, cfg.Enemies.MaxOnScreen)
	}
	for _, e := range m.Enemies() {
		if e.Phase != EnemyActive || e.Y != e.TargetY {
			t.Errorf("bottom enemy not resting: %+v", e)
		}
	}
	if _, ok := m.TrySpawnEnemy(100 * d); ok {
		t.Error("spawned past MaxOnScreen resting bottom enemies")
	}
}

func TestEnemyMovementByOrigin(t *testing.T) {
	m, cfg := newTestEnemies(&scriptedRNG{})

	side := activeEnemy(cfg)
	bottom := activeEnemy(cfg)
	bottom.Origin = OriginBottom
	m.enemies = append(m.enemies, side, bottom)

	m.Update(4)

	if got := m.Enemies()[0].Y; got != side.Y+4 {
		t.Errorf("side enemy Y = %v, expected to scroll to %v", got, side.Y+4)
	}
	if got := m.Enemies()[1].Y; got != bottom.Y {
		t.Errorf("bottom enemy Y = %v, expected to hold %v", got, bottom.Y)
	}
}

func TestEnemyCull(t *testing.T) {
	m, cfg := newTestEnemies(&scriptedRNG{})
	h, w := cfg.World.Height, cfg.World.Width

	keep := activeEnemy(cfg)
	gone := activeEnemy(cfg)
	gone.Y = h + cfg.Enemies.CullMargin + 1
	m.enemies = append(m.enemies, keep, gone)

	r := cfg.Enemies.ProjectileRadius
	m.projectiles = append(m.projectiles,
		Projectile{X: w / 2, Y: 100, Dir: 1, Radius: r},
		Projectile{X: w + cfg.Enemies.ProjectileMargin + 1, Y: 100, Dir: 1, Radius: r},
		Projectile{X: -cfg.Enemies.ProjectileMargin - 1, Y: 100, Dir: -1, Radius: r},
	)

	m.Cull()

	if len(m.Enemies()) != 1 || m.Enemies()[0].Y != keep.Y {
		t.Errorf("enemies after cull = %+v", m.Enemies())
	}
	if len(m.Projectiles()) != 1 || m.Projectiles()[0].X != w/2 {
		t.Errorf("projectiles after cull = %+v", m.Projectiles())
	}
}

func TestCheckProjectileHit(t *testing.T) {
	m, cfg := newTestEnemies(&scriptedRNG{})
	hitbox := core.NewBox(100, 100, 50, 50)

	if m.CheckProjectileHit(hitbox) {
		t.Error("hit with no projectiles")
	}

	m.projectiles = append(m.projectiles, Projectile{X: 300, Y: 125, Dir: -1, Radius: cfg.Enemies.ProjectileRadius})
	if m.CheckProjectileHit(hitbox) {
		t.Error("distant projectile reported as hit")
	}

	m.projectiles = append(m.projectiles, Projectile{X: 155, Y: 125, Dir: -1, Radius: cfg.Enemies.ProjectileRadius})
	if !m.CheckProjectileHit(hitbox) {
		t.Error("overlapping projectile not reported")
	}
}
