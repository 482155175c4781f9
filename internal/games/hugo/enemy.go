package hugo

import (
	"math"

	"github.com/vovakirdan/hugo/internal/config"
	"github.com/vovakirdan/hugo/internal/core"
)

// Origin is the screen edge an enemy enters from.
type Origin int

const (
	OriginLeft Origin = iota
	OriginRight
	OriginBottom
)

func (o Origin) String() string {
	switch o {
	case OriginLeft:
		return "left"
	case OriginRight:
		return "right"
	case OriginBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// EnemyPhase tracks whether an enemy is still flying in.
type EnemyPhase int

const (
	EnemyEntering EnemyPhase = iota
	EnemyActive
)

// Enemy is a shooter that flies in from an edge and fires horizontally.
type Enemy struct {
	X, Y          float64 // Top-left corner
	W, H          float64
	Origin        Origin
	Phase         EnemyPhase
	Facing        int // +1 shoots right, -1 shoots left
	TargetX       float64
	TargetY       float64
	ShootCooldown int
	TicksActive   int

	anim int
}

// Rect returns the enemy bounds.
func (e Enemy) Rect() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Frame returns the enemy animation frame.
func (e Enemy) Frame() int {
	return frames.Frame(KindEnemy, e.anim)
}

// muzzle returns where projectiles leave the enemy.
func (e Enemy) muzzle() (float64, float64) {
	x := e.X
	if e.Facing > 0 {
		x = e.X + e.W
	}
	return x, e.Y + e.H/2
}

// Projectile is a ball flying horizontally at constant speed.
type Projectile struct {
	X, Y   float64 // Center
	Dir    int     // +1 right, -1 left
	Radius float64
}

// Rect returns the collision square around the projectile.
func (p Projectile) Rect() core.Box {
	return core.BoxAround(p.X, p.Y, 2*p.Radius, 2*p.Radius)
}

// EnemyManager owns enemies and the projectiles they fire.
type EnemyManager struct {
	cfg         config.HugoEnemies
	worldW      float64
	worldH      float64
	rng         core.RNG
	enemies     []Enemy
	projectiles []Projectile
	lastSpawn   float64
}

// NewEnemyManager creates an empty enemy manager.
func NewEnemyManager(cfg config.HugoEnemies, world config.HugoWorld, rng core.RNG) *EnemyManager {
	return &EnemyManager{
		cfg:         cfg,
		worldW:      world.Width,
		worldH:      world.Height,
		rng:         rng,
		enemies:     make([]Enemy, 0, max(cfg.MaxOnScreen, 1)),
		projectiles: make([]Projectile, 0, 8),
	}
}

// Reset removes all enemies and projectiles.
func (m *EnemyManager) Reset() {
	m.enemies = m.enemies[:0]
	m.projectiles = m.projectiles[:0]
	m.lastSpawn = 0
}

// Enemies returns the live enemies.
func (m *EnemyManager) Enemies() []Enemy {
	return m.enemies
}

// Projectiles returns the live projectiles.
func (m *EnemyManager) Projectiles() []Projectile {
	return m.projectiles
}

// TrySpawnEnemy adds an enemy once SpawnDistance has passed since the last
// one, unless MaxOnScreen enemies are already present.
func (m *EnemyManager) TrySpawnEnemy(distance float64) (Enemy, bool) {
	if distance-m.lastSpawn < m.cfg.SpawnDistance || len(m.enemies) >= m.cfg.MaxOnScreen {
		return Enemy{}, false
	}
	m.lastSpawn = distance

	e := Enemy{W: m.cfg.Width, H: m.cfg.Height, Phase: EnemyEntering}
	left := m.cfg.Inset
	right := m.worldW - m.cfg.Width - m.cfg.Inset

	if m.rng.Float64() < m.cfg.FromBottomChance {
		e.Origin = OriginBottom
		e.Y = m.worldH + m.cfg.Height
		e.TargetY = m.worldH - m.cfg.Height - m.cfg.BottomRestOffset
		if m.rng.Float64() < 0.5 {
			e.X, e.Facing = left, 1
		} else {
			e.X, e.Facing = right, -1
		}
		e.TargetX = e.X
	} else {
		e.Y = float64(core.RangeInt(m.rng, m.cfg.SideMinY, m.cfg.SideMaxY))
		e.TargetY = e.Y
		if m.rng.Intn(2) == 0 {
			e.Origin, e.Facing = OriginLeft, 1
			e.X, e.TargetX = -m.cfg.Width, left
		} else {
			e.Origin, e.Facing = OriginRight, -1
			e.X, e.TargetX = m.worldW, right
		}
	}

	m.enemies = append(m.enemies, e)
	return e, true
}

// Update moves enemies and projectiles, then rolls shots for active
// enemies. Side enemies drift down with the scroll once in place; bottom
// enemies hold their position.
func (m *EnemyManager) Update(scroll float64) {
	for i := range m.projectiles {
		p := &m.projectiles[i]
		p.X += m.cfg.ProjectileSpeed * float64(p.Dir)
	}

	for i := range m.enemies {
		e := &m.enemies[i]
		e.anim++

		switch e.Phase {
		case EnemyEntering:
			m.approach(e)
		case EnemyActive:
			if e.Origin != OriginBottom {
				e.Y += scroll
			}
			e.TicksActive++
		}

		if e.ShootCooldown > 0 {
			e.ShootCooldown--
		}
		if m.rollShot(e) {
			x, y := e.muzzle()
			m.projectiles = append(m.projectiles, Projectile{
				X:      x,
				Y:      y,
				Dir:    e.Facing,
				Radius: m.cfg.ProjectileRadius,
			})
		}
	}
}

// approach moves an entering enemy toward its target, snapping onto it
// when within one step.
func (m *EnemyManager) approach(e *Enemy) {
	dx := e.TargetX - e.X
	dy := e.TargetY - e.Y
	dist := math.Hypot(dx, dy)
	if dist <= m.cfg.EntrySpeed {
		e.X, e.Y = e.TargetX, e.TargetY
		e.Phase = EnemyActive
		return
	}
	e.X += dx / dist * m.cfg.EntrySpeed
	e.Y += dy / dist * m.cfg.EntrySpeed
}

// rollShot decides whether e fires this tick. The chance grows with time
// spent active, up to ShootBonusCap on top of ShootChance.
func (m *EnemyManager) rollShot(e *Enemy) bool {
	if e.Phase != EnemyActive || e.ShootCooldown > 0 {
		return false
	}
	bonus := math.Min(float64(e.TicksActive)/m.cfg.ShootTimeConstant, m.cfg.ShootBonusCap)
	if m.rng.Float64() >= m.cfg.ShootChance+bonus {
		return false
	}
	e.ShootCooldown = m.cfg.ShootCooldown
	return true
}

// Cull drops active enemies below the screen and projectiles past either
// side. Entering enemies are kept: bottom enemies start below the cull line.
func (m *EnemyManager) Cull() {
	limit := m.worldH + m.cfg.CullMargin
	enemies := m.enemies[:0]
	for _, e := range m.enemies {
		if e.Phase == EnemyActive && e.Y > limit {
			continue
		}
		enemies = append(enemies, e)
	}
	m.enemies = enemies

	projectiles := m.projectiles[:0]
	for _, p := range m.projectiles {
		if p.X < -m.cfg.ProjectileMargin || p.X > m.worldW+m.cfg.ProjectileMargin {
			continue
		}
		projectiles = append(projectiles, p)
	}
	m.projectiles = projectiles
}

// CheckProjectileHit reports whether any projectile overlaps hitbox.
func (m *EnemyManager) CheckProjectileHit(hitbox core.Box) bool {
	for _, p := range m.projectiles {
		if p.Rect().Intersects(hitbox) {
			return true
		}
	}
	return false
}
