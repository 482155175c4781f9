package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration invariants. A pattern without a free lane
// would make the run unwinnable, so it is rejected here instead of at runtime.
// All violations are returned together.
func (c HugoConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		add("world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.NumLanes < 1 {
		add("world: num_lanes must be at least 1, got %d", c.World.NumLanes)
	}
	if c.World.LaneTextureHeight <= 0 || c.World.BackgroundHeight <= 0 {
		add("world: lane_texture_height and background_height must be positive")
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player: size must be positive")
	}
	if c.Player.MinY > c.Player.MaxY {
		add("player: min_y %v exceeds max_y %v", c.Player.MinY, c.Player.MaxY)
	}
	if c.Player.StartLane < 0 || c.Player.StartLane >= c.World.NumLanes {
		add("player: start_lane %d out of range [0, %d)", c.Player.StartLane, c.World.NumLanes)
	}
	if c.Player.LaneStep <= 0 {
		add("player: lane_step must be positive")
	}
	if c.Player.TransitionTicks < 1 {
		add("player: transition_ticks must be at least 1")
	}
	checkScale(&errs, "player", c.Player.HitboxScale)

	if c.Obstacles.Size <= 0 {
		add("obstacles: size must be positive")
	}
	checkScale(&errs, "obstacles", c.Obstacles.HitboxScale)
	if c.Obstacles.MinGap <= 0 || c.Obstacles.MinGap > c.Obstacles.MaxGap {
		add("obstacles: need 0 < min_gap <= max_gap, got %d..%d", c.Obstacles.MinGap, c.Obstacles.MaxGap)
	}
	if c.Obstacles.VerticalVariation < 0 {
		add("obstacles: vertical_variation must not be negative")
	}
	if c.Obstacles.Variants < 1 {
		add("obstacles: variants must be at least 1")
	}
	if c.Obstacles.HistorySize < 2 {
		add("obstacles: history_size must be at least 2, got %d", c.Obstacles.HistorySize)
	}
	if err := ValidatePatterns(c.Obstacles.Patterns, c.World.NumLanes); err != nil {
		errs = append(errs, err)
	}

	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		add("enemies: size must be positive")
	}
	if c.Enemies.EntrySpeed <= 0 {
		add("enemies: entry_speed must be positive")
	}
	if c.Enemies.SideMinY > c.Enemies.SideMaxY {
		add("enemies: side_min_y %d exceeds side_max_y %d", c.Enemies.SideMinY, c.Enemies.SideMaxY)
	}
	if c.Enemies.ShootTimeConstant <= 0 {
		add("enemies: shoot_time_constant must be positive")
	}
	if c.Enemies.ProjectileRadius <= 0 {
		add("enemies: projectile_radius must be positive")
	}
	if c.Enemies.MaxOnScreen < 0 {
		add("enemies: max_on_screen must not be negative, got %d", c.Enemies.MaxOnScreen)
	}
	if c.Enemies.SpawnDistance <= 0 {
		add("enemies: spawn_distance must be positive, got %v", c.Enemies.SpawnDistance)
	}
	if c.Enemies.ShootCooldown < 0 {
		add("enemies: shoot_cooldown must not be negative, got %d", c.Enemies.ShootCooldown)
	}
	checkChance(&errs, "enemies: from_bottom_chance", c.Enemies.FromBottomChance)
	checkChance(&errs, "enemies: shoot_chance", c.Enemies.ShootChance)

	if c.Collectibles.CoinSize <= 0 || c.Collectibles.PowerUpSize <= 0 {
		add("collectibles: coin_size and powerup_size must be positive")
	}
	if c.Collectibles.CoinSpawnDistance <= 0 {
		add("collectibles: coin_spawn_distance must be positive, got %v", c.Collectibles.CoinSpawnDistance)
	}
	if c.Collectibles.PowerUpSpawnDistance <= 0 {
		add("collectibles: powerup_spawn_distance must be positive, got %v", c.Collectibles.PowerUpSpawnDistance)
	}
	if c.Collectibles.MaxCoins < 0 {
		add("collectibles: max_coins must not be negative, got %d", c.Collectibles.MaxCoins)
	}
	if c.Collectibles.DoublePointsTicks < 0 {
		add("collectibles: double_points_ticks must not be negative")
	}
	checkChance(&errs, "collectibles: powerup_chance", c.Collectibles.PowerUpChance)

	if c.Scoring.UnitsPerMeter <= 0 {
		add("scoring: units_per_meter must be positive")
	}

	if c.Difficulty.BaseSpeed <= 0 || c.Difficulty.BaseSpeed > c.Difficulty.MaxSpeed {
		add("difficulty: need 0 < base_speed <= max_speed, got %v..%v", c.Difficulty.BaseSpeed, c.Difficulty.MaxSpeed)
	}
	if c.Difficulty.Interval <= 0 {
		add("difficulty: interval must be positive")
	}
	if c.Difficulty.SpeedStep < 0 {
		add("difficulty: speed_step must not be negative")
	}

	return errors.Join(errs...)
}

// ValidatePatterns checks that every pattern partitions the lanes into
// occupied and free sets with at least one lane in each.
func ValidatePatterns(patterns []PatternConfig, numLanes int) error {
	if len(patterns) == 0 {
		return errors.New("obstacles: pattern table is empty")
	}

	var errs []error
	seen := make(map[string]bool, len(patterns))
	for i, p := range patterns {
		name := p.Name
		if name == "" {
			errs = append(errs, fmt.Errorf("pattern #%d: name is empty", i))
			name = fmt.Sprintf("#%d", i)
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("pattern %s: duplicate name", name))
		}
		seen[p.Name] = true

		if len(p.Occupied) == 0 {
			errs = append(errs, fmt.Errorf("pattern %s: no occupied lanes", name))
		}
		if len(p.Free) == 0 {
			errs = append(errs, fmt.Errorf("pattern %s: no free lanes", name))
		}

		owner := make(map[int]string, numLanes)
		mark := func(set string, lanes []int) {
			for _, l := range lanes {
				if l < 0 || l >= numLanes {
					errs = append(errs, fmt.Errorf("pattern %s: %s lane %d out of range [0, %d)", name, set, l, numLanes))
					continue
				}
				if prev, ok := owner[l]; ok {
					errs = append(errs, fmt.Errorf("pattern %s: lane %d listed in %s and %s", name, l, prev, set))
					continue
				}
				owner[l] = set
			}
		}
		mark("occupied", p.Occupied)
		mark("free", p.Free)

		for l := 0; l < numLanes; l++ {
			if _, ok := owner[l]; !ok {
				errs = append(errs, fmt.Errorf("pattern %s: lane %d is neither occupied nor free", name, l))
			}
		}
	}
	return errors.Join(errs...)
}

// checkScale requires a hitbox strictly smaller than its sprite.
func checkScale(errs *[]error, section string, scale float64) {
	if scale <= 0 || scale >= 1 {
		*errs = append(*errs, fmt.Errorf("%s: hitbox_scale must be in (0, 1), got %v", section, scale))
	}
}

func checkChance(errs *[]error, field string, p float64) {
	if p < 0 || p > 1 {
		*errs = append(*errs, fmt.Errorf("%s must be in [0, 1], got %v", field, p))
	}
}
