package config

import (
	_ "embed"
)

//go:embed defaults/hugo.yaml
var defaultHugoYAML []byte

// DefaultHugoConfig returns the built-in Hugo configuration.
// It mirrors defaults/hugo.yaml and is used if the embedded YAML cannot be parsed.
func DefaultHugoConfig() HugoConfig {
	return HugoConfig{
		World: HugoWorld{
			Width:             1000,
			Height:            1000,
			NumLanes:          3,
			LaneWidth:         30,
			LaneTextureHeight: 100,
			BackgroundHeight:  1000,
		},
		Player: HugoPlayer{
			Width:           128,
			Height:          128,
			ClimbSpeed:      4,
			StartY:          400,
			MinY:            50,
			MaxY:            772, // height - player height - 100
			StartLane:       1,
			HitboxScale:     0.7,
			LaneStep:        7,
			SnapEpsilon:     2,
			TransitionTicks: 60,
			JumpTicks:       20,
			MoveCooldown:    30,
			InvincibleTicks: 180, // 3 seconds at 60fps
		},
		Obstacles: HugoObstacles{
			Size:              140,
			HitboxScale:       0.7,
			MinGap:            400,
			MaxGap:            700,
			VerticalVariation: 30,
			SpawnOffset:       50,
			Variants:          2,
			HistorySize:       3,
			Patterns: []PatternConfig{
				{Name: "left", Occupied: []int{0}, Free: []int{1, 2}},
				{Name: "middle", Occupied: []int{1}, Free: []int{0, 2}},
				{Name: "right", Occupied: []int{2}, Free: []int{0, 1}},
				{Name: "left-pair", Occupied: []int{0, 1}, Free: []int{2}},
				{Name: "sides", Occupied: []int{0, 2}, Free: []int{1}},
				{Name: "right-pair", Occupied: []int{1, 2}, Free: []int{0}},
			},
		},
		Enemies: HugoEnemies{
			Width:             128,
			Height:            128,
			MaxOnScreen:       2,
			SpawnDistance:     500,
			FromBottomChance:  0.3,
			EntrySpeed:        5,
			Inset:             50,
			BottomRestOffset:  100,
			SideMinY:          100,
			SideMaxY:          400,
			CullMargin:        100,
			ShootCooldown:     90,
			ShootChance:       0.03,
			ShootTimeConstant: 500,
			ShootBonusCap:     0.02,
			ProjectileSpeed:   7,
			ProjectileRadius:  10,
			ProjectileMargin:  50,
		},
		Collectibles: HugoCollectibles{
			CoinSize:             50,
			PowerUpSize:          50,
			CoinSpawnDistance:    150,
			MaxCoins:             5,
			PowerUpSpawnDistance: 600,
			PowerUpChance:        0.4,
			DoublePointsTicks:    300, // 5 seconds at 60fps
		},
		Scoring: HugoScoring{
			PointsPerCoin:  10,
			PointsPerMeter: 1,
			UnitsPerMeter:  100,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			InitialLevel:  0.0,
			BaseSpeed:     3,
			StartDistance: 3000,
			Interval:      3000,
			SpeedStep:     0.25,
			MaxSpeed:      5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hugo":
		return defaultHugoYAML
	default:
		return nil
	}
}
