// Package config provides YAML-based game configuration loading, validation
// and scroll-speed difficulty management.
package config

// HugoConfig contains all configuration for the Hugo rope-climb runner.
// Distances and sizes are in world units (the world is World.Width wide).
type HugoConfig struct {
	World        HugoWorld        `yaml:"world"`
	Player       HugoPlayer       `yaml:"player"`
	Obstacles    HugoObstacles    `yaml:"obstacles"`
	Enemies      HugoEnemies      `yaml:"enemies"`
	Collectibles HugoCollectibles `yaml:"collectibles"`
	Scoring      HugoScoring      `yaml:"scoring"`
	Difficulty   DifficultyConfig `yaml:"difficulty"`
}

// HugoWorld defines the playfield and its lanes (ropes).
type HugoWorld struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	NumLanes          int     `yaml:"num_lanes"`
	LaneWidth         float64 `yaml:"lane_width"`
	LaneTextureHeight float64 `yaml:"lane_texture_height"` // Lane scroll offset wraps at this value
	BackgroundHeight  float64 `yaml:"background_height"`   // Background offset wraps at this value
}

// HugoPlayer defines the climber.
type HugoPlayer struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ClimbSpeed      float64 `yaml:"climb_speed"` // Vertical units per tick while up/down is held
	StartY          float64 `yaml:"start_y"`
	MinY            float64 `yaml:"min_y"`
	MaxY            float64 `yaml:"max_y"`
	StartLane       int     `yaml:"start_lane"`
	HitboxScale     float64 `yaml:"hitbox_scale"`
	LaneStep        float64 `yaml:"lane_step"`        // Max horizontal units per tick during a lane change
	SnapEpsilon     float64 `yaml:"snap_epsilon"`     // Distance at which a lane change snaps to target
	TransitionTicks int     `yaml:"transition_ticks"` // Upper bound on a lane change animation
	JumpTicks       int     `yaml:"jump_ticks"`       // Length of the jump sprite animation
	MoveCooldown    int     `yaml:"move_cooldown"`    // Ticks between lane changes
	InvincibleTicks int     `yaml:"invincible_ticks"`
}

// PatternConfig is one entry of the obstacle pattern table.
type PatternConfig struct {
	Name     string `yaml:"name"`
	Occupied []int  `yaml:"occupied"`
	Free     []int  `yaml:"free"`
}

// HugoObstacles defines the bats and the pattern spawner.
type HugoObstacles struct {
	Size              float64         `yaml:"size"`
	HitboxScale       float64         `yaml:"hitbox_scale"`
	MinGap            int             `yaml:"min_gap"` // Min distance between pattern spawns
	MaxGap            int             `yaml:"max_gap"`
	VerticalVariation int             `yaml:"vertical_variation"` // Per-bat jitter, ±units
	SpawnOffset       float64         `yaml:"spawn_offset"`       // Extra distance above the screen
	Variants          int             `yaml:"variants"`           // Number of visual bat variants
	HistorySize       int             `yaml:"history_size"`
	Patterns          []PatternConfig `yaml:"patterns"`
}

// HugoEnemies defines shooting enemies and their projectiles.
type HugoEnemies struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	MaxOnScreen       int     `yaml:"max_on_screen"`
	SpawnDistance     float64 `yaml:"spawn_distance"`
	FromBottomChance  float64 `yaml:"from_bottom_chance"`
	EntrySpeed        float64 `yaml:"entry_speed"`
	Inset             float64 `yaml:"inset"`              // Resting distance from the side edge
	BottomRestOffset  float64 `yaml:"bottom_rest_offset"` // Resting distance above the bottom edge
	SideMinY          int     `yaml:"side_min_y"`
	SideMaxY          int     `yaml:"side_max_y"`
	CullMargin        float64 `yaml:"cull_margin"`
	ShootCooldown     int     `yaml:"shoot_cooldown"`
	ShootChance       float64 `yaml:"shoot_chance"`
	ShootTimeConstant float64 `yaml:"shoot_time_constant"` // Ticks on screen per unit of bonus chance
	ShootBonusCap     float64 `yaml:"shoot_bonus_cap"`
	ProjectileSpeed   float64 `yaml:"projectile_speed"`
	ProjectileRadius  float64 `yaml:"projectile_radius"`
	ProjectileMargin  float64 `yaml:"projectile_margin"`
}

// HugoCollectibles defines coins and power-ups.
type HugoCollectibles struct {
	CoinSize             float64 `yaml:"coin_size"`
	PowerUpSize          float64 `yaml:"powerup_size"`
	CoinSpawnDistance    float64 `yaml:"coin_spawn_distance"`
	MaxCoins             int     `yaml:"max_coins"`
	PowerUpSpawnDistance float64 `yaml:"powerup_spawn_distance"`
	PowerUpChance        float64 `yaml:"powerup_chance"`
	DoublePointsTicks    int     `yaml:"double_points_ticks"`
}

// HugoScoring defines how the score is computed.
type HugoScoring struct {
	PointsPerCoin  int     `yaml:"points_per_coin"`
	PointsPerMeter int     `yaml:"points_per_meter"`
	UnitsPerMeter  float64 `yaml:"units_per_meter"`
}

// DifficultyConfig defines the stepwise scroll speed progression.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	InitialLevel  float64 `yaml:"initial_level"` // 0.0 = base speed, 1.0 = max speed from the start
	BaseSpeed     float64 `yaml:"base_speed"`
	StartDistance float64 `yaml:"start_distance"` // Speed-ups begin past this distance
	Interval      float64 `yaml:"interval"`       // Distance between speed-ups
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
