package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded HugoConfig
	if err := yaml.Unmarshal(GetDefaultYAML("hugo"), &embedded); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}

	want := DefaultHugoConfig()
	a, _ := MarshalHugo(embedded)
	b, _ := MarshalHugo(want)
	if string(a) != string(b) {
		t.Errorf("embedded defaults differ from DefaultHugoConfig()\nembedded:\n%s\nhardcoded:\n%s", a, b)
	}

	if err := want.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadHugoCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hugo.yaml")
	data := []byte("player:\n  climb_speed: 6\ndifficulty:\n  max_speed: 8\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHugo(path)
	if err != nil {
		t.Fatalf("LoadHugo: %v", err)
	}
	if cfg.Player.ClimbSpeed != 6 {
		t.Errorf("climb_speed = %v, expected 6", cfg.Player.ClimbSpeed)
	}
	if cfg.Difficulty.MaxSpeed != 8 {
		t.Errorf("max_speed = %v, expected 8", cfg.Difficulty.MaxSpeed)
	}
	// Keys missing from the file keep their defaults.
	if cfg.World.NumLanes != 3 || len(cfg.Obstacles.Patterns) != 6 {
		t.Errorf("defaults not preserved: lanes=%d patterns=%d", cfg.World.NumLanes, len(cfg.Obstacles.Patterns))
	}
}

func TestLoadHugoErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "world: [unclosed",
			wantErr: "failed to parse",
		},
		{
			name: "pattern without free lane",
			content: `obstacles:
  patterns:
    - { name: wall, occupied: [0, 1, 2], free: [] }
`,
			wantErr: "no free lanes",
		},
		{
			name:    "inverted gaps",
			content: "obstacles:\n  min_gap: 800\n  max_gap: 400\n",
			wantErr: "min_gap",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadHugo(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}

	if _, err := LoadHugo(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestValidatePatterns(t *testing.T) {
	tests := []struct {
		name     string
		patterns []PatternConfig
		wantErr  string
	}{
		{
			name:     "valid",
			patterns: []PatternConfig{{Name: "left", Occupied: []int{0}, Free: []int{1, 2}}},
		},
		{
			name:    "empty table",
			wantErr: "empty",
		},
		{
			name:     "overlap",
			patterns: []PatternConfig{{Name: "x", Occupied: []int{0, 1}, Free: []int{1, 2}}},
			wantErr:  "lane 1 listed in occupied and free",
		},
		{
			name:     "missing lane",
			patterns: []PatternConfig{{Name: "x", Occupied: []int{0}, Free: []int{1}}},
			wantErr:  "lane 2 is neither",
		},
		{
			name:     "out of range",
			patterns: []PatternConfig{{Name: "x", Occupied: []int{3}, Free: []int{0, 1, 2}}},
			wantErr:  "out of range",
		},
		{
			name:     "no occupied",
			patterns: []PatternConfig{{Name: "x", Free: []int{0, 1, 2}}},
			wantErr:  "no occupied lanes",
		},
		{
			name: "duplicate names",
			patterns: []PatternConfig{
				{Name: "x", Occupied: []int{0}, Free: []int{1, 2}},
				{Name: "x", Occupied: []int{1}, Free: []int{0, 2}},
			},
			wantErr: "duplicate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePatterns(tc.patterns, 3)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := DefaultHugoConfig()
	cfg.Player.HitboxScale = 1.5
	cfg.Difficulty.Interval = 0
	cfg.Player.StartLane = 7

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"hitbox_scale", "interval", "start_lane"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q: %v", want, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HugoConfig)
		wantErr string
	}{
		{"defaults", func(*HugoConfig) {}, ""},
		{"player hitbox just below sprite", func(c *HugoConfig) { c.Player.HitboxScale = 0.99 }, ""},
		{"player hitbox equals sprite", func(c *HugoConfig) { c.Player.HitboxScale = 1 }, "player: hitbox_scale"},
		{"obstacle hitbox equals sprite", func(c *HugoConfig) { c.Obstacles.HitboxScale = 1 }, "obstacles: hitbox_scale"},
		{"zero hitbox", func(c *HugoConfig) { c.Player.HitboxScale = 0 }, "player: hitbox_scale"},
		{"no enemies allowed", func(c *HugoConfig) { c.Enemies.MaxOnScreen = 0 }, ""},
		{"negative max enemies", func(c *HugoConfig) { c.Enemies.MaxOnScreen = -1 }, "max_on_screen"},
		{"negative enemy spawn distance", func(c *HugoConfig) { c.Enemies.SpawnDistance = -10 }, "enemies: spawn_distance"},
		{"zero enemy spawn distance", func(c *HugoConfig) { c.Enemies.SpawnDistance = 0 }, "enemies: spawn_distance"},
		{"negative shoot cooldown", func(c *HugoConfig) { c.Enemies.ShootCooldown = -1 }, "shoot_cooldown"},
		{"shoot chance above one", func(c *HugoConfig) { c.Enemies.ShootChance = 1.5 }, "shoot_chance"},
		{"negative bottom chance", func(c *HugoConfig) { c.Enemies.FromBottomChance = -0.1 }, "from_bottom_chance"},
		{"negative coin spawn distance", func(c *HugoConfig) { c.Collectibles.CoinSpawnDistance = -1 }, "coin_spawn_distance"},
		{"zero powerup spawn distance", func(c *HugoConfig) { c.Collectibles.PowerUpSpawnDistance = 0 }, "powerup_spawn_distance"},
		{"negative max coins", func(c *HugoConfig) { c.Collectibles.MaxCoins = -3 }, "max_coins"},
		{"powerup chance above one", func(c *HugoConfig) { c.Collectibles.PowerUpChance = 2 }, "powerup_chance"},
		{"zero coin size", func(c *HugoConfig) { c.Collectibles.CoinSize = 0 }, "coin_size"},
		{"negative powerup size", func(c *HugoConfig) { c.Collectibles.PowerUpSize = -5 }, "powerup_size"},
		{"negative double points", func(c *HugoConfig) { c.Collectibles.DoublePointsTicks = -1 }, "double_points_ticks"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHugoConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyHugoPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		maxOnScreen int
	}{
		{DifficultyEasy, true, 0.0, 1},
		{DifficultyNormal, true, 0.3, 2},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 2},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultHugoConfig()
			ApplyHugoPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Enemies.MaxOnScreen != tc.maxOnScreen {
				t.Errorf("MaxOnScreen = %d, expected %d", cfg.Enemies.MaxOnScreen, tc.maxOnScreen)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if p, ok := ParsePreset(""); !ok || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
