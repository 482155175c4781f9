package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHugo loads and validates the Hugo configuration.
// Search order: customPath -> ~/.arcade/configs/hugo.yaml -> ./configs/hugo.yaml -> embedded default
func LoadHugo(customPath string) (HugoConfig, error) {
	cfg, err := readHugo(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid hugo config: %w", err)
	}
	return cfg, nil
}

func readHugo(customPath string) (HugoConfig, error) {
	// Unset keys keep their default values.
	cfg := DefaultHugoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hugo.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultHugoConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hugo.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultHugoConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHugoYAML, &cfg); err != nil {
		return DefaultHugoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHugoPreset modifies the config based on a difficulty preset.
func ApplyHugoPreset(cfg *HugoConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.MaxOnScreen = 1
	case DifficultyHard:
		cfg.Obstacles.MinGap = cfg.Obstacles.MinGap * 3 / 4
		cfg.Obstacles.MaxGap = max(cfg.Obstacles.MinGap, cfg.Obstacles.MaxGap*3/4)
	}
}

// MarshalHugo encodes a config back to YAML.
func MarshalHugo(cfg HugoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
