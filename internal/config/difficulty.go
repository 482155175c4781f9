package config

import "math"

// DifficultyManager derives the scroll speed from distance traveled.
// Speed starts at base (raised by the initial level) and grows by a fixed
// step every interval once the start distance is passed, capped at max.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// InitialSpeed returns the scroll speed at distance zero.
func (d *DifficultyManager) InitialSpeed() float64 {
	base := d.cfg.BaseSpeed + d.initialLevel*(d.cfg.MaxSpeed-d.cfg.BaseSpeed)
	return math.Min(base, d.cfg.MaxSpeed)
}

// ScrollSpeed returns the scroll speed for the given distance.
// The result is non-decreasing in distance and never exceeds MaxSpeed.
func (d *DifficultyManager) ScrollSpeed(distance float64) float64 {
	speed := d.InitialSpeed()
	if !d.cfg.Enabled || d.cfg.Interval <= 0 || distance <= d.cfg.StartDistance {
		return speed
	}

	steps := math.Floor((distance - d.cfg.StartDistance) / d.cfg.Interval)
	speed += steps * d.cfg.SpeedStep
	return math.Min(speed, d.cfg.MaxSpeed)
}

// Level returns how far the speed is between base and max (0.0 to 1.0).
func (d *DifficultyManager) Level(distance float64) float64 {
	span := d.cfg.MaxSpeed - d.cfg.BaseSpeed
	if span <= 0 {
		return 1.0
	}
	return clampF((d.ScrollSpeed(distance)-d.cfg.BaseSpeed)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
