package config

import "math"

// DifficultyManager derives per-level game parameters from the
// progression settings.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a stage, starting at 1.
// With progression disabled, stage 1 and every later stage play at the
// initial level.
func (d *DifficultyManager) Level(stage int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(stage-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemyMoveFrames shortens the enemy step interval as difficulty rises.
// The result never drops below floor.
func (d *DifficultyManager) EnemyMoveFrames(base, floor, stage int) int {
	reduction := int(math.Round(d.Level(stage) * float64(d.cfg.Scaling.EnemySpeedup)))
	result := base - reduction
	if result < floor {
		result = floor
	}
	return result
}

// Fill raises the destructible share as difficulty rises, capped at 1.
func (d *DifficultyManager) Fill(base float64, stage int) float64 {
	return clampF(base+d.Level(stage)*d.cfg.Scaling.FillIncrease, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
