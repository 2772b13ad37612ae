package config

import "math"

// DifficultyManager derives per-depth level parameters from a base config.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether depth scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0) for a dungeon depth.
// Depth 0 is the first floor.
func (d *DifficultyManager) Level(depth int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxDepth := float64(d.cfg.Progression.MaxDepth)
	if maxDepth <= 0 {
		maxDepth = 1 // Prevent division by zero
	}

	progress := clampF(float64(depth)/maxDepth, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Enemies returns the enemy count for a depth.
func (d *DifficultyManager) Enemies(base int, depth int) int {
	level := d.Level(depth)
	return int(float64(base) * (1.0 + level*d.cfg.Scaling.EnemyMultiplier))
}

// ObstaclePercent returns the obstacle density for a depth, capped at 100.
func (d *DifficultyManager) ObstaclePercent(base int, depth int) int {
	level := d.Level(depth)
	return min(base+int(level*float64(d.cfg.Scaling.ObstacleIncrease)), 100)
}

// ItemPercent returns the item density for a depth, never below zero.
func (d *DifficultyManager) ItemPercent(base int, depth int) int {
	level := d.Level(depth)
	return max(base-int(level*float64(d.cfg.Scaling.ItemReduction)), 0)
}

// ForDepth returns a copy of cfg scaled for the given depth.
func (d *DifficultyManager) ForDepth(cfg LevelConfig, depth int) LevelConfig {
	scaled := cfg
	scaled.Enemies.Count = d.Enemies(cfg.Enemies.Count, depth)
	scaled.Obstacles.Percent = d.ObstaclePercent(cfg.Obstacles.Percent, depth)
	scaled.Items.Percent = d.ItemPercent(cfg.Items.Percent, depth)
	return scaled
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
