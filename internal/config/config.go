// Package config provides YAML-based level configuration loading and
// difficulty scaling for the dungeon generator.
package config

import "github.com/vovakirdan/tui-dungeon/internal/dungeon"

// LevelConfig contains all configuration for one generated level.
type LevelConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Obstacles  DensityConfig    `yaml:"obstacles"`
	Items      DensityConfig    `yaml:"items"`
	Exits      ExitsConfig      `yaml:"exits"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Generation GenerationLimits `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig bounds the randomly chosen grid size.
type GridConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// TilesConfig defines the floor tile set.
type TilesConfig struct {
	FloorVariants int `yaml:"floor_variants"`
}

// DensityConfig defines a density-placed category (rocks, food).
type DensityConfig struct {
	Percent  int `yaml:"percent"`
	Variants int `yaml:"variants"`
}

// ExitsConfig defines exit placement.
type ExitsConfig struct {
	Count int `yaml:"count"`
}

// EnemiesConfig defines enemy spawning.
type EnemiesConfig struct {
	Count       int     `yaml:"count"`
	MinDistance float64 `yaml:"min_distance"` // Closest spawn distance from the player
}

// GenerationLimits bounds the rejection sampling loops.
type GenerationLimits struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = retry forever
}

// DifficultyConfig defines how levels get harder with depth.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with depth.
type ProgressionConfig struct {
	MaxDepth int `yaml:"max_depth"` // Depth at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	EnemyMultiplier  float64 `yaml:"enemy_multiplier"`  // Multiplier added to enemy count at max difficulty
	ObstacleIncrease int     `yaml:"obstacle_increase"` // Obstacle percent added at max difficulty
	ItemReduction    int     `yaml:"item_reduction"`    // Item percent removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables depth scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ToGeneration converts the YAML config into the generator's input.
func (c LevelConfig) ToGeneration() dungeon.GenerationConfig {
	return dungeon.GenerationConfig{
		MinGridSize:      c.Grid.MinSize,
		MaxGridSize:      c.Grid.MaxSize,
		FloorVariants:    c.Tiles.FloorVariants,
		Obstacles:        dungeon.DensitySpec{Percent: c.Obstacles.Percent, Variants: c.Obstacles.Variants},
		Items:            dungeon.DensitySpec{Percent: c.Items.Percent, Variants: c.Items.Variants},
		Exits:            c.Exits.Count,
		Enemies:          c.Enemies.Count,
		MinEnemyDistance: c.Enemies.MinDistance,
		MaxAttempts:      c.Generation.MaxAttempts,
	}
}

// Validate checks the config against the generator's input ranges.
func (c LevelConfig) Validate() error {
	return c.ToGeneration().Validate()
}
