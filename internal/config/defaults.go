package config

import (
	_ "embed"
)

//go:embed defaults/level.yaml
var defaultLevelYAML []byte

// DefaultLevelConfig returns the default level configuration.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Grid: GridConfig{
			MinSize: 5,
			MaxSize: 20,
		},
		Tiles: TilesConfig{
			FloorVariants: 4,
		},
		Obstacles: DensityConfig{
			Percent:  40,
			Variants: 3,
		},
		Items: DensityConfig{
			Percent:  10,
			Variants: 2,
		},
		Exits: ExitsConfig{
			Count: 1,
		},
		Enemies: EnemiesConfig{
			Count:       3,
			MinDistance: 2,
		},
		Generation: GenerationLimits{
			MaxAttempts: 10000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				MaxDepth: 10,
			},
			Scaling: ScalingConfig{
				EnemyMultiplier:  2.0,
				ObstacleIncrease: 10,
				ItemReduction:    5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLevelYAML
}
