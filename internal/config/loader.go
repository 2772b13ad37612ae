package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config file name searched for in the user and local config directories.
const levelFileName = "level.yaml"

// Source names reported by Resolve for non-file configs.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the level configuration.
// Search order: customPath -> ~/.dungeon/configs/level.yaml -> ./configs/level.yaml -> embedded default
func Load(customPath string) (LevelConfig, error) {
	cfg, _, err := Resolve(customPath)
	return cfg, err
}

// Resolve loads the level configuration like Load and also reports where
// it came from: a file path, SourceEmbedded or SourceBuiltin.
// Files only need to set the keys they change; the rest keep their defaults.
func Resolve(customPath string) (LevelConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LevelConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LevelConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(levelFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", levelFileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLevelYAML)
	if err != nil {
		return DefaultLevelConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of DefaultLevelConfig.
func Parse(data []byte) (LevelConfig, error) {
	cfg := DefaultLevelConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LevelConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg LevelConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeon", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *LevelConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the base level based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.MinDistance += 2
		cfg.Exits.Count = min(cfg.Exits.Count+1, 4)
	case DifficultyHard:
		cfg.Enemies.MinDistance = max(cfg.Enemies.MinDistance-1, 0)
		cfg.Exits.Count = 1
	}
}

// ParsePreset validates a preset name. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q (want easy, normal, hard or fixed)", s)
	}
}
