package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultLevelConfig() {
		t.Errorf("embedded defaults differ from DefaultLevelConfig:\n%+v\n%+v", cfg, DefaultLevelConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestResolveCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  min_size: 10\n  max_size: 10\nenemies:\n  count: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if source != path {
		t.Errorf("expected source %s, got %s", path, source)
	}
	if cfg.Grid.MinSize != 10 || cfg.Grid.MaxSize != 10 {
		t.Errorf("grid not loaded: %+v", cfg.Grid)
	}
	if cfg.Enemies.Count != 7 {
		t.Errorf("expected 7 enemies, got %d", cfg.Enemies.Count)
	}
	// Unset keys keep their defaults
	if cfg.Obstacles.Percent != 40 || cfg.Enemies.MinDistance != 2 {
		t.Errorf("defaults lost: obstacles %d, distance %g", cfg.Obstacles.Percent, cfg.Enemies.MinDistance)
	}
}

func TestResolveCustomPathErrors(t *testing.T) {
	if _, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Resolve(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestResolveSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Nothing on disk: embedded default
	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("expected embedded source, got %s", source)
	}
	if cfg.Items.Percent != 10 {
		t.Errorf("expected default items, got %d", cfg.Items.Percent)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "level.yaml"), []byte("items:\n  percent: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ = Resolve("")
	if source != filepath.Join("configs", "level.yaml") || cfg.Items.Percent != 20 {
		t.Errorf("expected local config, got %s with items %d", source, cfg.Items.Percent)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".dungeon", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "level.yaml"), []byte("items:\n  percent: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ = Resolve("")
	if source != filepath.Join(userDir, "level.yaml") || cfg.Items.Percent != 30 {
		t.Errorf("expected user config, got %s with items %d", source, cfg.Items.Percent)
	}
}

func TestToGeneration(t *testing.T) {
	cfg := DefaultLevelConfig()
	gen := cfg.ToGeneration()

	if gen.MinGridSize != 5 || gen.MaxGridSize != 20 {
		t.Errorf("grid range not copied: %d-%d", gen.MinGridSize, gen.MaxGridSize)
	}
	if gen.Obstacles.Percent != 40 || gen.Obstacles.Variants != 3 {
		t.Errorf("obstacles not copied: %+v", gen.Obstacles)
	}
	if gen.Items.Percent != 10 || gen.Items.Variants != 2 {
		t.Errorf("items not copied: %+v", gen.Items)
	}
	if gen.Exits != 1 || gen.Enemies != 3 || gen.MinEnemyDistance != 2 {
		t.Errorf("occupants not copied: %+v", gen)
	}
	if gen.MaxAttempts != 10000 {
		t.Errorf("expected 10000 attempts, got %d", gen.MaxAttempts)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultLevelConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Exits.Count != 2 || cfg.Enemies.MinDistance != 4 {
		t.Errorf("easy preset: exits %d, distance %g", cfg.Exits.Count, cfg.Enemies.MinDistance)
	}

	cfg = DefaultLevelConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 || cfg.Enemies.MinDistance != 1 {
		t.Errorf("hard preset: level %g, distance %g", cfg.Difficulty.InitialLevel, cfg.Enemies.MinDistance)
	}

	cfg = DefaultLevelConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable scaling")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyForDepth(t *testing.T) {
	cfg := DefaultLevelConfig()
	dm := NewDifficultyManager(cfg.Difficulty)

	first := dm.ForDepth(cfg, 0)
	if first.Enemies.Count != 3 || first.Obstacles.Percent != 40 || first.Items.Percent != 10 {
		t.Errorf("depth 0 should keep base values, got %d/%d/%d",
			first.Enemies.Count, first.Obstacles.Percent, first.Items.Percent)
	}

	deepest := dm.ForDepth(cfg, 10)
	if deepest.Enemies.Count != 9 || deepest.Obstacles.Percent != 50 || deepest.Items.Percent != 5 {
		t.Errorf("max depth scaling wrong, got %d/%d/%d",
			deepest.Enemies.Count, deepest.Obstacles.Percent, deepest.Items.Percent)
	}

	beyond := dm.ForDepth(cfg, 50)
	if beyond.Enemies.Count != deepest.Enemies.Count {
		t.Errorf("depth past max should clamp, got %d enemies", beyond.Enemies.Count)
	}

	cfg.Difficulty.Enabled = false
	fixed := NewDifficultyManager(cfg.Difficulty).ForDepth(cfg, 10)
	if fixed.Enemies.Count != 3 {
		t.Errorf("disabled scaling should keep base enemies, got %d", fixed.Enemies.Count)
	}
}
