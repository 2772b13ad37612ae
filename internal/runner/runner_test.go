package runner

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func fixedBase() config.LevelConfig {
	cfg := config.DefaultLevelConfig()
	cfg.Grid.MinSize = 10
	cfg.Grid.MaxSize = 10
	return cfg
}

func TestGenerateMatchesCore(t *testing.T) {
	r := New(fixedBase(), "", nil, nil)

	res, err := r.Generate(42, 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	direct, err := dungeon.NewGenerator().GenerateSeeded(fixedBase().ToGeneration(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if dungeon.RenderASCII(res.Level) != dungeon.RenderASCII(direct) {
		t.Error("runner at depth 0 should match a direct generation")
	}
	if res.Seed != 42 || res.Depth != 0 {
		t.Errorf("result metadata wrong: seed %d depth %d", res.Seed, res.Depth)
	}
}

func TestGenerateScalesWithDepth(t *testing.T) {
	r := New(fixedBase(), "", nil, nil)

	res, err := r.Generate(1, 10)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Level.Enemies) != 9 {
		t.Errorf("expected 9 enemies at max depth, got %d", len(res.Level.Enemies))
	}
	if len(res.Level.Obstacles) != 50 {
		t.Errorf("expected 50 obstacles at max depth, got %d", len(res.Level.Obstacles))
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	base := fixedBase()
	base.Exits.Count = 5

	_, err := New(base, "", nil, nil).Generate(1, 0)
	var verr dungeon.ValidationError
	if !errors.As(err, &verr) || verr.Code != "EXITS" {
		t.Errorf("expected EXITS validation error, got %v", err)
	}
}

func TestGenerateCapacityError(t *testing.T) {
	base := fixedBase()
	base.Grid.MinSize = 5
	base.Grid.MaxSize = 5
	base.Obstacles.Percent = 50
	base.Items.Percent = 50
	base.Difficulty.Enabled = false

	_, err := New(base, "", nil, nil).Generate(1, 0)
	var cfgErr *dungeon.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}
}

func TestSaveWithoutStore(t *testing.T) {
	r := New(fixedBase(), "", nil, nil)
	res, err := r.Generate(3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Save(res); !errors.Is(err, ErrNoStore) {
		t.Errorf("expected ErrNoStore, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := New(fixedBase(), config.DifficultyHard, store, nil)
	res, err := r.Generate(77, 2)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	id, err := r.Save(res)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	run, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run.Seed != 77 || run.Depth != 2 || run.Preset != "hard" {
		t.Errorf("run metadata wrong: %+v", run)
	}
	if run.Map != dungeon.RenderASCII(res.Level) {
		t.Error("stored map differs from render")
	}
	if !strings.Contains(run.Config, "min_size: 10") {
		t.Errorf("stored config missing grid: %s", run.Config)
	}
}

func TestEffectiveConfigDoesNotScaleTwice(t *testing.T) {
	r := New(fixedBase(), config.DifficultyHard, nil, nil)

	scaled := r.ConfigFor(4)
	eff := r.EffectiveConfig(4)
	if eff.Enemies.Count != scaled.Enemies.Count || eff.Obstacles.Percent != scaled.Obstacles.Percent ||
		eff.Items.Percent != scaled.Items.Percent {
		t.Fatalf("effective config should carry the depth 4 counts: %+v vs %+v", eff, scaled)
	}
	if eff.Difficulty.Enabled {
		t.Error("effective config must disable scaling")
	}

	data, err := config.Marshal(eff)
	if err != nil {
		t.Fatal(err)
	}
	reloaded, err := config.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	again := New(reloaded, "", nil, nil).ConfigFor(7)
	if again.Enemies.Count != eff.Enemies.Count {
		t.Errorf("enemies scaled again: %d -> %d", eff.Enemies.Count, again.Enemies.Count)
	}
	if again.Obstacles.Percent != eff.Obstacles.Percent {
		t.Errorf("obstacles scaled again: %d -> %d", eff.Obstacles.Percent, again.Obstacles.Percent)
	}
	if again.Items.Percent != eff.Items.Percent {
		t.Errorf("items scaled again: %d -> %d", eff.Items.Percent, again.Items.Percent)
	}
}
