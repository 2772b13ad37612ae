package dungeon_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
)

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name              string
		size, rocks, food int
		enemies, exits    int
		wantErr           bool
	}{
		{"reference level fits", 10, 40, 10, 3, 1, false},
		{"full density leaves nothing", 5, 50, 50, 1, 1, true},
		{"99 percent still counts as empty", 5, 60, 39, 20, 4, false},
		{"exactly full without density", 5, 0, 0, 23, 1, false},
		{"one over without density", 5, 0, 0, 24, 1, true},
		{"over 100 percent goes negative", 5, 100, 100, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dungeon.CheckCapacity(tt.size, tt.rocks, tt.food, tt.enemies, tt.exits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckCapacity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var cfgErr *dungeon.ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Errorf("expected *ConfigurationError, got %T", err)
				}
			}
		})
	}
}

func TestFreeCapacityTruncation(t *testing.T) {
	if got := dungeon.FreeCapacity(10, 40, 10); got != 100 {
		t.Errorf("50%% density: expected 100 free cells, got %d", got)
	}
	if got := dungeon.FreeCapacity(10, 50, 50); got != 0 {
		t.Errorf("100%% density: expected 0 free cells, got %d", got)
	}
	if got := dungeon.FreeCapacity(10, 100, 100); got != -100 {
		t.Errorf("200%% density: expected -100 free cells, got %d", got)
	}
}

func TestDensityCount(t *testing.T) {
	if got := dungeon.DensityCount(10, 40); got != 40 {
		t.Errorf("expected 40, got %d", got)
	}
	if got := dungeon.DensityCount(7, 33); got != 16 {
		t.Errorf("expected 16 (1617/100), got %d", got)
	}
	if got := dungeon.DensityCount(5, 0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := dungeon.DefaultGenerationConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*dungeon.GenerationConfig)
		code   string
	}{
		{"min too small", func(c *dungeon.GenerationConfig) { c.MinGridSize = 4 }, "MIN_GRID_SIZE"},
		{"max too big", func(c *dungeon.GenerationConfig) { c.MaxGridSize = 1001 }, "MAX_GRID_SIZE"},
		{"min over max", func(c *dungeon.GenerationConfig) { c.MinGridSize = 30; c.MaxGridSize = 10 }, "GRID_RANGE"},
		{"obstacle percent", func(c *dungeon.GenerationConfig) { c.Obstacles.Percent = 101 }, "OBSTACLE_PERCENT"},
		{"item percent", func(c *dungeon.GenerationConfig) { c.Items.Percent = -1 }, "ITEM_PERCENT"},
		{"no exits", func(c *dungeon.GenerationConfig) { c.Exits = 0 }, "EXITS"},
		{"five exits", func(c *dungeon.GenerationConfig) { c.Exits = 5 }, "EXITS"},
		{"negative enemies", func(c *dungeon.GenerationConfig) { c.Enemies = -1 }, "ENEMIES"},
		{"negative distance", func(c *dungeon.GenerationConfig) { c.MinEnemyDistance = -0.5 }, "ENEMY_DISTANCE"},
		{"negative variants", func(c *dungeon.GenerationConfig) { c.FloorVariants = -1 }, "VARIANTS"},
		{"negative attempts", func(c *dungeon.GenerationConfig) { c.MaxAttempts = -1 }, "MAX_ATTEMPTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := dungeon.DefaultGenerationConfig()
			tt.mutate(&cfg)

			var verr dungeon.ValidationError
			if err := cfg.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, verr.Code)
			}
		})
	}
}

func TestGridOccupyOnce(t *testing.T) {
	g := dungeon.NewGrid(5)

	if err := g.Occupy(dungeon.C(2, 3), dungeon.CategoryItem); err != nil {
		t.Fatalf("first Occupy failed: %v", err)
	}
	err := g.Occupy(dungeon.C(2, 3), dungeon.CategoryObstacle)
	if !errors.Is(err, dungeon.ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
	if cell, _ := g.Cell(dungeon.C(2, 3)); cell.Occupant != dungeon.CategoryItem {
		t.Errorf("occupant changed to %s", cell.Occupant)
	}
	if err := g.Occupy(dungeon.C(5, 0), dungeon.CategoryItem); !errors.Is(err, dungeon.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if g.OccupiedCount() != 1 {
		t.Errorf("expected 1 occupied cell, got %d", g.OccupiedCount())
	}
}

func TestGridCorners(t *testing.T) {
	g := dungeon.NewGrid(6)
	want := [4]dungeon.Coord{dungeon.C(0, 0), dungeon.C(0, 5), dungeon.C(5, 0), dungeon.C(5, 5)}
	if g.Corners() != want {
		t.Errorf("expected corners %v, got %v", want, g.Corners())
	}
	if g.IsCorner(dungeon.C(0, 3)) {
		t.Error("(0,3) is not a corner")
	}
}

func TestCoordDistance(t *testing.T) {
	if d := dungeon.C(0, 0).Distance(dungeon.C(3, 4)); d != 5 {
		t.Errorf("expected 5, got %f", d)
	}
}

func TestCategoryNames(t *testing.T) {
	for _, c := range []dungeon.Category{
		dungeon.CategoryFloor, dungeon.CategoryExit, dungeon.CategoryObstacle,
		dungeon.CategoryItem, dungeon.CategoryEnemy, dungeon.CategoryPlayer,
	} {
		parsed, ok := dungeon.ParseCategory(c.String())
		if !ok || parsed != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), parsed, ok)
		}
	}
	if dungeon.CategoryFloor.IsOccupant() {
		t.Error("floor tiles are not occupants")
	}
}
