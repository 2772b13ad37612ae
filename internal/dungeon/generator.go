package dungeon

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Generator runs level generation. A Generator holds only collaborators;
// every Generate call is an independent run that owns its own Grid.
type Generator struct {
	logger  *log.Logger
	sink    Sink
	onPhase func(Phase)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for phase and placement diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSink forwards every placement event to s as it happens.
func WithSink(s Sink) Option {
	return func(g *Generator) {
		g.sink = s
	}
}

// WithPhaseHook calls fn on every state machine transition.
func WithPhaseHook(fn func(Phase)) Option {
	return func(g *Generator) {
		g.onPhase = fn
	}
}

// NewGenerator creates a generator. Without WithLogger it logs nowhere.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateSeeded runs Generate with a SimpleRNG seeded from seed and
// records the seed on the level.
func (g *Generator) GenerateSeeded(cfg GenerationConfig, seed uint64) (*Level, error) {
	level, err := g.Generate(cfg, NewRNG(seed))
	if err != nil {
		return nil, err
	}
	level.Seed = seed
	return level, nil
}

// Generate validates capacity, builds the floor and places exits,
// obstacles, items and enemies, in that order, drawing only from rng.
//
// A capacity failure returns a *ConfigurationError before anything is
// placed. Running out of attempts returns a *PlacementExhaustedError.
func (g *Generator) Generate(cfg GenerationConfig, rng Rand) (*Level, error) {
	if rng == nil {
		return nil, errors.New("dungeon: nil random source")
	}
	r := &run{gen: g, cfg: cfg, rng: rng}
	level, err := r.execute()
	if err != nil {
		r.enter(PhaseFailed)
		g.logger.Warn("generation failed", "error", err)
		return nil, err
	}
	r.enter(PhaseComplete)
	return level, nil
}

// run is the state of a single generation.
type run struct {
	gen   *Generator
	cfg   GenerationConfig
	rng   Rand
	phase Phase
	size  int
	grid  *Grid
	level *Level
}

func (r *run) execute() (*Level, error) {
	if err := r.resolve(); err != nil {
		return nil, err
	}

	steps := []struct {
		phase Phase
		fn    func() error
	}{
		{PhaseValidating, r.validateCapacity},
		{PhaseBuilding, r.buildFloor},
		{PhasePlacingExits, r.placeExits},
		{PhasePlacingObstacles, func() error {
			return r.placeDensity(CategoryObstacle, r.cfg.Obstacles)
		}},
		{PhasePlacingItems, func() error {
			return r.placeDensity(CategoryItem, r.cfg.Items)
		}},
		{PhasePlacingEnemies, r.placeEnemies},
	}

	for _, step := range steps {
		r.enter(step.phase)
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("dungeon: %s: %w", step.phase, err)
		}
	}
	return r.level, nil
}

func (r *run) enter(p Phase) {
	r.phase = p
	r.gen.logger.Debug("phase", "phase", p.String(), "size", r.size)
	if r.gen.onPhase != nil {
		r.gen.onPhase(p)
	}
}

// resolve draws the grid size and fixes the player origin.
func (r *run) resolve() error {
	if r.cfg.MinGridSize < 1 || r.cfg.MinGridSize > r.cfg.MaxGridSize {
		return ValidationError{
			Code:    "GRID_RANGE",
			Message: fmt.Sprintf("cannot draw a grid size from [%d, %d]", r.cfg.MinGridSize, r.cfg.MaxGridSize),
		}
	}
	r.size = rangeInclusive(r.rng, r.cfg.MinGridSize, r.cfg.MaxGridSize)

	player := C(r.size/2, r.size/2)
	if r.cfg.PlayerStart != nil {
		player = *r.cfg.PlayerStart
		if player.X < 0 || player.X >= r.size || player.Y < 0 || player.Y >= r.size {
			return ValidationError{
				Code:    "PLAYER_START",
				Message: fmt.Sprintf("player start %s outside %dx%d grid", player, r.size, r.size),
			}
		}
	}

	r.level = &Level{
		Size:             r.size,
		Player:           player,
		MinEnemyDistance: r.cfg.MinEnemyDistance,
	}
	r.gen.logger.Info("generating level", "size", r.size, "player", player.String())
	return nil
}

func (r *run) validateCapacity() error {
	return CheckCapacity(r.size, r.cfg.Obstacles.Percent, r.cfg.Items.Percent, r.cfg.Enemies, r.cfg.Exits)
}

func (r *run) buildFloor() error {
	r.grid = NewGrid(r.size)
	r.level.Grid = r.grid

	for x := 0; x < r.size; x++ {
		for y := 0; y < r.size; y++ {
			c := C(x, y)
			variant := pickVariant(r.rng, r.cfg.FloorVariants)
			r.grid.setFloorVariant(c, variant)
			r.emit(Placement{Category: CategoryFloor, Coord: c, Variant: variant})
		}
	}

	if err := r.grid.Occupy(r.level.Player, CategoryPlayer); err != nil {
		return err
	}
	r.emit(Placement{Category: CategoryPlayer, Coord: r.level.Player, Variant: NoVariant})
	return nil
}

func (r *run) placeExits() error {
	corners := r.grid.Corners()
	for i := 0; i < r.cfg.Exits; i++ {
		c, err := r.sample(CategoryExit, r.cfg.Exits-i,
			func() Coord { return corners[r.rng.Intn(len(corners))] },
			func(c Coord) bool { return !r.grid.IsOccupied(c) },
		)
		if err != nil {
			return err
		}
		if err := r.grid.Occupy(c, CategoryExit); err != nil {
			return err
		}
		r.level.Exits = append(r.level.Exits, c)
		r.emit(Placement{Category: CategoryExit, Coord: c, Variant: NoVariant})
	}
	return nil
}

// placeDensity fills percent of the grid with one category.
func (r *run) placeDensity(category Category, spec DensitySpec) error {
	count := DensityCount(r.size, spec.Percent)
	r.gen.logger.Debug("density placement", "category", category.String(), "count", count)

	for i := 0; i < count; i++ {
		c, err := r.sample(category, count-i, r.randomCoord,
			func(c Coord) bool { return !r.grid.IsOccupied(c) },
		)
		if err != nil {
			return err
		}
		if err := r.grid.Occupy(c, category); err != nil {
			return err
		}
		p := Placement{Category: category, Coord: c, Variant: pickVariant(r.rng, spec.Variants)}
		if category == CategoryObstacle {
			r.level.Obstacles = append(r.level.Obstacles, p)
		} else {
			r.level.Items = append(r.level.Items, p)
		}
		r.emit(p)
	}
	return nil
}

// placeEnemies spawns enemies away from the player. Enemy cells are left
// unoccupied, so several enemies may share one cell.
func (r *run) placeEnemies() error {
	player := r.level.Player
	for i := 0; i < r.cfg.Enemies; i++ {
		c, err := r.sample(CategoryEnemy, r.cfg.Enemies-i, r.randomCoord,
			func(c Coord) bool {
				return player.Distance(c) >= r.cfg.MinEnemyDistance && !r.grid.IsOccupied(c)
			},
		)
		if err != nil {
			return err
		}
		r.level.Enemies = append(r.level.Enemies, c)
		r.emit(Placement{Category: CategoryEnemy, Coord: c, Variant: NoVariant})
	}
	return nil
}

// sample draws candidates until accept passes or the attempt cap is hit.
func (r *run) sample(category Category, remaining int, draw func() Coord, accept func(Coord) bool) (Coord, error) {
	for attempt := 1; ; attempt++ {
		c := draw()
		if accept(c) {
			return c, nil
		}
		if r.cfg.MaxAttempts > 0 && attempt >= r.cfg.MaxAttempts {
			return Coord{}, &PlacementExhaustedError{
				Category:  category,
				Remaining: remaining,
				Attempts:  attempt,
			}
		}
	}
}

func (r *run) randomCoord() Coord {
	return C(r.rng.Intn(r.size), r.rng.Intn(r.size))
}

func (r *run) emit(p Placement) {
	r.level.Placements = append(r.level.Placements, p)
	if r.gen.sink != nil {
		r.gen.sink.Place(p)
	}
}
