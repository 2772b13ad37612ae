package dungeon

import "fmt"

// Input ranges accepted by GenerationConfig.Validate.
const (
	MinGridSizeLimit = 5
	MaxGridSizeLimit = 1000
	MinExits         = 1
	MaxExits         = 4
	MaxPercent       = 100
)

// DefaultMaxAttempts caps the draws spent on a single occupant.
const DefaultMaxAttempts = 10000

// DensitySpec configures one density-placed category.
type DensitySpec struct {
	Percent  int // Share of grid cells to fill (0-100)
	Variants int // Number of sprite variants to choose from (0 = none)
}

// GenerationConfig is the immutable input of a generation run.
type GenerationConfig struct {
	MinGridSize int
	MaxGridSize int

	FloorVariants int
	Obstacles     DensitySpec
	Items         DensitySpec

	Exits            int
	Enemies          int
	MinEnemyDistance float64 // Closest an enemy may spawn to the player

	// MaxAttempts caps random draws per occupant; 0 retries forever.
	MaxAttempts int

	// PlayerStart overrides the grid-centre player origin when set.
	PlayerStart *Coord
}

// DefaultGenerationConfig returns the stock level parameters.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MinGridSize:      5,
		MaxGridSize:      20,
		FloorVariants:    4,
		Obstacles:        DensitySpec{Percent: 40, Variants: 3},
		Items:            DensitySpec{Percent: 10, Variants: 2},
		Exits:            1,
		Enemies:          3,
		MinEnemyDistance: 2,
		MaxAttempts:      DefaultMaxAttempts,
	}
}

// Validate checks every field against its declared range.
// Returns the first violation as a ValidationError.
func (c GenerationConfig) Validate() error {
	checks := []struct {
		ok      bool
		code    string
		message string
	}{
		{c.MinGridSize >= MinGridSizeLimit && c.MinGridSize <= MaxGridSizeLimit, "MIN_GRID_SIZE",
			fmt.Sprintf("min grid size %d outside [%d, %d]", c.MinGridSize, MinGridSizeLimit, MaxGridSizeLimit)},
		{c.MaxGridSize >= MinGridSizeLimit && c.MaxGridSize <= MaxGridSizeLimit, "MAX_GRID_SIZE",
			fmt.Sprintf("max grid size %d outside [%d, %d]", c.MaxGridSize, MinGridSizeLimit, MaxGridSizeLimit)},
		{c.MinGridSize <= c.MaxGridSize, "GRID_RANGE",
			fmt.Sprintf("min grid size %d exceeds max %d", c.MinGridSize, c.MaxGridSize)},
		{c.Obstacles.Percent >= 0 && c.Obstacles.Percent <= MaxPercent, "OBSTACLE_PERCENT",
			fmt.Sprintf("obstacle percent %d outside [0, %d]", c.Obstacles.Percent, MaxPercent)},
		{c.Items.Percent >= 0 && c.Items.Percent <= MaxPercent, "ITEM_PERCENT",
			fmt.Sprintf("item percent %d outside [0, %d]", c.Items.Percent, MaxPercent)},
		{c.Exits >= MinExits && c.Exits <= MaxExits, "EXITS",
			fmt.Sprintf("exit count %d outside [%d, %d]", c.Exits, MinExits, MaxExits)},
		{c.Enemies >= 0, "ENEMIES",
			fmt.Sprintf("enemy count %d is negative", c.Enemies)},
		{c.MinEnemyDistance >= 0, "ENEMY_DISTANCE",
			fmt.Sprintf("enemy distance %g is negative", c.MinEnemyDistance)},
		{c.FloorVariants >= 0 && c.Obstacles.Variants >= 0 && c.Items.Variants >= 0, "VARIANTS",
			"variant counts must not be negative"},
		{c.MaxAttempts >= 0, "MAX_ATTEMPTS",
			fmt.Sprintf("max attempts %d is negative", c.MaxAttempts)},
	}

	for _, check := range checks {
		if !check.ok {
			return ValidationError{Code: check.code, Message: check.message}
		}
	}
	return nil
}
