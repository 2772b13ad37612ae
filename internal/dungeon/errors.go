package dungeon

import (
	"errors"
	"fmt"
)

var (
	// ErrCellOccupied is returned when a placement targets an occupied cell.
	ErrCellOccupied = errors.New("cell already occupied")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// ValidationError contains details about an input range violation.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ConfigurationError reports a grid too small for the requested
// density and occupant counts. No placement happens once it is returned.
type ConfigurationError struct {
	GridSize     int
	FreeCapacity int
	Required     int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"grid too small for requested density/occupant counts: size %d leaves %d free cells, need %d",
		e.GridSize, e.FreeCapacity, e.Required)
}

// PlacementExhaustedError reports that the retry cap ran out before every
// occupant of a category found a valid cell.
type PlacementExhaustedError struct {
	Category  Category
	Remaining int // Occupants of the category left unplaced
	Attempts  int // Draws spent on the occupant that gave up
}

func (e *PlacementExhaustedError) Error() string {
	return fmt.Sprintf("placement exhausted: %d %s occupant(s) unplaced after %d attempts",
		e.Remaining, e.Category, e.Attempts)
}
