package dungeon

// Category identifies what a placement puts on the grid.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryFloor
	CategoryPlayer
	CategoryExit
	CategoryObstacle
	CategoryItem
	CategoryEnemy
)

// NoVariant marks placements that carry no sprite variant.
const NoVariant = -1

var categoryNames = map[Category]string{
	CategoryNone:     "none",
	CategoryFloor:    "floor",
	CategoryPlayer:   "player",
	CategoryExit:     "exit",
	CategoryObstacle: "obstacle",
	CategoryItem:     "item",
	CategoryEnemy:    "enemy",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsOccupant reports whether the category occupies the cell it is placed on.
// Floor tiles are not occupants; enemies are occupants but never mark cells.
func (c Category) IsOccupant() bool {
	switch c {
	case CategoryPlayer, CategoryExit, CategoryObstacle, CategoryItem, CategoryEnemy:
		return true
	}
	return false
}

// ParseCategory converts a category name back to a Category.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if name == s {
			return c, true
		}
	}
	return CategoryNone, false
}

// Placement is a single "place occupant X at coordinate Y" event.
// Rendering collaborators consume these; the core never instantiates anything.
type Placement struct {
	Category Category
	Coord    Coord
	Variant  int
}

// Sink receives placement events in generation order.
type Sink interface {
	Place(p Placement)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(p Placement)

// Place calls f(p).
func (f SinkFunc) Place(p Placement) {
	f(p)
}

// Phase is a step of the generation state machine.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseValidating
	PhaseBuilding
	PhasePlacingExits
	PhasePlacingObstacles
	PhasePlacingItems
	PhasePlacingEnemies
	PhaseComplete
	PhaseFailed
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseValidating:
		return "validating"
	case PhaseBuilding:
		return "building floor"
	case PhasePlacingExits:
		return "placing exits"
	case PhasePlacingObstacles:
		return "placing obstacles"
	case PhasePlacingItems:
		return "placing items"
	case PhasePlacingEnemies:
		return "placing enemies"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
