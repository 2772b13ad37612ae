package dungeon

import (
	"fmt"
	"math"
)

// Coord represents a 2D coordinate on the level grid.
// X increases to the right, Y increases upward (world coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal returns true if two coordinates are the same.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Distance returns the Euclidean distance to another coordinate.
func (c Coord) Distance(other Coord) float64 {
	return math.Hypot(float64(c.X-other.X), float64(c.Y-other.Y))
}

// Less orders coordinates by X then Y.
func (c Coord) Less(other Coord) bool {
	if c.X != other.X {
		return c.X < other.X
	}
	return c.Y < other.Y
}
