package dungeon

import (
	"fmt"
	"sort"
)

// Cell is one grid coordinate's occupancy record.
// Occupant and Variant are the payload tag handed to rendering collaborators.
type Cell struct {
	Occupied bool
	Occupant Category
	Variant  int // Floor tile variant
}

// Grid maps every coordinate of a square level to its Cell.
// A Grid is owned by one generation run and read-only afterwards.
type Grid struct {
	size  int
	cells map[Coord]*Cell
}

// NewGrid creates a square grid with every cell present and unoccupied.
func NewGrid(size int) *Grid {
	g := &Grid{
		size:  size,
		cells: make(map[Coord]*Cell, size*size),
	}
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			g.cells[C(x, y)] = &Cell{Variant: NoVariant}
		}
	}
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Cell returns a copy of the cell at the given coordinate.
// The second result is false if the coordinate is not a key of the grid.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	cell, ok := g.cells[c]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// IsOccupied reports whether the cell at c is occupied.
// Out-of-bounds coordinates report false.
func (g *Grid) IsOccupied(c Coord) bool {
	cell, ok := g.cells[c]
	return ok && cell.Occupied
}

// Occupy marks the cell at c occupied by the given category.
// A cell is never occupied twice and never unmarked.
func (g *Grid) Occupy(c Coord, occupant Category) error {
	cell, ok := g.cells[c]
	if !ok {
		return fmt.Errorf("occupy %s: %w", c, ErrOutOfBounds)
	}
	if cell.Occupied {
		return fmt.Errorf("occupy %s with %s: held by %s: %w", c, occupant, cell.Occupant, ErrCellOccupied)
	}
	cell.Occupied = true
	cell.Occupant = occupant
	return nil
}

// setFloorVariant records the floor tile variant drawn for c.
func (g *Grid) setFloorVariant(c Coord, variant int) {
	if cell, ok := g.cells[c]; ok {
		cell.Variant = variant
	}
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// OccupiedCoords returns all occupied coordinates, ordered by X then Y.
func (g *Grid) OccupiedCoords() []Coord {
	coords := make([]Coord, 0)
	for c, cell := range g.cells {
		if cell.Occupied {
			coords = append(coords, c)
		}
	}
	sortCoords(coords)
	return coords
}

// CountByOccupant returns how many cells each occupant category holds.
func (g *Grid) CountByOccupant() map[Category]int {
	counts := make(map[Category]int)
	for _, cell := range g.cells {
		if cell.Occupied {
			counts[cell.Occupant]++
		}
	}
	return counts
}

// Corners returns the four corner coordinates in the order
// bottom-left, top-left, bottom-right, top-right.
func (g *Grid) Corners() [4]Coord {
	last := g.size - 1
	return [4]Coord{
		C(0, 0),
		C(0, last),
		C(last, 0),
		C(last, last),
	}
}

// IsCorner returns true if c is one of the four corners.
func (g *Grid) IsCorner(c Coord) bool {
	for _, corner := range g.Corners() {
		if corner == c {
			return true
		}
	}
	return false
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
}
