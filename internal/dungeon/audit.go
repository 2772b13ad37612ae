package dungeon

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Audit checks a finished level against the placement invariants:
//   - player, exits, obstacles and items each sit on their own cell
//   - every occupied cell belongs to exactly one of them
//   - exits are corners
//   - enemies sit on unoccupied cells at least MinEnemyDistance from the player
//
// Returns nil if the level is consistent.
func Audit(l *Level) error {
	if l.Grid == nil {
		return fmt.Errorf("audit: level has no grid")
	}

	placed := mapset.New[Coord]()
	claim := func(c Coord, want Category) error {
		if placed.Has(c) {
			return fmt.Errorf("audit: %s placed on %s twice: %w", want, c, ErrCellOccupied)
		}
		placed.Put(c)
		cell, ok := l.Grid.Cell(c)
		if !ok {
			return fmt.Errorf("audit: %s at %s: %w", want, c, ErrOutOfBounds)
		}
		if !cell.Occupied || cell.Occupant != want {
			return fmt.Errorf("audit: cell %s holds %s, expected %s", c, cell.Occupant, want)
		}
		return nil
	}

	if err := claim(l.Player, CategoryPlayer); err != nil {
		return err
	}
	for _, c := range l.Exits {
		if !l.Grid.IsCorner(c) {
			return fmt.Errorf("audit: exit %s is not a corner", c)
		}
		if err := claim(c, CategoryExit); err != nil {
			return err
		}
	}
	for _, p := range l.Obstacles {
		if err := claim(p.Coord, CategoryObstacle); err != nil {
			return err
		}
	}
	for _, p := range l.Items {
		if err := claim(p.Coord, CategoryItem); err != nil {
			return err
		}
	}

	if occupied := l.Grid.OccupiedCount(); occupied != placed.Size() {
		return fmt.Errorf("audit: %d occupied cells but %d placements", occupied, placed.Size())
	}

	for _, e := range l.Enemies {
		if l.Grid.IsOccupied(e) {
			return fmt.Errorf("audit: enemy at %s shares a cell with %s", e, mustCell(l.Grid, e).Occupant)
		}
		if d := l.Player.Distance(e); d < l.MinEnemyDistance {
			return fmt.Errorf("audit: enemy at %s is %.2f from the player, minimum %.2f", e, d, l.MinEnemyDistance)
		}
	}
	return nil
}

// EnemyCells returns the distinct cells enemies spawned on.
func EnemyCells(l *Level) []Coord {
	cells := mapset.New[Coord]()
	for _, e := range l.Enemies {
		cells.Put(e)
	}
	result := make([]Coord, 0, cells.Size())
	cells.Each(func(c Coord) {
		result = append(result, c)
	})
	sortCoords(result)
	return result
}

func mustCell(g *Grid, c Coord) Cell {
	cell, _ := g.Cell(c)
	return cell
}
