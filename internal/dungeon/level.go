package dungeon

// Level is the result of one successful generation run.
type Level struct {
	Seed   uint64 // Set by GenerateSeeded; zero when an external Rand was used
	Size   int
	Player Coord
	Grid   *Grid

	Exits     []Coord
	Obstacles []Placement
	Items     []Placement
	Enemies   []Coord

	// MinEnemyDistance is the spawn threshold the enemies were placed under.
	MinEnemyDistance float64

	// Placements holds every event in the order it was emitted.
	Placements []Placement
}

// LevelStats summarizes a generated level.
type LevelStats struct {
	Size           int
	Cells          int
	Occupied       int
	Exits          int
	Obstacles      int
	Items          int
	Enemies        int
	StackedEnemies int // Enemies sharing a cell with an earlier enemy
}

// Stats computes summary counts for the level.
func (l *Level) Stats() LevelStats {
	seen := make(map[Coord]bool, len(l.Enemies))
	stacked := 0
	for _, e := range l.Enemies {
		if seen[e] {
			stacked++
		}
		seen[e] = true
	}

	return LevelStats{
		Size:           l.Size,
		Cells:          l.Grid.Len(),
		Occupied:       l.Grid.OccupiedCount(),
		Exits:          len(l.Exits),
		Obstacles:      len(l.Obstacles),
		Items:          len(l.Items),
		Enemies:        len(l.Enemies),
		StackedEnemies: stacked,
	}
}

// PlacementsOf returns the events of one category in emission order.
func (l *Level) PlacementsOf(category Category) []Placement {
	result := make([]Placement, 0)
	for _, p := range l.Placements {
		if p.Category == category {
			result = append(result, p)
		}
	}
	return result
}

// EnemyCounts returns how many enemies spawned on each cell that has any.
func (l *Level) EnemyCounts() map[Coord]int {
	counts := make(map[Coord]int, len(l.Enemies))
	for _, e := range l.Enemies {
		counts[e]++
	}
	return counts
}

// EnemiesAt returns how many enemies spawned on c.
func (l *Level) EnemiesAt(c Coord) int {
	n := 0
	for _, e := range l.Enemies {
		if e == c {
			n++
		}
	}
	return n
}
