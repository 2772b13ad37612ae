package export

import "github.com/vovakirdan/tui-dungeon/internal/dungeon"

// Document is the structured form of a level shared by the yaml and json
// exporters.
type Document struct {
	Seed      uint64     `yaml:"seed" json:"seed"`
	Size      int        `yaml:"size" json:"size"`
	Player    Point      `yaml:"player" json:"player"`
	Exits     []Point    `yaml:"exits" json:"exits"`
	Obstacles []Occupant `yaml:"obstacles" json:"obstacles"`
	Items     []Occupant `yaml:"items" json:"items"`
	Enemies   []Point    `yaml:"enemies" json:"enemies"`
	Floor     [][]int    `yaml:"floor,flow" json:"floor"` // Floor variants, Floor[y][x]
}

// Point is a bare coordinate.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Occupant is a coordinate with the sprite variant chosen for it.
type Occupant struct {
	X       int `yaml:"x" json:"x"`
	Y       int `yaml:"y" json:"y"`
	Variant int `yaml:"variant" json:"variant"`
}

// NewDocument converts a level to its structured form.
func NewDocument(l *dungeon.Level) Document {
	doc := Document{
		Seed:      l.Seed,
		Size:      l.Size,
		Player:    point(l.Player),
		Exits:     make([]Point, 0, len(l.Exits)),
		Obstacles: occupants(l.Obstacles),
		Items:     occupants(l.Items),
		Enemies:   make([]Point, 0, len(l.Enemies)),
		Floor:     make([][]int, l.Size),
	}
	for _, c := range l.Exits {
		doc.Exits = append(doc.Exits, point(c))
	}
	for _, c := range l.Enemies {
		doc.Enemies = append(doc.Enemies, point(c))
	}
	for y := 0; y < l.Size; y++ {
		row := make([]int, l.Size)
		for x := 0; x < l.Size; x++ {
			cell, _ := l.Grid.Cell(dungeon.C(x, y))
			row[x] = cell.Variant
		}
		doc.Floor[y] = row
	}
	return doc
}

func point(c dungeon.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

func occupants(ps []dungeon.Placement) []Occupant {
	result := make([]Occupant, 0, len(ps))
	for _, p := range ps {
		result = append(result, Occupant{X: p.Coord.X, Y: p.Coord.Y, Variant: p.Variant})
	}
	return result
}
