package dungeon

import (
	"fmt"
	"strings"
)

// Glyphs used by RenderASCII.
const (
	GlyphFloor    = '.'
	GlyphObstacle = '#'
	GlyphItem     = '%'
	GlyphExit     = '>'
	GlyphPlayer   = '@'
	GlyphEnemy    = 'e'
)

// GlyphAt returns the character RenderASCII draws for c.
// Enemies win over the floor; stacks of 2-9 enemies show as a digit.
// It scans the enemy list; use Glyphs to draw a whole level.
func (l *Level) GlyphAt(c Coord) rune {
	return l.glyph(c, l.EnemiesAt(c))
}

// Glyphs returns the characters for every cell, indexed [y][x].
// Enemy counts are gathered once, so the cost is size² plus the enemy count.
func (l *Level) Glyphs() [][]rune {
	enemies := l.EnemyCounts()
	rows := make([][]rune, l.Size)
	for y := range rows {
		rows[y] = make([]rune, l.Size)
		for x := range rows[y] {
			c := C(x, y)
			rows[y][x] = l.glyph(c, enemies[c])
		}
	}
	return rows
}

func (l *Level) glyph(c Coord, enemies int) rune {
	if enemies > 0 {
		if enemies == 1 {
			return GlyphEnemy
		}
		return rune('0' + min(enemies, 9))
	}

	cell, ok := l.Grid.Cell(c)
	if !ok {
		return ' '
	}
	if !cell.Occupied {
		return GlyphFloor
	}
	switch cell.Occupant {
	case CategoryPlayer:
		return GlyphPlayer
	case CategoryExit:
		return GlyphExit
	case CategoryObstacle:
		return GlyphObstacle
	case CategoryItem:
		return GlyphItem
	default:
		return '?'
	}
}

// RenderASCII creates an ASCII representation of a generated level.
// This is used for the CLI, golden outputs in tests and stored run history.
//
// Format:
//   - Header line with size and occupant counts
//   - One row per y, highest y first, so (0,0) is the bottom-left corner
func RenderASCII(l *Level) string {
	var sb strings.Builder
	stats := l.Stats()

	sb.WriteString(fmt.Sprintf("Size: %dx%d | Exits: %d | Obstacles: %d | Items: %d | Enemies: %d\n",
		l.Size, l.Size, stats.Exits, stats.Obstacles, stats.Items, stats.Enemies))

	glyphs := l.Glyphs()
	for y := l.Size - 1; y >= 0; y-- {
		sb.WriteString(string(glyphs[y]))
		sb.WriteString("\n")
	}
	return sb.String()
}
