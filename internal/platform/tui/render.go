package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/dungeon"
)

// cellLook identifies a glyph and its floor shade. Adjacent cells with the
// same look share one styled run.
type cellLook struct {
	glyph rune
	shade int
}

// looks computes the look of every cell, indexed [y][x].
func looks(l *dungeon.Level) [][]cellLook {
	glyphs := l.Glyphs()
	rows := make([][]cellLook, l.Size)
	for y, row := range glyphs {
		rows[y] = make([]cellLook, len(row))
		for x, glyph := range row {
			shade := dungeon.NoVariant
			if glyph == dungeon.GlyphFloor {
				cell, _ := l.Grid.Cell(dungeon.C(x, y))
				shade = cell.Variant
			}
			rows[y][x] = cellLook{glyph: glyph, shade: shade}
		}
	}
	return rows
}

// style returns the theme style for a cell look.
func (t DungeonTheme) style(look cellLook) lipgloss.Style {
	switch look.glyph {
	case dungeon.GlyphFloor:
		return t.floorStyle(look.shade)
	case dungeon.GlyphObstacle:
		return t.Obstacle
	case dungeon.GlyphItem:
		return t.Item
	case dungeon.GlyphExit:
		return t.Exit
	case dungeon.GlyphPlayer:
		return t.Player
	default:
		return t.Enemy // 'e' and stack digits
	}
}

// RenderLevel converts a level to a styled string, highest row first.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderLevel(l *dungeon.Level, theme DungeonTheme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(l.Size*l.Size*2 + l.Size)

	cells := looks(l)
	for y := l.Size - 1; y >= 0; y-- {
		if y < l.Size-1 {
			sb.WriteRune('\n')
		}

		row := cells[y]
		for x := 0; x < len(row); {
			look := row[x]

			// Collect consecutive cells with the same look
			end := x + 1
			for end < len(row) && row[end] == look {
				end++
			}
			sb.WriteString(theme.style(look).Render(strings.Repeat(string(look.glyph), end-x)))
			x = end
		}
	}
	return sb.String()
}
