package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// DungeonTheme contains all configurable visual styles for the viewer.
type DungeonTheme struct {
	// Grid cell styles
	Floor    lipgloss.Style
	Obstacle lipgloss.Style
	Item     lipgloss.Style
	Exit     lipgloss.Style
	Player   lipgloss.Style
	Enemy    lipgloss.Style

	// Floor variants cycle through these shades
	FloorShades []lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDError     lipgloss.Style
	HUDStatus    lipgloss.Style

	// Frame around the map
	MapBorder lipgloss.Style
}

// DefaultDungeonTheme returns the default visual theme.
func DefaultDungeonTheme() DungeonTheme {
	return DungeonTheme{
		Floor:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Medium gray
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
		Exit:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Player:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Enemy:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		FloorShades: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		},

		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDError:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		HUDStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		MapBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
}

// floorStyle picks the shade for a floor variant.
func (t DungeonTheme) floorStyle(variant int) lipgloss.Style {
	if variant < 0 || len(t.FloorShades) == 0 {
		return t.Floor
	}
	return t.FloorShades[variant%len(t.FloorShades)]
}
