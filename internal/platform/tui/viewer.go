// Package tui provides the Bubble Tea level viewer, the run history table
// and the Wish SSH server that serves the viewer.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/runner"
)

// ViewerModel is the Bubble Tea model for browsing generated levels.
// Each regeneration is one synchronous generator run.
type ViewerModel struct {
	runner   *runner.Runner
	seed     uint64
	depth    int
	result   *runner.Result
	mapView  string // Styled map of result, rendered once per level
	err      error
	status   string
	keys     ViewerKeyMap
	help     help.Model
	theme    DungeonTheme
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer and generates the first level.
func NewViewerModel(r *runner.Runner, seed uint64, depth int) ViewerModel {
	h := help.New()
	h.ShowAll = false

	m := ViewerModel{
		runner: r,
		seed:   seed,
		depth:  max(depth, 0),
		keys:   DefaultViewerKeyMap(),
		help:   h,
		theme:  DefaultDungeonTheme(),
	}
	m.generate()
	return m
}

// generate runs the generator for the current seed and depth.
// A failed run keeps the previous level on screen.
func (m *ViewerModel) generate() {
	res, err := m.runner.Generate(m.seed, m.depth)
	if err != nil {
		m.err = err
		return
	}
	m.result = res
	m.mapView = RenderLevel(res.Level, m.theme)
	m.err = nil
}

// Init initializes the viewer.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Regenerate):
		m.seed++
		m.generate()

	case key.Matches(msg, m.keys.Reroll):
		m.seed = runner.NewSeed()
		m.generate()

	case key.Matches(msg, m.keys.Deeper):
		m.depth++
		m.generate()

	case key.Matches(msg, m.keys.Shallower):
		if m.depth > 0 {
			m.depth--
			m.generate()
		}

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// save stores the current level in run history.
func (m *ViewerModel) save() {
	if m.result == nil {
		m.status = "nothing to save"
		return
	}
	id, err := m.runner.Save(m.result)
	switch {
	case errors.Is(err, runner.ErrNoStore):
		m.status = "no run history available"
	case err != nil:
		m.status = "save failed: " + err.Error()
	default:
		m.status = "saved run " + shortID(id)
	}
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.HUDTitle.Render(centerText("DUNGEON", m.width)))
	b.WriteString("\n")
	b.WriteString(m.renderHUD())
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(m.theme.MapBorder.Render(m.mapView))
		b.WriteString("\n")
		if m.width > 0 && m.result.Level.Size+2 > m.width {
			b.WriteString(m.theme.HUDStatus.Render("map is wider than the terminal"))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString(m.theme.HUDError.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.theme.HUDStatus.Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderHUD renders the seed, depth and occupant counts.
func (m ViewerModel) renderHUD() string {
	sep := m.theme.HUDSeparator.Render(" | ")
	field := func(name string, value any) string {
		return name + " " + m.theme.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		field("Seed", m.seed),
		field("Depth", m.depth),
	}
	if m.result != nil {
		stats := m.result.Level.Stats()
		parts = append(parts,
			field("Size", fmt.Sprintf("%dx%d", stats.Size, stats.Size)),
			field("Exits", stats.Exits),
			field("Obstacles", stats.Obstacles),
			field("Items", stats.Items),
			field("Enemies", stats.Enemies),
		)
	}
	return strings.Join(parts, sep)
}

// Seed returns the seed of the current level.
func (m ViewerModel) Seed() uint64 {
	return m.seed
}

// Depth returns the current dungeon depth.
func (m ViewerModel) Depth() int {
	return m.depth
}

// Result returns the last successfully generated level, or nil.
func (m ViewerModel) Result() *runner.Result {
	return m.result
}

// Err returns the error of the last generation attempt.
func (m ViewerModel) Err() error {
	return m.err
}

// Status returns the last status line.
func (m ViewerModel) Status() string {
	return m.status
}

// IsQuitting returns true if the user requested to quit.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// RunViewer starts the Bubble Tea viewer on the local terminal.
func RunViewer(r *runner.Runner, seed uint64, depth int) error {
	p := tea.NewProgram(
		NewViewerModel(r, seed, depth),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	_, err := p.Run()
	return err
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// shortID shortens a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
