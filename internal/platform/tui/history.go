package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

// DefaultHistoryLimit is how many runs the history table loads.
const DefaultHistoryLimit = 50

// HistoryModel is the Bubble Tea model for the saved run table.
// Enter shows the stored map of the selected run.
type HistoryModel struct {
	store    *storage.Store
	runs     []storage.Run
	loadErr  error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	detail   *storage.Run // Run whose map is shown, nil for the table
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a history model and loads the most recent runs.
func NewHistoryModel(store *storage.Store, limit, width, height int) HistoryModel {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if store == nil {
		m.loadErr = errors.New("no run history available")
	} else {
		m.runs, m.loadErr = store.RecentRuns(limit)
	}
	m.updateTableRows()
	return m
}

// historyColumns returns the table columns.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Preset", Width: 8},
		{Title: "Depth", Width: 6},
		{Title: "Size", Width: 8},
		{Title: "Enemies", Width: 8},
		{Title: "Date", Width: 14},
	}
}

// createTable creates the run table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	height := m.height - 6 // Leave room for title and help
	if height < 5 {
		height = 10
	}

	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyRow formats one run as a table row.
func historyRow(r storage.Run) table.Row {
	preset := r.Preset
	if preset == "" {
		preset = "-"
	}
	return table.Row{
		shortID(r.ID),
		fmt.Sprintf("%d", r.Seed),
		preset,
		fmt.Sprintf("%d", r.Depth),
		fmt.Sprintf("%dx%d", r.Size, r.Size),
		fmt.Sprintf("%d", r.Enemies),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// updateTableRows updates the table with loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = historyRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history table.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.detail != nil {
				m.detail = nil
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if m.detail == nil && len(m.runs) > 0 {
				run := m.runs[m.table.Cursor()]
				m.detail = &run
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	if m.detail != nil {
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history table or the selected run.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	switch {
	case m.loadErr != nil:
		b.WriteString(titleStyle.Render("RUN HISTORY"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.loadErr.Error()))
		b.WriteString("\n")

	case m.detail != nil:
		b.WriteString(titleStyle.Render(fmt.Sprintf("RUN %s - seed %d", shortID(m.detail.ID), m.detail.Seed)))
		b.WriteString("\n\n")
		b.WriteString(m.detail.Map)

	case len(m.runs) == 0:
		b.WriteString(titleStyle.Render("RUN HISTORY"))
		b.WriteString("\n\n")
		b.WriteString("No saved runs yet.\n")

	default:
		b.WriteString(titleStyle.Render(fmt.Sprintf("RUN HISTORY (%d)", len(m.runs))))
		b.WriteString("\n\n")
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the run whose map is shown, or nil.
func (m HistoryModel) Selected() *storage.Run {
	return m.detail
}

// Runs returns the loaded runs, newest first.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// RunHistory starts the Bubble Tea history table on the local terminal.
func RunHistory(store *storage.Store, limit, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
