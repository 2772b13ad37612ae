package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/config"
	"github.com/vovakirdan/tui-dungeon/internal/runner"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func updateHistory(t *testing.T, m HistoryModel, msg tea.Msg) HistoryModel {
	t.Helper()
	next, _ := m.Update(msg)
	hm, ok := next.(HistoryModel)
	if !ok {
		t.Fatalf("Update returned %T, want HistoryModel", next)
	}
	return hm
}

func TestHistoryShowsSavedRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	r := runner.New(config.DefaultLevelConfig(), config.DifficultyHard, store, nil)
	for _, seed := range []uint64{3, 4} {
		res, genErr := r.Generate(seed, 0)
		if genErr != nil {
			t.Fatalf("Generate(%d) failed: %v", seed, genErr)
		}
		if _, saveErr := r.Save(res); saveErr != nil {
			t.Fatalf("Save failed: %v", saveErr)
		}
	}

	m := NewHistoryModel(store, 10, 100, 30)
	if len(m.Runs()) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(m.Runs()))
	}
	if m.Runs()[0].Seed != 4 {
		t.Errorf("expected newest run first, got seed %d", m.Runs()[0].Seed)
	}

	m = updateHistory(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil {
		t.Fatal("enter should open the selected run")
	}
	if !strings.Contains(m.View(), sel.Map) {
		t.Errorf("detail view should contain the stored map")
	}

	// Back closes the detail view before leaving
	m = updateHistory(t, m, keyRune('b'))
	if m.Selected() != nil {
		t.Error("back should return to the table")
	}
	m = updateHistory(t, m, keyRune('b'))
	if m.View() != "" {
		t.Error("second back should quit")
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 0, 80, 24)
	if !strings.Contains(m.View(), "no run history available") {
		t.Errorf("expected missing store message, got:\n%s", m.View())
	}
}

func TestHistoryRowFormatting(t *testing.T) {
	row := historyRow(storage.Run{
		ID:      "0123456789abcdef",
		Seed:    42,
		Depth:   3,
		Size:    12,
		Enemies: 7,
	})
	if row[0] != "01234567" {
		t.Errorf("expected short ID, got %q", row[0])
	}
	if row[2] != "-" {
		t.Errorf("empty preset should render as -, got %q", row[2])
	}
	if row[4] != "12x12" {
		t.Errorf("expected size 12x12, got %q", row[4])
	}
}
