package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

// armedStub is a registered range that names its weapon.
type armedStub struct{ stubGame }

func (armedStub) ID() string     { return "tui_range" }
func (armedStub) Title() string  { return "Test Range" }
func (armedStub) Weapon() string { return "slingshot" }

func init() {
	registry.Register("tui_range", func() registry.Game { return &armedStub{} })
}

func menuIndex(t *testing.T, m MenuModel, id string) int {
	t.Helper()
	for i, it := range m.items {
		if it.GameID == id {
			return i
		}
	}
	t.Fatalf("menu has no %q", id)
	return -1
}

func TestMenuListsRangesWithRecords(t *testing.T) {
	store := testModelStore(t)
	rec := storage.SessionRecord{GameID: "tui_range", Player: "ana", Rounds: 1, Hits: 3, Misses: 1, Accuracy: 75}
	if _, err := store.SaveSession(rec); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	m := NewMenuModel(store, testConfig())
	it := m.items[menuIndex(t, m, "tui_range")]

	if it.Weapon != "slingshot" || it.Sessions != 1 || it.BestAccuracy != 75 {
		t.Errorf("item = %+v", it)
	}
	if !strings.Contains(m.View(), "best 75% in 1") {
		t.Error("view should show the best accuracy")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	idx := menuIndex(t, m, "tui_range")

	for i := 0; i < idx; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().GameID != "tui_range" {
		t.Fatalf("Selected() = %+v", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after moving up from the top", m.cursor)
	}

	for i := 0; i < len(m.items)+3; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want last item %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() || next.(MenuModel).View() != "" {
		t.Error("q should quit the menu")
	}
}
