package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

func boardOn(t *testing.T, m ScoreboardModel, id string) ScoreboardModel {
	t.Helper()
	for range m.games {
		if m.games[m.gameCursor].ID == id {
			return m
		}
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	t.Fatalf("scoreboard has no %q", id)
	return m
}

func TestScoreboardViews(t *testing.T) {
	store := testModelStore(t)
	for _, rec := range []storage.SessionRecord{
		{GameID: "tui_range", Player: "ana", Rounds: 1, Hits: 4, Misses: 1, Score: 4, Accuracy: 80, Rank: 3},
		{GameID: "tui_range", Player: "bo", Rounds: 1, Hits: 1, Misses: 3, Score: 1, Accuracy: 25, Rank: 1},
		{GameID: "tui_range", Player: "cy", Rounds: 1},
	} {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	m := boardOn(t, NewScoreboardModel(store, 100, 30), "tui_range")

	if len(m.rows) != 3 || m.rows[0][1] != "4" {
		t.Fatalf("score rows = %v", m.rows)
	}

	next, _ := m.Update(runeKey('v'))
	m = next.(ScoreboardModel)
	if m.view != viewSessions || len(m.rows) != 3 {
		t.Fatalf("view %v rows = %v", m.view, m.rows)
	}

	next, _ = m.Update(runeKey('v'))
	m = next.(ScoreboardModel)
	if m.view != viewLeaderboard || len(m.rows) != 2 || m.rows[0][1] != "ana" {
		t.Fatalf("leaderboard rows = %v", m.rows)
	}
	if !strings.Contains(m.View(), "Accuracy") {
		t.Error("view should name the active table")
	}

	next, _ = m.Update(runeKey('v'))
	if next.(ScoreboardModel).view != viewScores {
		t.Error("views should cycle back to scores")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "Nothing recorded yet") {
		t.Error("empty board should say so")
	}

	next, _ := m.Update(runeKey('b'))
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("b should go back")
	}
	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}
