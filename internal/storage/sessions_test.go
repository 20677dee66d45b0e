package storage

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/shooting-grounds/internal/round"
)

// testSession builds a one-round session with the given hit and miss counts.
func testSession(gameID, player string, hits, misses int) SessionRecord {
	acc := 0.0
	if hits+misses > 0 {
		acc = float64(hits) / float64(hits+misses) * 100
	}
	return SessionRecord{
		GameID:      gameID,
		Player:      player,
		Rounds:      1,
		Hits:        hits,
		Misses:      misses,
		Score:       hits,
		Accuracy:    acc,
		AvgReaction: 0.5,
		HasReaction: hits > 0,
		RoundResults: []RoundRecord{{
			Round: 1, Hits: hits, Misses: misses, Accuracy: acc,
			AvgReaction: 0.5, HasReaction: hits > 0, EndedAt: 60,
		}},
	}
}

func TestSessionFromSummary(t *testing.T) {
	sum := round.Summary{
		Rounds:      2,
		Hits:        3,
		Misses:      1,
		ShotsFired:  4,
		Accuracy:    75,
		AvgReaction: 0.4,
		HasReaction: true,
		Scores:      map[uint8]int{0: 3},
		Results: []round.RoundResult{
			{Round: 1, Hits: 2, Misses: 0, Accuracy: 100, AvgReaction: 0.3, HasReaction: true, EndedAt: 60},
			{Round: 2, Hits: 1, Misses: 1, Accuracy: 50, StartedAt: 61, EndedAt: 121},
		},
	}

	rec := SessionFromSummary("gallery", "ana", sum, 3)
	if rec.Score != 3 || rec.Rank != 3 || rec.Player != "ana" {
		t.Errorf("record = %+v", rec)
	}
	if rec.ShotsFired() != 4 {
		t.Errorf("ShotsFired() = %d, want 4", rec.ShotsFired())
	}
	if len(rec.RoundResults) != 2 || rec.RoundResults[1].HasReaction {
		t.Errorf("rounds = %+v", rec.RoundResults)
	}
}

func TestSaveSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)

	rec := testSession("gallery", "ana", 8, 2)
	rec.RoundResults = append(rec.RoundResults, RoundRecord{Round: 2, Misses: 3, StartedAt: 61, EndedAt: 121})
	rec.Rounds = 2

	id, err := store.SaveSession(rec)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}

	got, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if got.Hits != 8 || got.Misses != 2 || got.Accuracy != 80 || !got.HasReaction {
		t.Errorf("session = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if len(got.RoundResults) != 2 {
		t.Fatalf("rounds = %d, want 2", len(got.RoundResults))
	}
	if got.RoundResults[1].HasReaction {
		t.Error("round without hits should have no reaction time")
	}
	if got.RoundResults[1].StartedAt != 61 {
		t.Errorf("round 2 started at %v, want 61", got.RoundResults[1].StartedAt)
	}

	// The session also lands on the score table.
	if high, _ := store.HighScore("gallery"); high != 8 {
		t.Errorf("HighScore() = %d, want 8", high)
	}
}

func TestSessionByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SessionByID("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveSessionDuplicateIDRollsBack(t *testing.T) {
	store := openTestStore(t)

	rec := testSession("gallery", "ana", 1, 0)
	rec.ID = "fixed"
	if _, err := store.SaveSession(rec); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(rec); err == nil {
		t.Fatal("expected duplicate id error")
	}

	scores, _ := store.AllScores("gallery")
	if len(scores) != 1 {
		t.Errorf("scores = %d, want 1 after the failed save rolled back", len(scores))
	}
}

func TestRecentSessionsAndLeaderboard(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []SessionRecord{
		testSession("gallery", "ana", 5, 5),
		testSession("gallery", "bo", 9, 1),
		testSession("gallery", "cy", 0, 0),
		testSession("gallery_pistol", "ana", 3, 1),
	} {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("recent = %d, want 4", len(recent))
	}
	if recent[0].GameID != "gallery_pistol" {
		t.Errorf("newest session = %s, want the pistol one", recent[0].GameID)
	}

	rifle, _ := store.RecentSessions("gallery", 2)
	if len(rifle) != 2 {
		t.Errorf("limited rifle sessions = %d, want 2", len(rifle))
	}

	board, err := store.Leaderboard("gallery", 10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("leaderboard = %d entries, want 2 (sessions without shots excluded)", len(board))
	}
	if board[0].Player != "bo" || board[1].Player != "ana" {
		t.Errorf("leaderboard order = %s, %s", board[0].Player, board[1].Player)
	}

	history, err := store.AccuracyHistory("gallery")
	if err != nil {
		t.Fatalf("AccuracyHistory() failed: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("history = %v, want 2 values", history)
	}

	stats, err := store.GameSessionStats("gallery")
	if err != nil {
		t.Fatalf("GameSessionStats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.BestAccuracy != 90 || stats.TotalHits != 14 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestFeatures(t *testing.T) {
	store := openTestStore(t)

	ana := testSession("gallery", "ana", 3, 1)
	ana.RoundResults = []RoundRecord{
		{Round: 1, Hits: 3, Misses: 1, AvgReaction: 0.4, HasReaction: true},
		{Round: 2, Hits: 1, Misses: 1, AvgReaction: 0.6, HasReaction: true},
	}
	if _, err := store.SaveSession(ana); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(testSession("gallery", "bo", 0, 2)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	feats, err := store.Features("")
	if err != nil {
		t.Fatalf("Features() failed: %v", err)
	}
	if len(feats) != 2 || feats[0].Player != "ana" || feats[1].Player != "bo" {
		t.Fatalf("features = %+v", feats)
	}

	a := feats[0]
	if a.ShotsHit != 4 || a.ShotsFired != 6 || a.RoundsObserved != 2 {
		t.Errorf("ana counts = %+v", a)
	}
	if math.Abs(a.Accuracy-4.0/6.0) > 1e-9 {
		t.Errorf("accuracy = %v, want %v", a.Accuracy, 4.0/6.0)
	}
	if math.Abs(a.AvgReactionMs-500) > 1e-9 {
		t.Errorf("avg reaction = %v, want 500", a.AvgReactionMs)
	}
	// Per-round accuracies 0.75 and 0.5 have population variance 0.015625.
	if math.Abs(a.VarAccuracy-0.015625) > 1e-9 {
		t.Errorf("var accuracy = %v", a.VarAccuracy)
	}
	if math.Abs(a.VarReactionMs-10000) > 1e-6 {
		t.Errorf("var reaction = %v, want 10000", a.VarReactionMs)
	}
	if a.VarShotsHit != 1 || a.VarShotsFired != 1 {
		t.Errorf("var hits/fired = %v/%v, want 1/1", a.VarShotsHit, a.VarShotsFired)
	}

	if feats[1].Accuracy != 0 || feats[1].AvgReactionMs != 0 {
		t.Errorf("bo = %+v", feats[1])
	}
}
