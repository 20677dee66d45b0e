package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/shooting-grounds/internal/round"
)

// SessionRecord is a finished gallery session.
type SessionRecord struct {
	ID          string    `json:"id"`
	GameID      string    `json:"game_id"`
	Player      string    `json:"player"`
	Rounds      int       `json:"rounds"`
	Hits        int       `json:"hits"`
	Misses      int       `json:"misses"`
	Score       int       `json:"score"`
	Accuracy    float64   `json:"accuracy"`
	AvgReaction float64   `json:"avg_reaction"`
	HasReaction bool      `json:"has_reaction"`
	VarAccuracy float64   `json:"var_accuracy"`
	VarReaction float64   `json:"var_reaction"`
	Rank        int       `json:"rank"`
	CreatedAt   time.Time `json:"created_at"`

	RoundResults []RoundRecord `json:"round_results,omitempty"`
}

// ShotsFired returns hits plus misses.
func (r SessionRecord) ShotsFired() int { return r.Hits + r.Misses }

// RoundRecord is one round of a stored session. Times are game seconds.
type RoundRecord struct {
	Round       int     `json:"round"`
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	Accuracy    float64 `json:"accuracy"`
	AvgReaction float64 `json:"avg_reaction"`
	HasReaction bool    `json:"has_reaction"`
	StartedAt   float64 `json:"started_at"`
	EndedAt     float64 `json:"ended_at"`
}

// SessionFromSummary builds a record for a finished session.
func SessionFromSummary(gameID, player string, summary round.Summary, rank int) SessionRecord {
	rec := SessionRecord{
		GameID:      gameID,
		Player:      player,
		Rounds:      summary.Rounds,
		Hits:        summary.Hits,
		Misses:      summary.Misses,
		Accuracy:    summary.Accuracy,
		AvgReaction: summary.AvgReaction,
		HasReaction: summary.HasReaction,
		VarAccuracy: summary.AccuracyVariance,
		VarReaction: summary.ReactionVariance,
		Rank:        rank,
	}
	for _, v := range summary.Scores {
		rec.Score += v
	}
	for _, r := range summary.Results {
		rec.RoundResults = append(rec.RoundResults, RoundRecord{
			Round:       r.Round,
			Hits:        r.Hits,
			Misses:      r.Misses,
			Accuracy:    r.Accuracy,
			AvgReaction: r.AvgReaction,
			HasReaction: r.HasReaction,
			StartedAt:   r.StartedAt,
			EndedAt:     r.EndedAt,
		})
	}
	return rec
}

// SaveSession stores a session and its rounds in one transaction, and adds
// its score to the scores table. An empty ID is replaced with a new UUID.
// Returns the session ID.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO sessions
		 (id, game_id, player, rounds, hits, misses, score, accuracy, avg_reaction, var_accuracy, var_reaction, rank)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Player, rec.Rounds, rec.Hits, rec.Misses, rec.Score,
		rec.Accuracy, nullFloat(rec.AvgReaction, rec.HasReaction), rec.VarAccuracy, rec.VarReaction, rec.Rank,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	for _, r := range rec.RoundResults {
		_, err := tx.Exec(
			`INSERT INTO rounds
			 (session_id, round, hits, misses, accuracy, avg_reaction, started_at, ended_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, r.Round, r.Hits, r.Misses, r.Accuracy,
			nullFloat(r.AvgReaction, r.HasReaction), r.StartedAt, r.EndedAt,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save round %d: %w", r.Round, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", rec.GameID, rec.Score); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return rec.ID, nil
}

const sessionColumns = `id, game_id, player, rounds, hits, misses, score, accuracy,
	avg_reaction, var_accuracy, var_reaction, rank, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionRecord, error) {
	var rec SessionRecord
	var reaction sql.NullFloat64
	var createdAt any
	err := sc.Scan(
		&rec.ID, &rec.GameID, &rec.Player, &rec.Rounds, &rec.Hits, &rec.Misses, &rec.Score,
		&rec.Accuracy, &reaction, &rec.VarAccuracy, &rec.VarReaction, &rec.Rank, &createdAt,
	)
	if err != nil {
		return rec, err
	}
	rec.AvgReaction, rec.HasReaction = reaction.Float64, reaction.Valid
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// SessionByID retrieves a session with its rounds.
// Returns ErrNotFound if there is no such session.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	row := s.db.QueryRow("SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT round, hits, misses, accuracy, avg_reaction, started_at, ended_at
		 FROM rounds WHERE session_id = ? ORDER BY round`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r RoundRecord
		var reaction sql.NullFloat64
		if err := rows.Scan(&r.Round, &r.Hits, &r.Misses, &r.Accuracy, &reaction, &r.StartedAt, &r.EndedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		r.AvgReaction, r.HasReaction = reaction.Float64, reaction.Valid
		rec.RoundResults = append(rec.RoundResults, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return &rec, nil
}

// RecentSessions returns the newest sessions, optionally for one game.
// An empty gameID matches every game.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
}

// Leaderboard returns the most accurate sessions for a game. Ties go to
// the faster average reaction.
func (s *Store) Leaderboard(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions
		 WHERE game_id = ? AND hits + misses > 0
		 ORDER BY accuracy DESC, avg_reaction IS NULL, avg_reaction ASC, hits DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) querySessions(query string, args ...any) ([]SessionRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// AccuracyHistory returns the accuracy of every stored session of a game
// that fired at least one shot.
func (s *Store) AccuracyHistory(gameID string) ([]float64, error) {
	rows, err := s.db.Query(
		"SELECT accuracy FROM sessions WHERE game_id = ? AND hits + misses > 0",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query accuracy history: %w", err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("storage: cannot scan accuracy: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// PlayerFeatures are per-player aggregates over every stored round.
// Accuracy is a fraction in [0, 1]; reaction times are milliseconds.
type PlayerFeatures struct {
	Player         string
	ShotsHit       int
	ShotsFired     int
	Accuracy       float64
	AvgReactionMs  float64
	VarAccuracy    float64
	VarReactionMs  float64
	VarShotsHit    float64
	VarShotsFired  float64
	RoundsObserved int
}

// Features aggregates stored rounds per player, optionally for one game.
// Players are sorted by name.
func (s *Store) Features(gameID string) ([]PlayerFeatures, error) {
	rows, err := s.db.Query(
		`SELECT s.player, r.hits, r.misses, r.avg_reaction
		 FROM rounds r JOIN sessions s ON s.id = r.session_id
		 WHERE ? = '' OR s.game_id = ?
		 ORDER BY s.player, s.created_at, r.round`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	type samples struct {
		hits, fired, acc, reaction []float64
	}
	byPlayer := make(map[string]*samples)
	for rows.Next() {
		var player string
		var hits, misses int
		var reaction sql.NullFloat64
		if err := rows.Scan(&player, &hits, &misses, &reaction); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		sm, ok := byPlayer[player]
		if !ok {
			sm = &samples{}
			byPlayer[player] = sm
		}
		fired := hits + misses
		sm.hits = append(sm.hits, float64(hits))
		sm.fired = append(sm.fired, float64(fired))
		if fired > 0 {
			sm.acc = append(sm.acc, float64(hits)/float64(fired))
		}
		if reaction.Valid {
			sm.reaction = append(sm.reaction, reaction.Float64*1000)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	out := make([]PlayerFeatures, 0, len(byPlayer))
	for player, sm := range byPlayer {
		f := PlayerFeatures{
			Player:         player,
			ShotsHit:       int(sum(sm.hits)),
			ShotsFired:     int(sum(sm.fired)),
			AvgReactionMs:  mean(sm.reaction),
			VarAccuracy:    round.Variance(sm.acc),
			VarReactionMs:  round.Variance(sm.reaction),
			VarShotsHit:    round.Variance(sm.hits),
			VarShotsFired:  round.Variance(sm.fired),
			RoundsObserved: len(sm.hits),
		}
		if f.ShotsFired > 0 {
			f.Accuracy = float64(f.ShotsHit) / float64(f.ShotsFired)
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out, nil
}

// SessionStats contains aggregated session statistics for a game.
type SessionStats struct {
	GameID       string    `json:"game_id"`
	Sessions     int       `json:"sessions"`
	BestAccuracy float64   `json:"best_accuracy"`
	AvgAccuracy  float64   `json:"avg_accuracy"`
	TotalHits    int64     `json:"total_hits"`
	LastPlayed   time.Time `json:"last_played"`
}

// GameSessionStats retrieves aggregated statistics for a game's sessions.
func (s *Store) GameSessionStats(gameID string) (*SessionStats, error) {
	stats := &SessionStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(accuracy), 0), COALESCE(AVG(accuracy), 0),
		        COALESCE(SUM(hits), 0), MAX(created_at)
		 FROM sessions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Sessions, &stats.BestAccuracy, &stats.AvgAccuracy, &stats.TotalHits, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

func nullFloat(v float64, valid bool) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: valid}
}

func sum(xs []float64) float64 {
	var t float64
	for _, x := range xs {
		t += x
	}
	return t
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return sum(xs) / float64(len(xs))
}
