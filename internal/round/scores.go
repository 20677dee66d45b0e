package round

// ScoreTable maps a team to its score. Entries start at zero on first use.
type ScoreTable struct {
	scores map[uint8]int
}

// Increment adds one to team's score and returns the new value.
func (t *ScoreTable) Increment(team uint8) int {
	if t.scores == nil {
		t.scores = make(map[uint8]int)
	}
	t.scores[team]++
	return t.scores[team]
}

// Get returns team's score, 0 if the team has not scored.
func (t *ScoreTable) Get(team uint8) int {
	return t.scores[team]
}

// Snapshot returns a copy of the table.
func (t *ScoreTable) Snapshot() map[uint8]int {
	out := make(map[uint8]int, len(t.scores))
	for k, v := range t.scores {
		out[k] = v
	}
	return out
}

// Reset drops every entry.
func (t *ScoreTable) Reset() {
	t.scores = nil
}
