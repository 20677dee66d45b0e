package round

// Stats accumulates hit and miss counts plus the paired spawn and hit
// timestamps used for reaction time. The caller keeps the two timestamp
// sequences index-aligned: the i-th hit belongs to the i-th spawn.
type Stats struct {
	hits   int
	misses int
	spawns []float64
	shots  []float64
}

// Checkpoint marks a position in the stats so later activity can be
// isolated with Since.
type Checkpoint struct {
	hits, misses, spawns, shots int
}

// RecordSpawn appends a target exposure time.
func (s *Stats) RecordSpawn(ts float64) {
	s.spawns = append(s.spawns, ts)
}

// RecordHit appends the time of a successful hit and counts it.
func (s *Stats) RecordHit(ts float64) {
	s.shots = append(s.shots, ts)
	s.hits++
}

// RecordMiss counts a shot that did not hit a target.
func (s *Stats) RecordMiss() {
	s.misses++
}

// Hits returns the successful hit count.
func (s *Stats) Hits() int { return s.hits }

// Misses returns the missed shot count.
func (s *Stats) Misses() int { return s.misses }

// ShotsFired returns hits plus misses.
func (s *Stats) ShotsFired() int { return s.hits + s.misses }

// Spawns returns the number of recorded exposure times.
func (s *Stats) Spawns() int { return len(s.spawns) }

// Accuracy returns the hit percentage, or 0 when nothing was fired.
func (s *Stats) Accuracy() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total) * 100
}

// AverageReactionTime returns the mean seconds between exposure and hit.
// ok is false when there is no paired data.
func (s *Stats) AverageReactionTime() (avg float64, ok bool) {
	times := s.ReactionTimes()
	if len(times) == 0 {
		return 0, false
	}
	return mean(times), true
}

// ReactionTimes returns the per-hit reaction times over the aligned prefix.
func (s *Stats) ReactionTimes() []float64 {
	n := min(s.hits, len(s.spawns), len(s.shots))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.shots[i] - s.spawns[i]
	}
	return out
}

// Checkpoint returns the current position.
func (s *Stats) Checkpoint() Checkpoint {
	return Checkpoint{hits: s.hits, misses: s.misses, spawns: len(s.spawns), shots: len(s.shots)}
}

// Since returns the activity recorded after cp as a standalone Stats.
func (s *Stats) Since(cp Checkpoint) Stats {
	return Stats{
		hits:   s.hits - cp.hits,
		misses: s.misses - cp.misses,
		spawns: append([]float64(nil), s.spawns[cp.spawns:]...),
		shots:  append([]float64(nil), s.shots[cp.shots:]...),
	}
}

// Reset clears everything.
func (s *Stats) Reset() {
	*s = Stats{}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance is the population variance of xs, or 0 for fewer than two values.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}
