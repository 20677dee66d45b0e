package round

// Summary is the end-of-session report.
type Summary struct {
	Rounds           int
	Hits             int
	Misses           int
	ShotsFired       int
	Accuracy         float64
	AvgReaction      float64
	HasReaction      bool
	AccuracyVariance float64 // Across rounds, in percent squared
	ReactionVariance float64 // Across rounds with reaction data
	Scores           map[uint8]int
	Results          []RoundResult
}

// Summary computes the report from everything recorded so far. It is final
// once the controller reaches AllRoundsComplete.
func (c *Controller) Summary() Summary {
	avg, ok := c.stats.AverageReactionTime()
	return Summarize(c.stats.Hits(), c.stats.Misses(), avg, ok, c.results, c.scores.Snapshot())
}

// Summarize builds a Summary from totals and per-round results.
func Summarize(hits, misses int, avgReaction float64, hasReaction bool, results []RoundResult, scores map[uint8]int) Summary {
	s := Summary{
		Rounds:      len(results),
		Hits:        hits,
		Misses:      misses,
		ShotsFired:  hits + misses,
		AvgReaction: avgReaction,
		HasReaction: hasReaction,
		Scores:      scores,
		Results:     append([]RoundResult(nil), results...),
	}
	if s.ShotsFired > 0 {
		s.Accuracy = float64(hits) / float64(s.ShotsFired) * 100
	}

	acc := make([]float64, 0, len(results))
	var react []float64
	for _, r := range results {
		acc = append(acc, r.Accuracy)
		if r.HasReaction {
			react = append(react, r.AvgReaction)
		}
	}
	s.AccuracyVariance = Variance(acc)
	s.ReactionVariance = Variance(react)
	return s
}
