// Package rank places a session's accuracy into one of four skill ranks by
// quartile against previously stored sessions.
package rank

import "sort"

// Ranks is the number of skill ranks.
const Ranks = 4

// fallback thresholds for when there is too little history to cut quartiles.
var fixedCuts = [Ranks - 1]float64{25, 50, 75}

// Bucket returns a rank from 1 (lowest) to Ranks for accuracy, using the
// quartiles of history. With fewer than Ranks historical values it uses
// fixed 25/50/75 percent thresholds.
func Bucket(accuracy float64, history []float64) int {
	cuts := Cuts(history)
	r := 1
	for _, c := range cuts {
		if accuracy > c {
			r++
		}
	}
	return r
}

// Cuts returns the three quartile boundaries of history.
func Cuts(history []float64) [Ranks - 1]float64 {
	if len(history) < Ranks {
		return fixedCuts
	}
	sorted := append([]float64(nil), history...)
	sort.Float64s(sorted)

	var cuts [Ranks - 1]float64
	for i := range cuts {
		cuts[i] = quantile(sorted, float64(i+1)/Ranks)
	}
	return cuts
}

// quantile uses linear interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Label returns a display name for a rank.
func Label(r int) string {
	switch r {
	case 1:
		return "Bronze"
	case 2:
		return "Silver"
	case 3:
		return "Gold"
	case 4:
		return "Marksman"
	default:
		return "Unranked"
	}
}
