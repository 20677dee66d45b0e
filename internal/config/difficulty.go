package config

import "math"

// minRadiusFraction keeps targets hittable at full difficulty.
const minRadiusFraction = 0.25

// DifficultyManager shrinks targets as a session progresses, either with
// the number of hits or with elapsed ticks.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a manager starting at cfg.InitialLevel.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// SetEnabled turns progression on or off. The starting level applies either way.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// Level is the difficulty in [0, 1] after the given hits and ticks. It moves
// linearly from the starting level to 1 as progress reaches MaxAt.
func (d *DifficultyManager) Level(hits, ticks int) float64 {
	p, ok := d.progress(hits, ticks)
	if !ok {
		return d.start
	}
	return d.start + p*(1-d.start)
}

func (d *DifficultyManager) progress(hits, ticks int) (float64, bool) {
	if !d.cfg.Enabled {
		return 0, false
	}
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	switch d.cfg.Progression.Type {
	case "score":
		return unit(float64(hits) / maxAt), true
	case "time":
		return unit(float64(ticks) / maxAt), true
	}
	return 0, false
}

// TargetRadius scales base down by the configured reduction at the current
// level, never below a quarter of base.
func (d *DifficultyManager) TargetRadius(base float64, hits, ticks int) float64 {
	r := base * (1 - d.Level(hits, ticks)*d.cfg.Scaling.RadiusReduction)
	return math.Max(r, base*minRadiusFraction)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
