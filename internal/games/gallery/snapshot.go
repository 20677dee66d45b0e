package gallery

import "github.com/vovakirdan/shooting-grounds/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Round         int
	State         string
	Score         int
	Hits          int
	Misses        int
	Bullets       int
	TimeRemaining float64
	Yaw, Pitch    float64
	TargetPos     core.Vec3
	HasTarget     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.round.Stats()
	s := Snapshot{
		Tick:          g.tick,
		Round:         g.round.CurrentRound(),
		State:         g.round.State().String(),
		Score:         g.round.Score(playerTeam),
		Hits:          st.Hits(),
		Misses:        st.Misses(),
		Bullets:       g.weapon.Bullets(),
		TimeRemaining: g.round.TimeRemaining(),
		Yaw:           g.yaw,
		Pitch:         g.pitch,
	}
	if t, ok := g.CurrentTarget(); ok {
		s.TargetPos = t.Position()
		s.HasTarget = true
	}
	return s
}
