package world

import "github.com/vovakirdan/shooting-grounds/internal/core"

// target is the Range's Entity implementation. It carries no behavior of its
// own: existing until destroyed is all a target does.
type target struct {
	world      *Range
	id         EntityID
	arch       Archetype
	pos        core.Vec3
	radius     float64
	alive      bool
	subscriber func(Entity)
	subGen     uint64
}

func (t *target) ID() EntityID         { return t.id }
func (t *target) Archetype() Archetype { return t.arch }
func (t *target) Position() core.Vec3  { return t.pos }
func (t *target) Alive() bool          { return t.alive }

// Destroy is terminal. The subscriber is notified on the next scheduler
// dispatch; repeated calls are no-ops.
func (t *target) Destroy() {
	if !t.alive {
		return
	}
	t.alive = false
	t.world.remove(t.id)
	t.world.sched.Schedule(0, func() {
		fn := t.subscriber
		t.subscriber = nil
		if fn != nil {
			fn(t)
		}
	})
}

func (t *target) OnDestroyed(fn func(Entity)) func() {
	t.subGen++
	gen := t.subGen
	t.subscriber = fn
	return func() {
		if t.subGen == gen {
			t.subscriber = nil
		}
	}
}
