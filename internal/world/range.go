package world

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/sched"
)

// Range is an in-memory shooting range. Targets are spheres that block the
// on-target channel; static blockers are boxes that block the off-target
// channel. Destruction notices are delivered through the scheduler.
type Range struct {
	sched    *sched.Scheduler
	rng      *rand.Rand
	radii    map[Archetype]float64
	targets  map[EntityID]*target
	blockers []blocker
	failNext int
}

type blocker struct {
	id  EntityID
	box core.Box
}

// NewRange creates an empty range driven by s and seeded for sampling.
func NewRange(s *sched.Scheduler, seed int64) *Range {
	return &Range{
		sched:   s,
		rng:     rand.New(rand.NewSource(seed)),
		radii:   make(map[Archetype]float64),
		targets: make(map[EntityID]*target),
	}
}

// RegisterArchetype makes arch spawnable as a sphere of the given radius.
func (r *Range) RegisterArchetype(arch Archetype, radius float64) {
	r.radii[arch] = radius
}

// AddBlocker adds static geometry that stops off-target traces.
func (r *Range) AddBlocker(name string, box core.Box) EntityID {
	id := EntityID(name)
	r.blockers = append(r.blockers, blocker{id: id, box: box})
	return id
}

// FailNextSpawns makes the next n Spawn calls fail.
func (r *Range) FailNextSpawns(n int) {
	r.failNext = n
}

// SampleRandomPoint returns a uniform point inside volume.
func (r *Range) SampleRandomPoint(volume core.Box) core.Vec3 {
	return core.RandomPointInBox(r.rng, volume)
}

// Spawn creates a live target sphere of a registered archetype.
func (r *Range) Spawn(arch Archetype, pos core.Vec3, _ core.Rotator) (Entity, error) {
	if r.failNext > 0 {
		r.failNext--
		return nil, fmt.Errorf("%w: %s rejected by world", ErrSpawnFailed, arch)
	}
	radius, ok := r.radii[arch]
	if !ok {
		return nil, fmt.Errorf("%w: unknown archetype %q", ErrSpawnFailed, arch)
	}
	t := &target{
		world:  r,
		id:     EntityID(uuid.NewString()),
		arch:   arch,
		pos:    pos,
		radius: radius,
		alive:  true,
	}
	r.targets[t.id] = t
	return t, nil
}

// Resize changes the radius of a live target.
func (r *Range) Resize(id EntityID, radius float64) {
	if t, ok := r.targets[id]; ok {
		t.radius = radius
	}
}

// Destroy destroys the live target with the given id, if any.
func (r *Range) Destroy(id EntityID) bool {
	t, ok := r.targets[id]
	if !ok {
		return false
	}
	t.Destroy()
	return true
}

// TargetView is a read-only snapshot of a live target for rendering.
type TargetView struct {
	ID     EntityID
	Pos    core.Vec3
	Radius float64
}

// Targets lists live targets, farthest first so nearer ones draw on top.
func (r *Range) Targets() []TargetView {
	views := make([]TargetView, 0, len(r.targets))
	for _, t := range r.targets {
		views = append(views, TargetView{ID: t.id, Pos: t.pos, Radius: t.radius})
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Pos.X != views[j].Pos.X {
			return views[i].Pos.X > views[j].Pos.X
		}
		return views[i].ID < views[j].ID
	})
	return views
}

// RangedQuery casts a ray against the requested channel and returns the
// nearest hit within MaxRange.
func (r *Range) RangedQuery(q Query) (HitInfo, bool) {
	dir := q.Direction.Normalize()
	if dir.IsZero() || q.MaxRange <= 0 {
		return HitInfo{}, false
	}
	ignored := func(id EntityID) bool {
		for _, ig := range q.Ignore {
			if ig == id {
				return true
			}
		}
		return false
	}

	best := HitInfo{Distance: math.Inf(1)}
	found := false
	consider := func(id EntityID, dist float64) {
		if dist <= q.MaxRange && dist < best.Distance {
			best = HitInfo{Actor: id, Point: q.Origin.Add(dir.Scale(dist)), Distance: dist}
			found = true
		}
	}

	switch q.Channel {
	case ChannelOnTarget:
		for _, t := range r.targets {
			if ignored(t.id) {
				continue
			}
			if d, ok := raySphere(q.Origin, dir, t.pos, t.radius); ok {
				consider(t.id, d)
			}
		}
	case ChannelOffTarget:
		for _, b := range r.blockers {
			if ignored(b.id) {
				continue
			}
			if d, ok := rayBox(q.Origin, dir, b.box); ok {
				consider(b.id, d)
			}
		}
	}
	return best, found
}

func (r *Range) remove(id EntityID) {
	delete(r.targets, id)
}

// raySphere returns the distance along a unit ray to the first intersection
// with a sphere. Origins inside the sphere hit at distance 0.
func raySphere(origin, dir, center core.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	disc := b*b - c
	if disc < 0 || b > 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

// rayBox intersects a unit ray with an axis-aligned box using the slab method.
func rayBox(origin, dir core.Vec3, box core.Box) (float64, bool) {
	lo, hi := box.Min(), box.Max()
	tmin, tmax := 0.0, math.Inf(1)

	axes := [3][4]float64{
		{origin.X, dir.X, lo.X, hi.X},
		{origin.Y, dir.Y, lo.Y, hi.Y},
		{origin.Z, dir.Z, lo.Z, hi.Z},
	}
	for _, a := range axes {
		o, d, l, h := a[0], a[1], a[2], a[3]
		if d == 0 {
			if o < l || o > h {
				return 0, false
			}
			continue
		}
		t1, t2 := (l-o)/d, (h-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

var (
	_ Oracle  = (*Range)(nil)
	_ Factory = (*Range)(nil)
)
