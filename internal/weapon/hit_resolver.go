package weapon

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

// OutcomeKind classifies a traced shot.
type OutcomeKind int

const (
	NoHit OutcomeKind = iota
	OnTargetHit
	OffTargetHit
)

// String returns the outcome name used in logs, metrics and storage.
func (k OutcomeKind) String() string {
	switch k {
	case OnTargetHit:
		return "hit"
	case OffTargetHit:
		return "miss"
	default:
		return "no_hit"
	}
}

// Outcome is the classified result of one trace.
type Outcome struct {
	Kind  OutcomeKind
	Actor world.EntityID
	Point core.Vec3
}

// Hit reports whether the shot struck a target.
func (o Outcome) Hit() bool {
	return o.Kind == OnTargetHit
}

// TraceRequest describes a hitscan shot.
type TraceRequest struct {
	Origin    core.Vec3
	Direction core.Vec3
	MaxRange  float64
	OnTarget  world.Channel
	OffTarget world.Channel
	Ignore    []world.EntityID
}

// HitResolver turns a shot into an Outcome by querying both channels.
type HitResolver struct {
	oracle world.Oracle
	logger *log.Logger
	marker Marker
}

// NewHitResolver creates a resolver over the given world oracle.
func NewHitResolver(oracle world.Oracle, logger *log.Logger) *HitResolver {
	return &HitResolver{oracle: oracle, logger: logger}
}

// SetMarker installs an optional impact marker sink.
func (r *HitResolver) SetMarker(m Marker) {
	r.marker = m
}

// Trace runs the on-target and off-target queries along the same ray and
// classifies the result. Both queries always run.
func (r *HitResolver) Trace(req TraceRequest) Outcome {
	dir := req.Direction.Normalize()
	if dir.IsZero() || req.MaxRange <= 0 {
		r.logger.Debug("no hit", "reason", "invalid ray")
		return Outcome{Kind: NoHit}
	}

	base := world.Query{
		Origin:    req.Origin,
		Direction: dir,
		MaxRange:  req.MaxRange,
		Ignore:    req.Ignore,
	}
	onQ, offQ := base, base
	onQ.Channel = req.OnTarget
	offQ.Channel = req.OffTarget

	onHit, onOK := r.oracle.RangedQuery(onQ)
	offHit, offOK := r.oracle.RangedQuery(offQ)

	var out Outcome
	switch {
	case onOK:
		out = Outcome{Kind: OnTargetHit, Actor: onHit.Actor, Point: onHit.Point}
		r.logger.Debug("target hit", "actor", onHit.Actor, "at", onHit.Point)
	case offOK:
		out = Outcome{Kind: OffTargetHit, Actor: offHit.Actor, Point: offHit.Point}
		r.logger.Debug("target missed", "actor", offHit.Actor, "at", offHit.Point)
	default:
		r.logger.Debug("no hit")
		return Outcome{Kind: NoHit}
	}

	if r.marker != nil {
		r.marker.Mark(out.Point, out.Hit())
	}
	return out
}
