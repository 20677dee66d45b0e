// Package world defines the collaborator contracts the shooting range core
// depends on (oracle, factory, entity handles) and an in-memory Range that
// implements them for the terminal game, the bot simulation and tests.
package world

//go:generate go tool mockgen -source=world.go -destination=mocks/world_mock.go -package=mocks

import (
	"errors"

	"github.com/vovakirdan/shooting-grounds/internal/core"
)

// Channel is a collision channel a ranged query tests against.
type Channel uint8

const (
	// ChannelOnTarget is blocked by shootable targets.
	ChannelOnTarget Channel = iota + 1
	// ChannelOffTarget is blocked by range geometry (backstop, floor).
	ChannelOffTarget
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelOnTarget:
		return "on_target"
	case ChannelOffTarget:
		return "off_target"
	default:
		return "unknown"
	}
}

// EntityID is an opaque identity for spawned and static actors.
type EntityID string

// Archetype names the kind of entity a factory should create.
type Archetype string

// ErrSpawnFailed is wrapped by every Factory.Spawn failure.
var ErrSpawnFailed = errors.New("spawn failed")

// HitInfo describes the nearest blocking hit of a ranged query.
type HitInfo struct {
	Actor    EntityID
	Point    core.Vec3
	Distance float64
}

// Query is a single ray cast against one channel.
type Query struct {
	Origin    core.Vec3
	Direction core.Vec3 // Unit length
	MaxRange  float64
	Channel   Channel
	Ignore    []EntityID
}

// Oracle answers spatial questions about the world.
type Oracle interface {
	SampleRandomPoint(volume core.Box) core.Vec3
	RangedQuery(q Query) (HitInfo, bool)
}

// Factory creates entities in the world.
type Factory interface {
	Spawn(arch Archetype, pos core.Vec3, rot core.Rotator) (Entity, error)
}

// Entity is a handle to a spawned actor.
type Entity interface {
	ID() EntityID
	Archetype() Archetype
	Position() core.Vec3
	Alive() bool
	// Destroy marks the entity dead. Subscribers are notified later, from
	// the world's scheduler, never inside Destroy.
	Destroy()
	// OnDestroyed installs the single destruction subscriber, replacing any
	// previous one. The callback runs at most once. The returned func removes it.
	OnDestroyed(fn func(Entity)) (unsubscribe func())
}
