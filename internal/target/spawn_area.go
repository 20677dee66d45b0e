// Package target keeps exactly one live target inside a spawn volume,
// replacing it as soon as it is destroyed.
package target

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

// ErrNoArchetype is returned when the spawn area has no target archetype configured.
var ErrNoArchetype = errors.New("target: archetype is not set")

// Config describes what a spawn area spawns and where.
type Config struct {
	Archetype world.Archetype
	Volume    core.Box
}

// SpawnArea owns a spawn volume and a non-owning reference to the one live
// target inside it.
type SpawnArea struct {
	cfg         Config
	oracle      world.Oracle
	factory     world.Factory
	logger      *log.Logger
	current     world.Entity
	unsubscribe func()
	onSpawned   func(world.Entity)
	spawned     int
	stopped     bool
}

// NewSpawnArea creates a spawn area. Nothing spawns until BeginPlay.
func NewSpawnArea(cfg Config, oracle world.Oracle, factory world.Factory, logger *log.Logger) *SpawnArea {
	return &SpawnArea{
		cfg:     cfg,
		oracle:  oracle,
		factory: factory,
		logger:  logger,
	}
}

// OnSpawned sets a hook that runs after every successful spawn.
func (a *SpawnArea) OnSpawned(fn func(world.Entity)) {
	a.onSpawned = fn
}

// BeginPlay spawns the first target.
func (a *SpawnArea) BeginPlay() {
	a.stopped = false
	//nolint:errcheck // SpawnTarget logs its own failures
	a.SpawnTarget()
}

// SpawnTarget places a new target at a random point inside the volume.
// It is skipped while the tracked target is still alive, so the area never
// holds two live targets. Failures are logged and also returned.
func (a *SpawnArea) SpawnTarget() error {
	if a.cfg.Archetype == "" {
		a.logger.Warn("target archetype is not set")
		return ErrNoArchetype
	}
	if a.current != nil && a.current.Alive() {
		a.logger.Debug("spawn skipped, target still alive", "target", a.current.ID())
		return nil
	}

	pos := a.oracle.SampleRandomPoint(a.cfg.Volume)
	e, err := a.factory.Spawn(a.cfg.Archetype, pos, core.Rotator{})
	if err != nil {
		a.logger.Error("failed to spawn target", "archetype", a.cfg.Archetype, "error", err)
		return fmt.Errorf("target: spawn %s: %w", a.cfg.Archetype, err)
	}

	a.release()
	a.current = e
	a.unsubscribe = e.OnDestroyed(a.onTargetDestroyed)
	a.spawned++
	a.logger.Debug("target spawned", "target", e.ID(), "at", pos)

	if a.onSpawned != nil {
		a.onSpawned(e)
	}
	return nil
}

// onTargetDestroyed respawns before returning. Notices for anything other
// than the tracked target are stale and ignored.
func (a *SpawnArea) onTargetDestroyed(e world.Entity) {
	if a.stopped || a.current == nil || e.ID() != a.current.ID() {
		return
	}
	a.unsubscribe = nil
	//nolint:errcheck // SpawnTarget logs its own failures
	a.SpawnTarget()
}

// EndPlay stops respawning and drops the destruction subscription.
func (a *SpawnArea) EndPlay() {
	a.stopped = true
	a.release()
}

func (a *SpawnArea) release() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Current returns the tracked target, which may be nil or already destroyed.
func (a *SpawnArea) Current() world.Entity {
	return a.current
}

// Spawned returns how many targets this area has created.
func (a *SpawnArea) Spawned() int {
	return a.spawned
}

// Volume returns the spawn volume.
func (a *SpawnArea) Volume() core.Box {
	return a.cfg.Volume
}
