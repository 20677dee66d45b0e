// Package weapon implements hitscan weapons: trigger handling, refire
// gating for semi-auto and full-auto modes, ammo bookkeeping and trace-based
// hit resolution.
package weapon

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/sched"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

// Config holds the static parameters of a weapon.
type Config struct {
	Name         string
	MagazineSize int
	RefireRate   float64 // Minimum seconds between shots
	FullAuto     bool
	MaxRange     float64
	ShotLoudness float64
}

// State is the observable firing state of a weapon.
type State int

const (
	Idle State = iota
	Firing
	Cooldown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Firing:
		return "firing"
	case Cooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// Shot is emitted after every executed fire. It doubles as the noise event
// other systems can perceive.
type Shot struct {
	Time     float64
	Outcome  Outcome
	Origin   core.Vec3
	Loudness float64
	Bullets  int
}

// Controller is the per-weapon firing state machine.
type Controller struct {
	cfg      Config
	id       world.EntityID
	sched    *sched.Scheduler
	refire   *sched.Slot
	resolver *HitResolver
	holder   Holder
	logger   *log.Logger

	active   bool
	firing   bool
	bullets  int
	lastShot float64
	shots    int
	onShot   func(Shot)
}

// NewController creates an inactive weapon with a full magazine.
func NewController(cfg Config, s *sched.Scheduler, resolver *HitResolver, holder Holder, logger *log.Logger) *Controller {
	if cfg.MagazineSize < 1 {
		cfg.MagazineSize = 1
	}
	return &Controller{
		cfg:      cfg,
		id:       world.EntityID(uuid.NewString()),
		sched:    s,
		refire:   sched.NewSlot(s),
		resolver: resolver,
		holder:   holder,
		logger:   logger.With("weapon", cfg.Name),
		bullets:  cfg.MagazineSize,
		lastShot: math.Inf(-1),
	}
}

// OnShot sets the listener that receives every executed shot.
func (c *Controller) OnShot(fn func(Shot)) {
	c.onShot = fn
}

// Activate readies the weapon and tells the holder.
func (c *Controller) Activate() {
	c.active = true
	c.holder.OnWeaponActivated()
	c.holder.UpdateWeaponHUD(c.bullets, c.cfg.MagazineSize)
}

// Deactivate stops firing and tells the holder.
func (c *Controller) Deactivate() {
	c.StopFiring()
	c.active = false
	c.holder.OnWeaponDeactivated()
}

// StartFiring pulls the trigger. The weapon fires at once when the refire
// interval has passed. Otherwise a full-auto weapon queues a shot for the
// remaining wait and a semi-auto weapon ignores the pull.
func (c *Controller) StartFiring() {
	if !c.active {
		return
	}
	c.firing = true

	elapsed := c.sched.Now() - c.lastShot
	if elapsed > c.cfg.RefireRate {
		c.fire()
		return
	}
	if c.cfg.FullAuto {
		c.refire.Set(c.cfg.RefireRate-elapsed, c.fire)
	}
}

// StopFiring releases the trigger and cancels any pending timer.
func (c *Controller) StopFiring() {
	c.firing = false
	c.refire.Clear()
}

func (c *Controller) fire() {
	if !c.firing {
		return
	}

	origin, dir, ok := c.holder.ViewPoint()
	out := Outcome{Kind: NoHit}
	if ok {
		out = c.resolver.Trace(TraceRequest{
			Origin:    origin,
			Direction: dir,
			MaxRange:  c.cfg.MaxRange,
			OnTarget:  world.ChannelOnTarget,
			OffTarget: world.ChannelOffTarget,
			Ignore:    []world.EntityID{c.id, c.holder.OwnerID()},
		})
	}

	now := c.sched.Now()
	c.lastShot = now
	c.shots++

	// Depletion refills the magazine immediately; there is no reload state.
	c.bullets--
	if c.bullets <= 0 {
		c.bullets = c.cfg.MagazineSize
	}
	c.holder.UpdateWeaponHUD(c.bullets, c.cfg.MagazineSize)

	if c.onShot != nil {
		c.onShot(Shot{
			Time:     now,
			Outcome:  out,
			Origin:   origin,
			Loudness: c.cfg.ShotLoudness,
			Bullets:  c.bullets,
		})
	}

	if c.cfg.FullAuto {
		c.refire.Set(c.cfg.RefireRate, c.fire)
	} else {
		c.refire.Set(c.cfg.RefireRate, c.cooldownExpired)
	}
}

func (c *Controller) cooldownExpired() {
	c.holder.OnSemiWeaponRefire()
}

// Teardown cancels the outstanding timer. The weapon must not be used afterwards.
func (c *Controller) Teardown() {
	c.firing = false
	c.active = false
	c.refire.Clear()
}

// State returns Cooldown while a timer is pending, Firing while the trigger
// is held, and Idle otherwise.
func (c *Controller) State() State {
	switch {
	case c.refire.Active():
		return Cooldown
	case c.firing:
		return Firing
	default:
		return Idle
	}
}

// Active reports whether the weapon is drawn.
func (c *Controller) Active() bool { return c.active }

// TriggerHeld reports the firing intent.
func (c *Controller) TriggerHeld() bool { return c.firing }

// Bullets returns the rounds left in the magazine.
func (c *Controller) Bullets() int { return c.bullets }

// Shots returns the number of shots executed.
func (c *Controller) Shots() int { return c.shots }

// LastShot returns the game time of the most recent shot, or -Inf.
func (c *Controller) LastShot() float64 { return c.lastShot }

// Config returns the weapon's static parameters.
func (c *Controller) Config() Config { return c.cfg }

// ID returns the weapon's entity identity, excluded from its own traces.
func (c *Controller) ID() world.EntityID { return c.id }
