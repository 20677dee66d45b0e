// Package gallery is the shooting gallery game: a first-person range where
// one target at a time appears downrange and the player shoots it with a
// hitscan weapon over several timed rounds.
package gallery

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooting-grounds/internal/config"
	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/rank"
	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/sched"
	"github.com/vovakirdan/shooting-grounds/internal/target"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

const (
	targetArchetype world.Archetype = "target"
	playerID        world.EntityID  = "player"
	playerTeam      uint8           = 0

	// triggerHoldWindow keeps the trigger pulled between key repeats.
	triggerHoldWindow = 0.5
	markerLifetime    = 0.35
	maxPitch          = 20.0

	minScreenW = 40
	minScreenH = 12
)

// variant selects the weapon a registered game id plays with.
type variant struct {
	id     string
	title  string
	weapon string
}

var (
	rifleVariant  = variant{id: "gallery", title: "Shooting Gallery", weapon: "rifle"}
	pistolVariant = variant{id: "gallery_pistol", title: "Shooting Gallery (Pistol)", weapon: "pistol"}
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger is shared by every game instance; interactive play points it at a file.
var logger = log.New(io.Discard)

var observer Observer = nopObserver{}

// rankHistory supplies past session accuracies for ranking a finished session.
var rankHistory func(gameID string) []float64

// SetRankHistory sets where finished sessions look up past accuracies.
func SetRankHistory(fn func(gameID string) []float64) {
	rankHistory = fn
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger new games use.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetObserver installs the event observer for games created afterwards.
// Call it before any game starts.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	observer = o
}

func init() {
	registry.Register(rifleVariant.id, func() registry.Game {
		return New()
	})
	registry.Register(pistolVariant.id, func() registry.Game {
		return NewPistol()
	})
}

// marker is a short-lived impact flash.
type marker struct {
	point core.Vec3
	hit   bool
	until float64
}

// hud mirrors what the round controller and the weapon push to their
// display and holder.
type hud struct {
	scores      map[uint8]int
	timer       float64
	startShown  bool
	bullets     int
	magazine    int
	weaponDrawn bool
	refireReady bool
}

// Game implements the shooting gallery.
type Game struct {
	variant variant
	cfg     config.GalleryConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	obs     Observer

	sched      *sched.Scheduler
	rng        *rand.Rand
	field      *world.Range
	area       *target.SpawnArea
	resolver   *weapon.HitResolver
	weapon     *weapon.Controller
	round      *round.Controller
	difficulty *config.DifficultyManager

	tick         uint64
	yaw, pitch   float64 // Degrees; positive yaw aims left, positive pitch up
	inputEnabled bool
	paused       bool
	tooSmall     bool
	holdUntil    float64
	exposedAt    map[world.EntityID]float64
	markers      []marker
	hud          hud
	summary      *round.Summary
	rank         int
}

// New creates a gallery game with the full-auto rifle.
func New() *Game {
	return &Game{variant: rifleVariant}
}

// NewPistol creates a gallery game with the semi-auto pistol.
func NewPistol() *Game {
	return &Game{variant: pistolVariant}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.title }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.teardown()
	g.runtime = runtime
	g.logger = logger.With("game", g.variant.id)
	g.obs = observer

	cfg, err := config.LoadGallery(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultGalleryConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGalleryPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	wcfg, ok := cfg.Weapon(g.variant.weapon)
	if !ok {
		g.logger.Warn("weapon preset missing, using default", "weapon", g.variant.weapon)
		wcfg = config.DefaultGalleryConfig().Weapons[g.variant.weapon]
	}

	g.tick = 0
	g.yaw, g.pitch = 0, 0
	g.inputEnabled = false
	g.paused = false
	g.holdUntil = 0
	g.exposedAt = make(map[world.EntityID]float64)
	g.markers = nil
	g.hud = hud{scores: make(map[uint8]int)}
	g.summary = nil
	g.rank = 0
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.sched = sched.New()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.field = world.NewRange(g.sched, g.rng.Int63())
	g.buildRange()

	g.area = target.NewSpawnArea(target.Config{
		Archetype: targetArchetype,
		Volume:    core.NewBox(cfg.Range.SpawnOrigin.Vec(), cfg.Range.SpawnExtent.Vec()),
	}, g.field, g.field, g.logger)
	g.area.OnSpawned(g.onTargetSpawned)

	g.resolver = weapon.NewHitResolver(g.field, g.logger)
	g.resolver.SetMarker(g)
	g.weapon = weapon.NewController(weapon.Config{
		Name:         g.variant.weapon,
		MagazineSize: wcfg.MagazineSize,
		RefireRate:   wcfg.RefireRate,
		FullAuto:     wcfg.FullAuto,
		MaxRange:     wcfg.MaxRange,
		ShotLoudness: wcfg.Loudness,
	}, g.sched, g.resolver, g, g.logger)
	g.weapon.OnShot(g.onShot)

	g.round = round.NewController(round.Config{
		MaxRounds:     cfg.Rounds.Max,
		RoundDuration: cfg.Rounds.Duration,
	}, g.sched, g, g, g.logger)
	g.round.OnRoundEnd(func(res round.RoundResult) {
		g.obs.RoundEnded(g.variant.id, res)
	})
	g.round.OnComplete(g.onSessionComplete)

	g.round.BeginPlay()
	g.weapon.Activate()
	g.area.BeginPlay()
}

// buildRange adds the backstop wall and the floor. Shots that strike them
// are misses; shots over the backstop hit nothing.
func (g *Game) buildRange() {
	rc := g.cfg.Range
	g.field.RegisterArchetype(targetArchetype, rc.TargetRadius)
	g.field.AddBlocker("backstop", core.NewBox(core.V3(rc.BackstopX+1, 0, 5), core.V3(1, 200, 5)))
	g.field.AddBlocker("floor", core.NewBox(core.V3(rc.BackstopX/2, 0, -0.5), core.V3(rc.BackstopX/2+2, 200, 0.5)))
}

func (g *Game) teardown() {
	if g.weapon != nil {
		g.weapon.Teardown()
	}
	if g.area != nil {
		g.area.EndPlay()
	}
}

// Resize follows a terminal resize without restarting the session. Play
// freezes while the screen is too small.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < minScreenW || h < minScreenH
	if g.tooSmall && g.weapon != nil {
		g.weapon.StopFiring()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.round.State() == round.AllRoundsComplete {
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.round.State() != round.AllRoundsComplete {
		g.paused = !g.paused
		if g.paused {
			g.weapon.StopFiring()
		}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.applyInput(in)

	dt := g.runtime.TickSeconds()
	g.round.Tick(dt)
	g.sched.Advance(dt)

	if g.weapon.TriggerHeld() && g.sched.Now() >= g.holdUntil {
		g.weapon.StopFiring()
	}
	g.expireMarkers()

	return core.StepResult{State: g.State()}
}

func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) && g.round.State() == round.WaitingForStart {
		g.startRound()
	}
	if !g.inputEnabled {
		return
	}

	step := g.cfg.Range.AimSpeed
	if in.Has(core.ActionAimLeft) {
		g.yaw += step
	}
	if in.Has(core.ActionAimRight) {
		g.yaw -= step
	}
	if in.Has(core.ActionAimUp) {
		g.pitch += step
	}
	if in.Has(core.ActionAimDown) {
		g.pitch -= step
	}
	g.SetAim(g.yaw, g.pitch)

	if in.Has(core.ActionCeaseFire) {
		g.weapon.StopFiring()
	}
	if in.Has(core.ActionFire) {
		g.pullTrigger()
	}
}

// pullTrigger keeps a full-auto trigger held across key repeats. Every press
// of a semi-auto trigger is a fresh pull, gated by the weapon's cooldown.
func (g *Game) pullTrigger() {
	g.holdUntil = g.sched.Now() + triggerHoldWindow
	if g.weapon.Config().FullAuto && g.weapon.TriggerHeld() {
		return
	}
	g.hud.refireReady = false
	g.weapon.StartFiring()
}

// startRound starts the round and re-stamps live targets so the wait before
// the round does not count as reaction time.
func (g *Game) startRound() {
	g.round.StartRound()
	now := g.sched.Now()
	if cur := g.area.Current(); cur != nil && cur.Alive() {
		g.exposedAt[cur.ID()] = now
	}
}

func (g *Game) onTargetSpawned(e world.Entity) {
	g.exposedAt[e.ID()] = g.sched.Now()
	radius := g.difficulty.TargetRadius(g.cfg.Range.TargetRadius, g.round.Stats().Hits(), int(g.tick))
	g.field.Resize(e.ID(), radius)
	g.obs.TargetSpawned(g.variant.id, e.Position())
}

func (g *Game) onShot(s weapon.Shot) {
	if s.Outcome.Kind == weapon.OnTargetHit {
		id := s.Outcome.Actor
		exposed, ok := g.exposedAt[id]
		if !ok {
			exposed = s.Time
		}
		delete(g.exposedAt, id)
		g.round.RecordSpawn(exposed)
		g.round.RecordHit(s.Time)
		g.round.IncrementTeamScore(playerTeam)
		g.field.Destroy(id)
		g.logger.Debug("target down", "reaction", s.Time-exposed)
	} else {
		g.round.RecordMiss()
	}
	g.obs.ShotFired(g.variant.id, s)
}

func (g *Game) onSessionComplete(sum round.Summary) {
	g.summary = &sum
	var history []float64
	if rankHistory != nil {
		history = rankHistory(g.variant.id)
	}
	g.rank = rank.Bucket(sum.Accuracy, history)
	g.weapon.StopFiring()
	g.obs.SessionCompleted(g.variant.id, sum)
}

func (g *Game) expireMarkers() {
	now := g.sched.Now()
	kept := g.markers[:0]
	for _, m := range g.markers {
		if m.until > now {
			kept = append(kept, m)
		}
	}
	g.markers = kept
}

// SetAim points the weapon, clamped to the field of view.
func (g *Game) SetAim(yaw, pitch float64) {
	half := g.cfg.Range.FOV / 2
	g.yaw = core.ClampF(yaw, -half, half)
	g.pitch = core.ClampF(pitch, -maxPitch, maxPitch)
}

// Aim returns the current yaw and pitch in degrees.
func (g *Game) Aim() (yaw, pitch float64) {
	return g.yaw, g.pitch
}

// Eye returns the shooter's eye position.
func (g *Game) Eye() core.Vec3 {
	return core.V3(0, 0, g.cfg.Range.EyeHeight)
}

// AimDirection returns the unit aim vector for the current yaw and pitch.
func (g *Game) AimDirection() core.Vec3 {
	return directionFor(g.yaw, g.pitch)
}

func directionFor(yaw, pitch float64) core.Vec3 {
	y := yaw * math.Pi / 180
	p := pitch * math.Pi / 180
	return core.V3(math.Cos(p)*math.Cos(y), math.Cos(p)*math.Sin(y), math.Sin(p))
}

// anglesTo returns the yaw and pitch that point from eye at p.
func anglesTo(eye, p core.Vec3) (yaw, pitch float64) {
	d := p.Sub(eye)
	flat := math.Hypot(d.X, d.Y)
	yaw = math.Atan2(d.Y, d.X) * 180 / math.Pi
	pitch = math.Atan2(d.Z, flat) * 180 / math.Pi
	return yaw, pitch
}

// weapon.Holder

func (g *Game) ViewPoint() (core.Vec3, core.Vec3, bool) {
	return g.Eye(), g.AimDirection(), true
}

func (g *Game) OwnerID() world.EntityID { return playerID }

func (g *Game) OnSemiWeaponRefire() { g.hud.refireReady = true }

func (g *Game) UpdateWeaponHUD(bullets, magazine int) {
	g.hud.bullets = bullets
	g.hud.magazine = magazine
}

func (g *Game) OnWeaponActivated() {
	g.hud.weaponDrawn = true
	g.hud.refireReady = true
}

func (g *Game) OnWeaponDeactivated() { g.hud.weaponDrawn = false }

// weapon.Marker

func (g *Game) Mark(point core.Vec3, hit bool) {
	g.markers = append(g.markers, marker{point: point, hit: hit, until: g.sched.Now() + markerLifetime})
}

// round.Display

func (g *Game) UpdateScore(team uint8, score int) { g.hud.scores[team] = score }

func (g *Game) UpdateTimer(secondsLeft float64) { g.hud.timer = secondsLeft }

func (g *Game) ShowStartButton() { g.hud.startShown = true }

func (g *Game) HideStartButton() { g.hud.startShown = false }

// round.InputGate

// SetInputEnabled locks or unlocks player input. Locking releases the trigger.
func (g *Game) SetInputEnabled(enabled bool) {
	g.inputEnabled = enabled
	if !enabled && g.weapon != nil {
		g.weapon.StopFiring()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	complete := g.round != nil && g.round.State() == round.AllRoundsComplete
	score := 0
	if g.round != nil {
		score = g.round.Score(playerTeam)
	}
	return core.GameState{
		Score:    score,
		GameOver: complete,
		Paused:   g.paused,
	}
}

// SessionSummary returns the final summary once every round has ended.
func (g *Game) SessionSummary() (round.Summary, bool) {
	if g.summary == nil {
		return round.Summary{}, false
	}
	return *g.summary, true
}

// Rank returns the finished session's rank, or 0 before completion.
func (g *Game) Rank() int { return g.rank }

// Weapon returns the name of the weapon preset in use.
func (g *Game) Weapon() string { return g.variant.weapon }

// Now returns the game clock in seconds.
func (g *Game) Now() float64 { return g.sched.Now() }

// CurrentTarget returns the live target, if any.
func (g *Game) CurrentTarget() (world.Entity, bool) {
	cur := g.area.Current()
	if cur == nil || !cur.Alive() {
		return nil, false
	}
	return cur, true
}

// RoundState returns the session phase.
func (g *Game) RoundState() round.State { return g.round.State() }

// ShotsFired returns how many shots the weapon has executed.
func (g *Game) ShotsFired() int { return g.weapon.Shots() }

var (
	_ registry.Game   = (*Game)(nil)
	_ weapon.Holder   = (*Game)(nil)
	_ weapon.Marker   = (*Game)(nil)
	_ round.Display   = (*Game)(nil)
	_ round.InputGate = (*Game)(nil)
)
