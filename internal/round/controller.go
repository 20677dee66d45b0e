// Package round runs the multi-round session: the waiting/active/complete
// state machine, the per-round countdown, team scores and shot statistics.
package round

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooting-grounds/internal/sched"
)

// State is the session phase.
type State int

const (
	WaitingForStart State = iota
	RoundActive
	AllRoundsComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case RoundActive:
		return "active"
	case AllRoundsComplete:
		return "complete"
	default:
		return "waiting"
	}
}

// Config holds the session shape.
type Config struct {
	MaxRounds     int
	RoundDuration float64 // Seconds
}

// DefaultConfig returns three rounds of sixty seconds.
func DefaultConfig() Config {
	return Config{MaxRounds: 3, RoundDuration: 60}
}

// RoundResult is the breakdown of one finished round.
type RoundResult struct {
	Round       int
	Hits        int
	Misses      int
	Accuracy    float64
	AvgReaction float64
	HasReaction bool
	StartedAt   float64
	EndedAt     float64
}

// Controller is the round state machine.
type Controller struct {
	cfg       Config
	sched     *sched.Scheduler
	countdown *sched.Slot
	display   Display
	input     InputGate
	logger    *log.Logger

	state         State
	round         int
	timeRemaining float64
	scores        ScoreTable
	stats         Stats

	roundMark  Checkpoint
	roundStart float64
	results    []RoundResult

	onRoundEnd func(RoundResult)
	onComplete func(Summary)
}

// NewController creates a controller waiting for round 1. Call BeginPlay
// to push the initial UI state.
func NewController(cfg Config, s *sched.Scheduler, display Display, input InputGate, logger *log.Logger) *Controller {
	def := DefaultConfig()
	if cfg.MaxRounds < 1 {
		cfg.MaxRounds = def.MaxRounds
	}
	if cfg.RoundDuration <= 0 {
		cfg.RoundDuration = def.RoundDuration
	}
	return &Controller{
		cfg:       cfg,
		sched:     s,
		countdown: sched.NewSlot(s),
		display:   display,
		input:     input,
		logger:    logger,
		state:     WaitingForStart,
		round:     1,
	}
}

// OnRoundEnd sets a hook called after every round.
func (c *Controller) OnRoundEnd(fn func(RoundResult)) {
	c.onRoundEnd = fn
}

// OnComplete sets a hook called once when the last round ends.
func (c *Controller) OnComplete(fn func(Summary)) {
	c.onComplete = fn
}

// BeginPlay shows the start button and locks input.
func (c *Controller) BeginPlay() {
	c.display.ShowStartButton()
	c.input.SetInputEnabled(false)
}

// StartRound begins the current round. It is a no-op unless the controller
// is waiting for a start.
func (c *Controller) StartRound() {
	if c.state != WaitingForStart {
		return
	}
	c.state = RoundActive
	c.input.SetInputEnabled(true)
	c.timeRemaining = c.cfg.RoundDuration
	c.roundMark = c.stats.Checkpoint()
	c.roundStart = c.sched.Now()
	c.countdown.Set(c.cfg.RoundDuration, c.handleLevelEnd)

	c.display.HideStartButton()
	c.display.UpdateTimer(c.timeRemaining)
	c.logger.Info("round started", "round", c.round, "of", c.cfg.MaxRounds)
}

func (c *Controller) handleLevelEnd() {
	if c.state != RoundActive {
		return
	}
	c.timeRemaining = 0
	res := c.roundResult()
	c.results = append(c.results, res)
	c.logger.Info("round ended", "round", c.round, "hits", res.Hits, "misses", res.Misses)

	if c.round < c.cfg.MaxRounds {
		c.round++
		c.state = WaitingForStart
		c.input.SetInputEnabled(false)
		c.display.ShowStartButton()
		c.logger.Info("waiting for player to start round", "round", c.round)
		if c.onRoundEnd != nil {
			c.onRoundEnd(res)
		}
		return
	}

	c.state = AllRoundsComplete
	c.input.SetInputEnabled(false)
	if c.onRoundEnd != nil {
		c.onRoundEnd(res)
	}

	sum := c.Summary()
	c.logger.Info("session complete",
		"hits", sum.Hits,
		"misses", sum.Misses,
		"shots", sum.ShotsFired,
		"accuracy", sum.Accuracy,
	)
	if sum.HasReaction {
		c.logger.Info("average reaction time", "seconds", sum.AvgReaction)
	} else {
		c.logger.Info("no targets were spawned or shot")
	}
	if c.onComplete != nil {
		c.onComplete(sum)
	}
}

func (c *Controller) roundResult() RoundResult {
	st := c.stats.Since(c.roundMark)
	avg, ok := st.AverageReactionTime()
	return RoundResult{
		Round:       c.round,
		Hits:        st.Hits(),
		Misses:      st.Misses(),
		Accuracy:    st.Accuracy(),
		AvgReaction: avg,
		HasReaction: ok,
		StartedAt:   c.roundStart,
		EndedAt:     c.sched.Now(),
	}
}

// Tick counts the round clock down by dt and pushes it to the display.
// The round itself ends on the scheduled countdown.
func (c *Controller) Tick(dt float64) {
	if c.state != RoundActive {
		return
	}
	if c.timeRemaining > 0 {
		c.timeRemaining -= dt
		if c.timeRemaining < 0 {
			c.timeRemaining = 0
		}
	}
	c.display.UpdateTimer(c.timeRemaining)
}

// IncrementTeamScore adds a point to team in any state.
func (c *Controller) IncrementTeamScore(team uint8) {
	score := c.scores.Increment(team)
	c.display.UpdateScore(team, score)
}

// RecordSpawn records a target exposure time.
func (c *Controller) RecordSpawn(ts float64) { c.stats.RecordSpawn(ts) }

// RecordHit records a successful hit.
func (c *Controller) RecordHit(ts float64) { c.stats.RecordHit(ts) }

// RecordMiss records a missed shot.
func (c *Controller) RecordMiss() { c.stats.RecordMiss() }

// State returns the session phase.
func (c *Controller) State() State { return c.state }

// CurrentRound returns the 1-based round number.
func (c *Controller) CurrentRound() int { return c.round }

// MaxRounds returns the configured number of rounds.
func (c *Controller) MaxRounds() int { return c.cfg.MaxRounds }

// TimeRemaining returns the seconds left in the active round.
func (c *Controller) TimeRemaining() float64 { return c.timeRemaining }

// Score returns team's score.
func (c *Controller) Score(team uint8) int { return c.scores.Get(team) }

// Scores returns a copy of the score table.
func (c *Controller) Scores() map[uint8]int { return c.scores.Snapshot() }

// Stats exposes the running statistics.
func (c *Controller) Stats() *Stats { return &c.stats }

// Results returns the finished rounds so far.
func (c *Controller) Results() []RoundResult {
	return append([]RoundResult(nil), c.results...)
}

// Reset cancels the countdown and returns to the initial state, then runs
// BeginPlay again.
func (c *Controller) Reset() {
	c.countdown.Clear()
	c.state = WaitingForStart
	c.round = 1
	c.timeRemaining = 0
	c.scores.Reset()
	c.stats.Reset()
	c.roundMark = Checkpoint{}
	c.results = nil
	c.BeginPlay()
}
