package gallery

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/shooting-grounds/internal/config"
	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

// ErrSessionTimeout is returned when a simulated session does not finish
// within its tick budget.
var ErrSessionTimeout = errors.New("gallery: session did not complete")

// Bot is a scripted shooter. It waits a reaction delay after each new
// target, aims at it with random error and fires until it is down.
type Bot struct {
	game *Game
	rng  *rand.Rand
	cfg  config.BotConfig

	seen   world.EntityID
	seenAt float64
	aimed  int // Shot count when the bot last aimed
}

// NewBot creates a bot driving g. Call it after g.Reset.
func NewBot(g *Game, cfg config.BotConfig, seed int64) *Bot {
	return &Bot{
		game:  g,
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		aimed: -1,
	}
}

// Input decides this tick's actions.
func (b *Bot) Input() core.InputFrame {
	in := core.NewInputFrame()
	g := b.game

	switch g.RoundState() {
	case round.WaitingForStart:
		in.Set(core.ActionConfirm)
		return in
	case round.AllRoundsComplete:
		return in
	}

	t, ok := g.CurrentTarget()
	if !ok {
		return in
	}
	if t.ID() != b.seen {
		b.seen = t.ID()
		b.seenAt = g.Now()
		b.aimed = -1
	}
	if g.Now()-b.seenAt < b.cfg.ReactionDelay {
		return in
	}

	if b.aimed != g.ShotsFired() {
		yaw, pitch := anglesTo(g.Eye(), t.Position())
		g.SetAim(yaw+b.jitter(), pitch+b.jitter())
		b.aimed = g.ShotsFired()
	}
	in.Set(core.ActionFire)
	return in
}

func (b *Bot) jitter() float64 {
	return (b.rng.Float64()*2 - 1) * b.cfg.Jitter
}

// RunSession plays g with the bot until every round is over. It returns
// ErrSessionTimeout if maxTicks pass first.
func RunSession(g *Game, b *Bot, maxTicks int) (round.Summary, error) {
	for i := 0; i < maxTicks; i++ {
		res := g.Step(b.Input())
		if res.State.GameOver {
			sum, _ := g.SessionSummary()
			return sum, nil
		}
	}
	return round.Summary{}, ErrSessionTimeout
}

// SessionTicks estimates the ticks a bot session needs, with headroom.
func SessionTicks(g *Game) int {
	rc := g.cfg.Rounds
	perRound := rc.Duration/g.runtime.TickSeconds() + 10
	return int(perRound*float64(rc.Max)) + 600
}

// BotConfig returns the bot settings from the loaded configuration.
func (g *Game) BotConfig() config.BotConfig {
	return g.cfg.Bot
}
