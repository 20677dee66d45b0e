package gallery

import (
	"errors"
	"sync"
	"testing"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/rank"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

type recordingObserver struct {
	mu        sync.Mutex
	shots     int
	spawns    int
	rounds    []round.RoundResult
	completed int
}

func (o *recordingObserver) ShotFired(string, weapon.Shot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.shots++
}

func (o *recordingObserver) TargetSpawned(string, core.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spawns++
}

func (o *recordingObserver) RoundEnded(_ string, res round.RoundResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rounds = append(o.rounds, res)
}

func (o *recordingObserver) SessionCompleted(string, round.Summary) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed++
}

func TestBotCompletesSession(t *testing.T) {
	useTestConfig(t)
	obs := &recordingObserver{}
	SetObserver(obs)

	g := newTestGame(t, NewPistol(), 99)
	b := NewBot(g, g.BotConfig(), 5)

	sum, err := RunSession(g, b, SessionTicks(g))
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}

	if sum.Rounds != 3 || len(sum.Results) != 3 {
		t.Fatalf("rounds = %d (%d results), want 3", sum.Rounds, len(sum.Results))
	}
	if sum.ShotsFired == 0 {
		t.Fatal("bot never fired")
	}
	if sum.ShotsFired != sum.Hits+sum.Misses {
		t.Errorf("shots %d != hits %d + misses %d", sum.ShotsFired, sum.Hits, sum.Misses)
	}
	// A bot without jitter aims at the center every time.
	if sum.Misses != 0 || sum.Accuracy != 100 {
		t.Errorf("misses = %d accuracy = %.1f, want 0 and 100", sum.Misses, sum.Accuracy)
	}
	if !sum.HasReaction || sum.AvgReaction <= 0 {
		t.Errorf("avg reaction = %.3f (ok=%v), want a positive average", sum.AvgReaction, sum.HasReaction)
	}
	if g.ShotsFired() != sum.ShotsFired {
		t.Errorf("weapon shots = %d, summary shots = %d", g.ShotsFired(), sum.ShotsFired)
	}
	if !g.State().GameOver {
		t.Error("game should be over")
	}
	if g.Rank() != rank.Ranks {
		t.Errorf("rank = %d, want %d for a perfect session", g.Rank(), rank.Ranks)
	}

	if obs.shots != sum.ShotsFired {
		t.Errorf("observer shots = %d, want %d", obs.shots, sum.ShotsFired)
	}
	if obs.spawns != sum.Hits+1 {
		t.Errorf("observer spawns = %d, want %d", obs.spawns, sum.Hits+1)
	}
	if len(obs.rounds) != 3 || obs.completed != 1 {
		t.Errorf("observer rounds = %d completed = %d, want 3 and 1", len(obs.rounds), obs.completed)
	}
}

func TestRankUsesHistory(t *testing.T) {
	useTestConfig(t)
	var asked string
	SetRankHistory(func(id string) []float64 {
		asked = id
		return []float64{100, 100, 100, 100, 100}
	})

	g := newTestGame(t, NewPistol(), 99)
	if _, err := RunSession(g, NewBot(g, g.BotConfig(), 5), SessionTicks(g)); err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	if asked != "gallery_pistol" {
		t.Errorf("history asked for %q, want gallery_pistol", asked)
	}
	// Every quartile is 100, so a perfect session exceeds none of them.
	if g.Rank() != 1 {
		t.Errorf("rank = %d, want 1", g.Rank())
	}
}

func TestRunSessionTimeout(t *testing.T) {
	useTestConfig(t)
	g := newTestGame(t, NewPistol(), 1)

	_, err := RunSession(g, NewBot(g, g.BotConfig(), 1), 10)
	if !errors.Is(err, ErrSessionTimeout) {
		t.Errorf("err = %v, want ErrSessionTimeout", err)
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	useTestConfig(t)
	g := newTestGame(t, NewPistol(), 99)
	if _, err := RunSession(g, NewBot(g, g.BotConfig(), 5), SessionTicks(g)); err != nil {
		t.Fatalf("RunSession: %v", err)
	}

	// Restart is ignored mid-session but starts a new one at the end.
	g.Step(press(core.ActionRestart))
	if g.RoundState() != round.WaitingForStart || g.round.CurrentRound() != 1 {
		t.Fatalf("after restart: state = %v round = %d", g.RoundState(), g.round.CurrentRound())
	}
	if _, ok := g.SessionSummary(); ok {
		t.Error("summary should clear on restart")
	}
	if g.ShotsFired() != 0 || g.State().Score != 0 {
		t.Error("restart should clear shots and score")
	}
	if _, ok := g.CurrentTarget(); !ok {
		t.Error("restart should spawn a fresh target")
	}
}

func TestRifleBotSession(t *testing.T) {
	useTestConfig(t)
	g := newTestGame(t, New(), 8)

	sum, err := RunSession(g, NewBot(g, g.BotConfig(), 3), SessionTicks(g))
	if err != nil {
		t.Fatalf("RunSession: %v", err)
	}
	if sum.Hits == 0 {
		t.Error("rifle bot scored no hits")
	}
	if sum.ShotsFired != sum.Hits+sum.Misses {
		t.Errorf("shots %d != hits %d + misses %d", sum.ShotsFired, sum.Hits, sum.Misses)
	}
}
