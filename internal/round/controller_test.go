package round_test

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/round/mocks"
	"github.com/vovakirdan/shooting-grounds/internal/sched"
)

type recordingDisplay struct {
	scores      map[uint8]int
	timer       float64
	timerPushes int
	buttonShown bool
}

func (d *recordingDisplay) UpdateScore(team uint8, score int) {
	if d.scores == nil {
		d.scores = make(map[uint8]int)
	}
	d.scores[team] = score
}
func (d *recordingDisplay) UpdateTimer(s float64) { d.timer = s; d.timerPushes++ }
func (d *recordingDisplay) ShowStartButton()      { d.buttonShown = true }
func (d *recordingDisplay) HideStartButton()      { d.buttonShown = false }

type gate struct{ enabled bool }

func (g *gate) SetInputEnabled(on bool) { g.enabled = on }

func newTestController(cfg round.Config) (*round.Controller, *recordingDisplay, *gate, *sched.Scheduler) {
	s := sched.New()
	d := &recordingDisplay{}
	g := &gate{enabled: true}
	c := round.NewController(cfg, s, d, g, log.New(io.Discard))
	c.BeginPlay()
	return c, d, g, s
}

func TestBeginPlayLocksInput(t *testing.T) {
	c, d, g, _ := newTestController(round.DefaultConfig())

	if c.State() != round.WaitingForStart || c.CurrentRound() != 1 {
		t.Errorf("initial state = %v round %d", c.State(), c.CurrentRound())
	}
	if g.enabled || !d.buttonShown {
		t.Errorf("BeginPlay should lock input (%v) and show the start button (%v)", g.enabled, d.buttonShown)
	}
}

func TestRoundProgression(t *testing.T) {
	c, d, g, s := newTestController(round.Config{MaxRounds: 3, RoundDuration: 60})

	var ended []int
	completed := 0
	c.OnRoundEnd(func(r round.RoundResult) { ended = append(ended, r.Round) })
	c.OnComplete(func(round.Summary) { completed++ })

	for r := 1; r <= 3; r++ {
		c.StartRound()
		if c.State() != round.RoundActive || c.CurrentRound() != r {
			t.Fatalf("after start: state %v round %d, expected active round %d", c.State(), c.CurrentRound(), r)
		}
		if !g.enabled || d.buttonShown {
			t.Fatalf("round %d: input should be unlocked and the button hidden", r)
		}

		s.Advance(59.5)
		if c.State() != round.RoundActive {
			t.Fatalf("round %d ended early", r)
		}
		s.Advance(0.5)

		if g.enabled {
			t.Fatalf("input still unlocked after round %d", r)
		}
		if r < 3 {
			if c.State() != round.WaitingForStart || c.CurrentRound() != r+1 || !d.buttonShown {
				t.Fatalf("after round %d: state %v round %d", r, c.State(), c.CurrentRound())
			}
		}
	}

	if c.State() != round.AllRoundsComplete {
		t.Fatalf("final state = %v, expected complete", c.State())
	}
	if len(ended) != 3 || ended[0] != 1 || ended[2] != 3 {
		t.Errorf("round end hooks = %v", ended)
	}
	if completed != 1 {
		t.Errorf("completion hook ran %d times", completed)
	}

	c.StartRound()
	if c.State() != round.AllRoundsComplete {
		t.Error("StartRound must not leave the terminal state")
	}
}

func TestStartRoundPushesUIInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	display := mocks.NewMockDisplay(ctrl)
	input := mocks.NewMockInputGate(ctrl)

	gomock.InOrder(
		display.EXPECT().ShowStartButton(),
		input.EXPECT().SetInputEnabled(false),
		input.EXPECT().SetInputEnabled(true),
		display.EXPECT().HideStartButton(),
		display.EXPECT().UpdateTimer(45.0),
	)

	c := round.NewController(round.Config{MaxRounds: 2, RoundDuration: 45}, sched.New(), display, input, log.New(io.Discard))
	c.BeginPlay()
	c.StartRound()
	c.StartRound() // already active: ignored
}

func TestTickClampsAtZero(t *testing.T) {
	c, d, _, _ := newTestController(round.Config{MaxRounds: 1, RoundDuration: 10})

	c.Tick(1)
	if d.timerPushes != 0 {
		t.Error("Tick pushed the timer while waiting")
	}

	c.StartRound()
	c.Tick(4)
	if c.TimeRemaining() != 6 || d.timer != 6 {
		t.Errorf("TimeRemaining() = %v, display %v, expected 6", c.TimeRemaining(), d.timer)
	}
	c.Tick(100)
	if c.TimeRemaining() != 0 || d.timer != 0 {
		t.Errorf("TimeRemaining() = %v, expected clamp at 0", c.TimeRemaining())
	}
}

func TestIncrementTeamScoreInAnyState(t *testing.T) {
	c, d, _, _ := newTestController(round.DefaultConfig())

	c.IncrementTeamScore(0)
	c.IncrementTeamScore(0)
	c.IncrementTeamScore(3)

	if c.Score(0) != 2 || c.Score(3) != 1 || c.Score(7) != 0 {
		t.Errorf("scores = %v", c.Scores())
	}
	if d.scores[0] != 2 || d.scores[3] != 1 {
		t.Errorf("display scores = %v", d.scores)
	}
}

func TestSummaryAfterSession(t *testing.T) {
	c, _, _, s := newTestController(round.Config{MaxRounds: 2, RoundDuration: 10})

	var final round.Summary
	c.OnComplete(func(sum round.Summary) { final = sum })

	// Round 1: two hits at 1s reaction, one miss
	c.StartRound()
	c.RecordSpawn(0)
	c.RecordHit(1)
	c.RecordSpawn(1)
	c.RecordHit(2)
	c.RecordMiss()
	s.Advance(10)

	// Round 2: one hit at 3s reaction
	c.StartRound()
	c.RecordSpawn(10)
	c.RecordHit(13)
	s.Advance(10)

	if final.Rounds != 2 || final.Hits != 3 || final.Misses != 1 || final.ShotsFired != 4 {
		t.Fatalf("summary totals = %+v", final)
	}
	if final.Accuracy != 75 {
		t.Errorf("Accuracy = %v, expected 75", final.Accuracy)
	}
	if !final.HasReaction || final.AvgReaction != 5.0/3 {
		t.Errorf("AvgReaction = %v, expected 5/3", final.AvgReaction)
	}
	r1, r2 := final.Results[0], final.Results[1]
	if r1.Hits != 2 || r1.Misses != 1 || r1.AvgReaction != 1 {
		t.Errorf("round 1 = %+v", r1)
	}
	if r2.Hits != 1 || r2.AvgReaction != 3 || r2.Accuracy != 100 {
		t.Errorf("round 2 = %+v", r2)
	}
	// Reaction means 1 and 3 have variance 1
	if final.ReactionVariance != 1 {
		t.Errorf("ReactionVariance = %v, expected 1", final.ReactionVariance)
	}
}

func TestResetReturnsToInitialState(t *testing.T) {
	c, d, g, s := newTestController(round.Config{MaxRounds: 1, RoundDuration: 5})
	c.StartRound()
	c.IncrementTeamScore(0)
	c.RecordMiss()
	c.Reset()

	if c.State() != round.WaitingForStart || c.CurrentRound() != 1 || c.Score(0) != 0 {
		t.Errorf("after Reset: state %v round %d score %d", c.State(), c.CurrentRound(), c.Score(0))
	}
	if c.Stats().ShotsFired() != 0 || len(c.Results()) != 0 {
		t.Error("Reset should clear statistics")
	}
	if g.enabled || !d.buttonShown {
		t.Error("Reset should lock input and show the start button")
	}

	s.Advance(10)
	if c.State() != round.WaitingForStart {
		t.Error("cancelled countdown still ended the round")
	}
}
