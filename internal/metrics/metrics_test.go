package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestRecorderCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	hit := weapon.Shot{Outcome: weapon.Outcome{Kind: weapon.OnTargetHit}}
	miss := weapon.Shot{Outcome: weapon.Outcome{Kind: weapon.OffTargetHit}}
	r.ShotFired("gallery", hit)
	r.ShotFired("gallery", hit)
	r.ShotFired("gallery", miss)
	r.TargetSpawned("gallery", core.V3(30, 0, 2))
	r.RoundEnded("gallery", round.RoundResult{Round: 1, Hits: 2, Misses: 1, Accuracy: 66.7, AvgReaction: 0.4, HasReaction: true})
	r.RoundEnded("gallery", round.RoundResult{Round: 2})
	r.SessionCompleted("gallery", round.Summary{})
	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()

	body := scrape(t, reg)
	for _, want := range []string{
		`grounds_shots_total{game="gallery",outcome="hit"} 2`,
		`grounds_shots_total{game="gallery",outcome="miss"} 1`,
		`grounds_targets_spawned_total{game="gallery"} 1`,
		`grounds_rounds_completed_total{game="gallery"} 2`,
		`grounds_sessions_completed_total{game="gallery"} 1`,
		// The empty second round has neither accuracy nor reaction samples.
		`grounds_round_accuracy_percent_count{game="gallery"} 1`,
		`grounds_round_reaction_seconds_count{game="gallery"} 1`,
		`grounds_active_sessions 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestRecordersUseSeparateRegistries(t *testing.T) {
	// Registering twice on one registry would panic; separate ones must not.
	NewRecorder(prometheus.NewRegistry())
	NewRecorder(prometheus.NewRegistry())
}
