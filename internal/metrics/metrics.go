// Package metrics exports gallery gameplay counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/games/gallery"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

// Recorder counts gameplay events. Labels stay bounded: the game id is one
// of the registered variants and the outcome one of three kinds.
type Recorder struct {
	shots          *prometheus.CounterVec
	targets        *prometheus.CounterVec
	rounds         *prometheus.CounterVec
	sessions       *prometheus.CounterVec
	roundAccuracy  *prometheus.HistogramVec
	reactionTime   *prometheus.HistogramVec
	activeSessions prometheus.Gauge
}

// NewRecorder registers the gallery metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default handler.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		shots: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grounds_shots_total",
			Help: "Shots fired, by outcome",
		}, []string{"game", "outcome"}),

		targets: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grounds_targets_spawned_total",
			Help: "Targets spawned",
		}, []string{"game"}),

		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grounds_rounds_completed_total",
			Help: "Rounds played to the end",
		}, []string{"game"}),

		sessions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grounds_sessions_completed_total",
			Help: "Sessions with every round played",
		}, []string{"game"}),

		roundAccuracy: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grounds_round_accuracy_percent",
			Help:    "Accuracy of each finished round",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}, []string{"game"}),

		reactionTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "grounds_round_reaction_seconds",
			Help:    "Average reaction time of each finished round",
			Buckets: []float64{0.2, 0.3, 0.4, 0.5, 0.75, 1, 1.5, 2, 3},
		}, []string{"game"}),

		activeSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "grounds_active_sessions",
			Help: "Players currently connected",
		}),
	}
}

func (r *Recorder) ShotFired(game string, shot weapon.Shot) {
	r.shots.WithLabelValues(game, shot.Outcome.Kind.String()).Inc()
}

func (r *Recorder) TargetSpawned(game string, _ core.Vec3) {
	r.targets.WithLabelValues(game).Inc()
}

func (r *Recorder) RoundEnded(game string, res round.RoundResult) {
	r.rounds.WithLabelValues(game).Inc()
	if res.Hits+res.Misses > 0 {
		r.roundAccuracy.WithLabelValues(game).Observe(res.Accuracy)
	}
	if res.HasReaction {
		r.reactionTime.WithLabelValues(game).Observe(res.AvgReaction)
	}
}

func (r *Recorder) SessionCompleted(game string, _ round.Summary) {
	r.sessions.WithLabelValues(game).Inc()
}

// SessionOpened and SessionClosed track connected players.
func (r *Recorder) SessionOpened() { r.activeSessions.Inc() }

func (r *Recorder) SessionClosed() { r.activeSessions.Dec() }

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

var _ gallery.Observer = (*Recorder)(nil)
