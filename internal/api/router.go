// Package api serves stored sessions, leaderboards, Prometheus metrics and
// a live websocket feed of gallery play over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/shooting-grounds/internal/metrics"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

// SessionStore is the part of the storage layer the API reads.
type SessionStore interface {
	RecentSessions(gameID string, limit int) ([]storage.SessionRecord, error)
	SessionByID(id string) (*storage.SessionRecord, error)
	Leaderboard(gameID string, limit int) ([]storage.SessionRecord, error)
	GameSessionStats(gameID string) (*storage.SessionStats, error)
}

// RouterConfig contains the router's dependencies.
type RouterConfig struct {
	// Store is required.
	Store SessionStore

	// Hub serves /ws/live when set.
	Hub *Hub

	// Gatherer serves /metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// RateLimiter is used as is when set; otherwise one is built from
	// RateLimitConfig, or DefaultRateLimitConfig if that is nil too.
	RateLimiter     *IPRateLimiter
	RateLimitConfig *RateLimitConfig

	// CORSOrigins defaults to localhost origins.
	CORSOrigins []string

	Logger *log.Logger
}

// NewRouter builds the HTTP router. It starts no goroutines and opens no
// listeners, so tests can wrap it in httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	limiter := cfg.RateLimiter
	if limiter == nil {
		rlc := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rlc = *cfg.RateLimitConfig
		}
		limiter = NewIPRateLimiter(rlc)
	}

	origins := cfg.CORSOrigins
	if origins == nil {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	h := &handlers{store: cfg.Store, logger: logger}

	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", metrics.Handler(gatherer))

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Route("/api", func(r chi.Router) {
			r.Get("/games", h.handleGames)
			r.Get("/sessions", h.handleSessions)
			r.Get("/sessions/{id}", h.handleSession)
			r.Get("/leaderboard/{game}", h.handleLeaderboard)
			r.Get("/stats/{game}", h.handleStats)
		})

		if cfg.Hub != nil {
			r.Get("/ws/live", cfg.Hub.HandleWebSocket)
		}
	})

	return r
}

// requestLogger logs each request at debug level, and server errors at
// error level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			}
			if ww.Status() >= http.StatusInternalServerError {
				logger.Error("request failed", kv...)
				return
			}
			logger.Debug("request", kv...)
		})
	}
}
