package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

const maxLimit = 100

type handlers struct {
	store  SessionStore
	logger *log.Logger
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type gameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (h *handlers) handleGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	out := make([]gameInfo, 0, len(games))
	for _, g := range games {
		out = append(out, gameInfo{ID: g.ID, Title: g.Title})
	}
	writeJSON(w, out)
}

func (h *handlers) handleSessions(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r, 20)
	if !ok {
		return
	}
	game := r.URL.Query().Get("game")
	if game != "" && !knownGame(game) {
		writeError(w, "unknown game", http.StatusNotFound)
		return
	}

	sessions, err := h.store.RecentSessions(game, limit)
	if err != nil {
		h.internalError(w, "cannot list sessions", err)
		return
	}
	if sessions == nil {
		sessions = []storage.SessionRecord{}
	}
	writeJSON(w, sessions)
}

func (h *handlers) handleSession(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.SessionByID(chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, "cannot load session", err)
		return
	}
	writeJSON(w, rec)
}

func (h *handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if !knownGame(game) {
		writeError(w, "unknown game", http.StatusNotFound)
		return
	}
	limit, ok := parseLimit(w, r, 10)
	if !ok {
		return
	}

	board, err := h.store.Leaderboard(game, limit)
	if err != nil {
		h.internalError(w, "cannot load leaderboard", err)
		return
	}
	if board == nil {
		board = []storage.SessionRecord{}
	}
	writeJSON(w, board)
}

func (h *handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if !knownGame(game) {
		writeError(w, "unknown game", http.StatusNotFound)
		return
	}
	stats, err := h.store.GameSessionStats(game)
	if err != nil {
		h.internalError(w, "cannot load stats", err)
		return
	}
	writeJSON(w, stats)
}

func (h *handlers) internalError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)
	writeError(w, msg, http.StatusInternalServerError)
}

func knownGame(id string) bool {
	return registry.Exists(id)
}

// parseLimit reads ?limit=, clamped to maxLimit. It writes a 400 and
// returns false on a malformed value.
func parseLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		writeError(w, "limit must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return min(n, maxLimit), true
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data) //nolint:errcheck // client went away
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck // client went away
}
