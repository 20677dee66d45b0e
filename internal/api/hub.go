package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/games/gallery"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

const (
	// MaxSpectators caps concurrent live feed connections.
	MaxSpectators = 200

	sendBuffer   = 64
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = pongTimeout * 9 / 10
)

// Event is one message on the live feed.
type Event struct {
	Event string `json:"event"`
	Game  string `json:"game"`
	Data  any    `json:"data"`
}

type spectator struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans gameplay events out to websocket spectators. It implements
// gallery.Observer; slow spectators lose messages rather than stall play.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*spectator]struct{}
	logger   *log.Logger
	upgrader websocket.Upgrader
	closed   bool
}

// NewHub creates a hub. Origins lists the allowed browser origins; an
// empty list allows localhost only. Requests without an Origin header
// (non-browser clients) are always accepted.
func NewHub(logger *log.Logger, origins []string) *Hub {
	h := &Hub{
		clients: make(map[*spectator]struct{}),
		logger:  logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || originAllowed(origin, origins) {
				return true
			}
			logger.Warn("spectator rejected", "origin", origin)
			return false
		},
	}
	return h
}

func originAllowed(origin string, allowed []string) bool {
	if strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "http://127.0.0.1") {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// HandleWebSocket upgrades the request and streams events until the
// spectator disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.Count() >= MaxSpectators {
		writeError(w, "too many spectators", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &spectator{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("spectator connected", "ip", ClientIP(r), "spectators", count)

	go h.writePump(c)
	h.readPump(c)
}

// readPump discards client messages and notices disconnects.
func (h *Hub) readPump(c *spectator) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *spectator) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(c *spectator) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("spectator disconnected", "spectators", count)
}

// Count returns the number of connected spectators.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to every spectator. It never blocks.
func (h *Hub) Broadcast(ev Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("cannot encode event", "event", ev.Event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
}

// Close disconnects every spectator and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

type shotData struct {
	Time    float64   `json:"time"`
	Outcome string    `json:"outcome"`
	Point   core.Vec3 `json:"point"`
	Bullets int       `json:"bullets"`
}

type roundData struct {
	Round       int     `json:"round"`
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	Accuracy    float64 `json:"accuracy"`
	AvgReaction float64 `json:"avg_reaction,omitempty"`
}

type sessionData struct {
	Rounds      int     `json:"rounds"`
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	Accuracy    float64 `json:"accuracy"`
	AvgReaction float64 `json:"avg_reaction,omitempty"`
}

func (h *Hub) ShotFired(game string, shot weapon.Shot) {
	h.Broadcast(Event{Event: "shot", Game: game, Data: shotData{
		Time:    shot.Time,
		Outcome: shot.Outcome.Kind.String(),
		Point:   shot.Outcome.Point,
		Bullets: shot.Bullets,
	}})
}

func (h *Hub) TargetSpawned(game string, pos core.Vec3) {
	h.Broadcast(Event{Event: "target", Game: game, Data: pos})
}

func (h *Hub) RoundEnded(game string, res round.RoundResult) {
	h.Broadcast(Event{Event: "round", Game: game, Data: roundData{
		Round:       res.Round,
		Hits:        res.Hits,
		Misses:      res.Misses,
		Accuracy:    res.Accuracy,
		AvgReaction: res.AvgReaction,
	}})
}

func (h *Hub) SessionCompleted(game string, sum round.Summary) {
	h.Broadcast(Event{Event: "session", Game: game, Data: sessionData{
		Rounds:      sum.Rounds,
		Hits:        sum.Hits,
		Misses:      sum.Misses,
		Accuracy:    sum.Accuracy,
		AvgReaction: sum.AvgReaction,
	}})
}

var _ gallery.Observer = (*Hub)(nil)
