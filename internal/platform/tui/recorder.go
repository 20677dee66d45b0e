package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

// sessionReporter is implemented by games that produce a session summary.
type sessionReporter interface {
	SessionSummary() (round.Summary, bool)
	Rank() int
}

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// recorder saves each finished game once.
type recorder struct {
	store  *storage.Store
	player string
	logger *log.Logger
	saved  bool
}

// finish stores the result of a game that just ended. Games with a session
// summary are saved as sessions; others as a bare score.
func (r *recorder) finish(game registry.Game, score int) {
	if r.saved {
		return
	}
	r.saved = true
	if r.store == nil {
		return
	}

	if rep, ok := game.(sessionReporter); ok {
		if sum, ok := rep.SessionSummary(); ok {
			rec := storage.SessionFromSummary(game.ID(), r.player, sum, rep.Rank())
			id, err := r.store.SaveSession(rec)
			if err != nil {
				r.logger.Error("cannot save session", "game", game.ID(), "error", err)
				return
			}
			r.logger.Info("session saved", "game", game.ID(), "session", id, "player", r.player,
				"accuracy", sum.Accuracy, "rank", rep.Rank())
			return
		}
	}

	if score > 0 {
		if _, err := r.store.SaveScore(game.ID(), score); err != nil {
			r.logger.Error("cannot save score", "game", game.ID(), "error", err)
		}
	}
}

// reset arms the recorder for the next game.
func (r *recorder) reset() { r.saved = false }
