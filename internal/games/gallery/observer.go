package gallery

import (
	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/weapon"
)

// Observer receives gameplay events from every running gallery game.
// Implementations must be safe for concurrent use: SSH sessions run games
// on separate goroutines.
type Observer interface {
	ShotFired(game string, shot weapon.Shot)
	TargetSpawned(game string, pos core.Vec3)
	RoundEnded(game string, res round.RoundResult)
	SessionCompleted(game string, sum round.Summary)
}

// Observers fans events out to several observers.
type Observers []Observer

func (o Observers) ShotFired(game string, shot weapon.Shot) {
	for _, ob := range o {
		ob.ShotFired(game, shot)
	}
}

func (o Observers) TargetSpawned(game string, pos core.Vec3) {
	for _, ob := range o {
		ob.TargetSpawned(game, pos)
	}
}

func (o Observers) RoundEnded(game string, res round.RoundResult) {
	for _, ob := range o {
		ob.RoundEnded(game, res)
	}
}

func (o Observers) SessionCompleted(game string, sum round.Summary) {
	for _, ob := range o {
		ob.SessionCompleted(game, sum)
	}
}

type nopObserver struct{}

func (nopObserver) ShotFired(string, weapon.Shot)          {}
func (nopObserver) TargetSpawned(string, core.Vec3)        {}
func (nopObserver) RoundEnded(string, round.RoundResult)   {}
func (nopObserver) SessionCompleted(string, round.Summary) {}
