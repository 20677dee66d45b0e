package weapon

//go:generate go tool mockgen -source=holder.go -destination=mocks/holder_mock.go -package=mocks

import (
	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/world"
)

// Holder is the capability a weapon needs from whoever carries it.
type Holder interface {
	// ViewPoint returns the shot origin and aim direction. ok is false when
	// nobody is controlling the holder.
	ViewPoint() (origin, dir core.Vec3, ok bool)
	OwnerID() world.EntityID
	OnSemiWeaponRefire()
	UpdateWeaponHUD(bullets, magazine int)
	OnWeaponActivated()
	OnWeaponDeactivated()
}

// Marker receives impact points for on-screen diagnostics.
type Marker interface {
	Mark(point core.Vec3, hit bool)
}
