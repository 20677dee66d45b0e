// Package config provides YAML-based configuration loading and difficulty
// management for the shooting gallery.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/shooting-grounds/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GalleryConfig contains all configuration for the shooting gallery.
type GalleryConfig struct {
	Rounds     RoundsConfig            `yaml:"rounds"`
	Weapons    map[string]WeaponConfig `yaml:"weapons"`
	Range      RangeConfig             `yaml:"range"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
	Bot        BotConfig               `yaml:"bot"`
}

// RoundsConfig defines the session shape.
type RoundsConfig struct {
	Max      int     `yaml:"max"`
	Duration float64 `yaml:"duration"` // Seconds per round
}

// WeaponConfig defines one weapon preset.
type WeaponConfig struct {
	MagazineSize int     `yaml:"magazine_size"`
	RefireRate   float64 `yaml:"refire_rate"` // Seconds between shots
	FullAuto     bool    `yaml:"full_auto"`
	MaxRange     float64 `yaml:"max_range"`
	Loudness     float64 `yaml:"loudness"`
}

// Vec3 is a YAML-friendly point.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to the core vector type.
func (v Vec3) Vec() core.Vec3 {
	return core.V3(v.X, v.Y, v.Z)
}

// RangeConfig defines the range layout. X points downrange, Z is up.
type RangeConfig struct {
	SpawnOrigin  Vec3    `yaml:"spawn_origin"`
	SpawnExtent  Vec3    `yaml:"spawn_extent"`
	TargetRadius float64 `yaml:"target_radius"`
	EyeHeight    float64 `yaml:"eye_height"`
	FOV          float64 `yaml:"fov"`       // Horizontal field of view in degrees
	AimSpeed     float64 `yaml:"aim_speed"` // Degrees per aim key press
	BackstopX    float64 `yaml:"backstop_x"`
}

// BotConfig tunes the simulated shooter.
type BotConfig struct {
	Jitter        float64 `yaml:"jitter"`         // Aim error in degrees (max)
	ReactionDelay float64 `yaml:"reaction_delay"` // Seconds before the first shot at a new target
	Weapon        string  `yaml:"weapon"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	RadiusReduction float64 `yaml:"radius_reduction"` // Fraction of target radius removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// Weapon returns the named weapon preset.
func (c GalleryConfig) Weapon(name string) (WeaponConfig, bool) {
	w, ok := c.Weapons[name]
	return w, ok
}

// WeaponNames returns the configured weapon names in order.
func (c GalleryConfig) WeaponNames() []string {
	names := make([]string, 0, len(c.Weapons))
	for n := range c.Weapons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate rejects values the gallery cannot run with.
func (c GalleryConfig) Validate() error {
	if c.Rounds.Max < 1 {
		return fmt.Errorf("%w: rounds.max must be at least 1, got %d", ErrInvalid, c.Rounds.Max)
	}
	if c.Rounds.Duration <= 0 {
		return fmt.Errorf("%w: rounds.duration must be positive, got %v", ErrInvalid, c.Rounds.Duration)
	}
	if len(c.Weapons) == 0 {
		return fmt.Errorf("%w: no weapons configured", ErrInvalid)
	}
	for _, name := range c.WeaponNames() {
		w := c.Weapons[name]
		if w.MagazineSize < 1 {
			return fmt.Errorf("%w: weapon %q: magazine_size must be at least 1", ErrInvalid, name)
		}
		if w.RefireRate <= 0 {
			return fmt.Errorf("%w: weapon %q: refire_rate must be positive", ErrInvalid, name)
		}
		if w.MaxRange <= 0 {
			return fmt.Errorf("%w: weapon %q: max_range must be positive", ErrInvalid, name)
		}
	}
	if c.Range.TargetRadius <= 0 {
		return fmt.Errorf("%w: range.target_radius must be positive", ErrInvalid)
	}
	if c.Range.SpawnOrigin.X <= 0 {
		return fmt.Errorf("%w: range.spawn_origin.x must be downrange of the shooter", ErrInvalid)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}
