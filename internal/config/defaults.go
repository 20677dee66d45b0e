package config

import (
	_ "embed"
)

//go:embed defaults/gallery.yaml
var defaultGalleryYAML []byte

// DefaultGalleryConfig returns the default gallery configuration.
func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		Rounds: RoundsConfig{
			Max:      3,
			Duration: 60,
		},
		Weapons: map[string]WeaponConfig{
			"rifle": {
				MagazineSize: 30,
				RefireRate:   0.1,
				FullAuto:     true,
				MaxRange:     10000,
				Loudness:     1,
			},
			"pistol": {
				MagazineSize: 12,
				RefireRate:   0.25,
				FullAuto:     false,
				MaxRange:     10000,
				Loudness:     0.8,
			},
		},
		Range: RangeConfig{
			SpawnOrigin:  Vec3{X: 30, Y: 0, Z: 2},
			SpawnExtent:  Vec3{X: 5, Y: 10, Z: 1.5},
			TargetRadius: 0.6,
			EyeHeight:    1.7,
			FOV:          50,
			AimSpeed:     0.5,
			BackstopX:    45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				RadiusReduction: 0.5,
			},
		},
		Bot: BotConfig{
			Jitter:        1.2,
			ReactionDelay: 0.6,
			Weapon:        "pistol",
		},
	}
}
