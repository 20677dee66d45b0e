package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGallery("")
	if err != nil {
		t.Fatalf("LoadGallery() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGalleryConfig()) {
		t.Errorf("embedded YAML drifted from DefaultGalleryConfig():\n%+v\n%+v", cfg, DefaultGalleryConfig())
	}
}

func TestLoadGalleryCustomPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
rounds:
  max: 5
weapons:
  pistol:
    magazine_size: 8
    refire_rate: 0.4
    max_range: 500
`)

	cfg, err := LoadGallery(path)
	if err != nil {
		t.Fatalf("LoadGallery() failed: %v", err)
	}
	if cfg.Rounds.Max != 5 || cfg.Rounds.Duration != 60 {
		t.Errorf("rounds = %+v, expected max 5 with default duration", cfg.Rounds)
	}
	if p := cfg.Weapons["pistol"]; p.MagazineSize != 8 || p.RefireRate != 0.4 {
		t.Errorf("pistol = %+v", p)
	}
	if _, ok := cfg.Weapon("rifle"); !ok {
		t.Error("rifle preset should survive a partial override")
	}
}

func TestLoadGalleryErrors(t *testing.T) {
	if _, err := LoadGallery(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	if _, err := LoadGallery(writeConfig(t, "rounds: [")); err == nil {
		t.Error("malformed YAML should fail")
	}

	_, err := LoadGallery(writeConfig(t, "rounds:\n  duration: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("negative duration err = %v, expected ErrInvalid", err)
	}
}

func TestLoadGalleryPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".grounds", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gallery.yaml"), []byte("rounds:\n  max: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGallery("")
	if err != nil {
		t.Fatalf("LoadGallery() failed: %v", err)
	}
	if cfg.Rounds.Max != 7 {
		t.Errorf("Rounds.Max = %d, expected the user config's 7", cfg.Rounds.Max)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GalleryConfig)
	}{
		{"zero rounds", func(c *GalleryConfig) { c.Rounds.Max = 0 }},
		{"zero duration", func(c *GalleryConfig) { c.Rounds.Duration = 0 }},
		{"no weapons", func(c *GalleryConfig) { c.Weapons = nil }},
		{"empty magazine", func(c *GalleryConfig) {
			w := c.Weapons["rifle"]
			w.MagazineSize = 0
			c.Weapons["rifle"] = w
		}},
		{"zero refire", func(c *GalleryConfig) {
			w := c.Weapons["pistol"]
			w.RefireRate = 0
			c.Weapons["pistol"] = w
		}},
		{"zero target radius", func(c *GalleryConfig) { c.Range.TargetRadius = 0 }},
		{"spawn behind shooter", func(c *GalleryConfig) { c.Range.SpawnOrigin.X = -5 }},
		{"unknown progression", func(c *GalleryConfig) { c.Difficulty.Progression.Type = "kills" }},
	}

	if err := DefaultGalleryConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGalleryConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestTargetRadiusScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{RadiusReduction: 0.5},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 1.0},
		{5, 0.75},
		{10, 0.5},
		{50, 0.5},
	}
	for _, tc := range tests {
		if got := d.TargetRadius(1.0, tc.score, 0); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("TargetRadius(score=%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	d.SetEnabled(false)
	if got := d.TargetRadius(1.0, 10, 0); got != 1.0 {
		t.Errorf("disabled progression changed radius to %v", got)
	}
}

func TestTargetRadiusFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1},
		Scaling:     ScalingConfig{RadiusReduction: 2},
	})
	if got := d.TargetRadius(2, 0, 5); got != 2*minRadiusFraction {
		t.Errorf("TargetRadius() = %v, expected the floor %v", got, 2*minRadiusFraction)
	}
}

func TestApplyGalleryPreset(t *testing.T) {
	base := DefaultGalleryConfig().Range.TargetRadius

	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		radiusScale float64
	}{
		{DifficultyEasy, true, 0.0, 1.25},
		{DifficultyNormal, true, 0.3, 1.0},
		{DifficultyHard, true, 0.7, 0.75},
		{DifficultyFixed, false, 0.0, 1.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGalleryConfig()
			ApplyGalleryPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if math.Abs(cfg.Range.TargetRadius-base*tc.radiusScale) > 1e-12 {
				t.Errorf("TargetRadius = %v, expected %v", cfg.Range.TargetRadius, base*tc.radiusScale)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard || ParsePreset("insane") != "" {
		t.Error("ParsePreset mapping is wrong")
	}
}
