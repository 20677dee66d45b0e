package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGallery loads the gallery configuration.
// Search order: customPath -> ~/.grounds/configs/gallery.yaml -> ./configs/gallery.yaml -> embedded default
// Files are decoded over the defaults, so they only need the keys they change.
func LoadGallery(customPath string) (GalleryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GalleryConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseGallery(data)
		if err != nil {
			return GalleryConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return GalleryConfig{}, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("gallery.yaml"), filepath.Join("configs", "gallery.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseGallery(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGallery(defaultGalleryYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultGalleryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseGallery(data []byte) (GalleryConfig, error) {
	cfg := DefaultGalleryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GalleryConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grounds", "configs", filename)
}

// ApplyGalleryPreset modifies the config based on a difficulty preset.
func ApplyGalleryPreset(cfg *GalleryConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust target size based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Range.TargetRadius *= 1.25
	case DifficultyHard:
		cfg.Range.TargetRadius *= 0.75
	}
}
