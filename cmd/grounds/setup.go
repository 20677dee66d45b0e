package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/games/gallery"
	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

// newLogger returns the stderr logger used by non-interactive commands.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "grounds",
	})
}

// fileLogger logs to ~/.grounds/grounds.log so the alt screen stays clean.
// It falls back to a discarding logger when the file cannot be opened.
func fileLogger() (*log.Logger, io.Closer) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".grounds")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "grounds.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, io.NopCloser(nil)
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "grounds"}), f
}

// setupGallery applies the global flags to the gallery ranges and wires
// ranking to the store. Call it before any range is created.
func setupGallery(store *storage.Store, logger *log.Logger) {
	gallery.SetConfigPath(flagConfig)
	gallery.SetDifficultyPreset(flagDifficulty)
	gallery.SetLogger(logger)
	if store == nil {
		gallery.SetRankHistory(nil)
		return
	}
	gallery.SetRankHistory(func(gameID string) []float64 {
		history, err := store.AccuracyHistory(gameID)
		if err != nil {
			logger.Warn("cannot load accuracy history", "game", gameID, "error", err)
			return nil
		}
		return history
	})
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameArg returns the range named by args, or the default one.
func gameArg(args []string) (string, error) {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown range %q, run 'grounds list' to see available ranges", gameID)
	}
	return gameID, nil
}

// playerName is the local player: $USER, or "local".
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

func exitError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
