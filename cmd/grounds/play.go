package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/platform/tui"
	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [range]",
	Short: "Play a range",
	Long: `Start shooting on the given range (default: gallery).

Controls:
  Arrows/WASD  - Aim
  Space/F      - Fire (hold for full-auto)
  X            - Cease fire
  Enter        - Start the next round
  P            - Pause
  R            - New session (after the last round)
  B/Esc        - Back (when paused or finished)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Large targets, shrinking to the configured minimum
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  grounds play
  grounds play gallery_pistol
  grounds play --difficulty hard
  grounds play --config ./my-range.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := gameArg(args)
	if err != nil {
		exitError("%v", err)
	}

	logger, closer := fileLogger()
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the range still works
		store = nil
	}
	setupGallery(store, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		exitError("creating range: %v", err)
	}

	runErr := tui.Run(game, store, runtimeConfig(), playerName(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		exitError("running range: %v", runErr)
	}
}
