package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/core"
	"github.com/vovakirdan/shooting-grounds/internal/games/gallery"
	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/round"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var (
	flagSimVariant string
	flagSimRuns    int
	flagSimSave    bool
	flagSimPlayer  string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted bot session",
	Long: `Play full sessions with a scripted shooter, without a terminal UI.
The bot's aim jitter and reaction delay come from the 'bot' config section.

Examples:
  grounds simulate
  grounds simulate --variant gallery_pistol --runs 5 --seed 7
  grounds simulate --save --player bot-easy`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", defaultGame, "Range to simulate")
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of sessions")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save sessions to the database")
	simulateCmd.Flags().StringVar(&flagSimPlayer, "player", "bot", "Player name for saved sessions")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger()

	if !registry.Exists(flagSimVariant) {
		exitError("unknown range %q, run 'grounds list' to see available ranges", flagSimVariant)
	}

	var store *storage.Store
	if flagSimSave {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			exitError("opening results database: %v", err)
		}
		defer store.Close()
	}
	setupGallery(store, logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for i := 0; i < flagSimRuns; i++ {
		created, err := registry.Create(flagSimVariant)
		if err != nil {
			exitError("creating range: %v", err)
		}
		g, ok := created.(*gallery.Game)
		if !ok {
			exitError("range %q cannot be simulated", flagSimVariant)
		}

		runSeed := seed + int64(i)
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: runSeed})
		bot := gallery.NewBot(g, g.BotConfig(), runSeed)

		sum, err := gallery.RunSession(g, bot, gallery.SessionTicks(g))
		if err != nil {
			logger.Error("simulation failed", "run", i+1, "seed", runSeed, "error", err)
			continue
		}
		printSummary(i+1, runSeed, sum, g.Rank())

		if store != nil {
			id, err := store.SaveSession(storage.SessionFromSummary(g.ID(), flagSimPlayer, sum, g.Rank()))
			if err != nil {
				logger.Error("cannot save session", "run", i+1, "error", err)
				continue
			}
			logger.Info("session saved", "id", id)
		}
	}
}

func printSummary(run int, seed int64, sum round.Summary, rank int) {
	fmt.Printf("Session %d (seed %d)\n", run, seed)
	fmt.Printf("  %-5s  %4s  %4s  %6s  %s\n", "Round", "Hit", "Miss", "Acc", "React")
	for _, r := range sum.Results {
		reaction := "-"
		if r.HasReaction {
			reaction = fmt.Sprintf("%.2fs", r.AvgReaction)
		}
		fmt.Printf("  %-5d  %4d  %4d  %5.1f%%  %s\n", r.Round, r.Hits, r.Misses, r.Accuracy, reaction)
	}

	reaction := "-"
	if sum.HasReaction {
		reaction = fmt.Sprintf("%.2fs", sum.AvgReaction)
	}
	fmt.Printf("  total: %d shots, %d hits, %.1f%% accuracy, %s reaction, rank %d\n\n",
		sum.ShotsFired, sum.Hits, sum.Accuracy, reaction, rank)
}
