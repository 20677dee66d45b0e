package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var (
	flagSessionsGame  string
	flagSessionsLimit int
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent sessions",
	Long: `List the most recent finished sessions with accuracy, average reaction
time and rank.

Examples:
  grounds sessions
  grounds sessions --game gallery_pistol --limit 25`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagSessionsGame, "game", "", "Only show this range (default: all)")
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	if flagSessionsGame != "" && !registry.Exists(flagSessionsGame) {
		exitError("unknown range %q, run 'grounds list' to see available ranges", flagSessionsGame)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitError("opening results database: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagSessionsGame, flagSessionsLimit)
	if err != nil {
		store.Close()
		exitError("retrieving sessions: %v", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-15s  %6s  %4s  %4s  %7s  %s\n",
		"Date", "Player", "Range", "Acc", "Hit", "Miss", "React", "Rank")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-12s  %-15s  %5.1f%%  %4d  %4d  %7s  %d\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Player, s.GameID,
			s.Accuracy, s.Hits, s.Misses, formatReaction(s), s.Rank)
	}
}
