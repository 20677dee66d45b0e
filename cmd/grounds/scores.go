package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
	"github.com/vovakirdan/shooting-grounds/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [range]",
	Short: "Show high scores for a range",
	Long: `Display the top 10 scores and the accuracy leaderboard for a range
(default: gallery).

Examples:
  grounds scores
  grounds scores gallery_pistol
  grounds scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagScoresClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the range's high scores")
}

func runScores(_ *cobra.Command, args []string) {
	gameID, err := gameArg(args)
	if err != nil {
		exitError("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitError("creating range: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitError("opening results database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			exitError("clearing scores: %v", err)
		}
		fmt.Printf("Cleared high scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		exitError("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'grounds play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	board, err := store.Leaderboard(gameID, 5)
	if err != nil || len(board) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Most accurate sessions:")
	for i, s := range board {
		fmt.Printf("  %-4d  %-12s  %5.1f%%  %s\n", i+1, s.Player, s.Accuracy, formatReaction(s))
	}
}

func formatReaction(s storage.SessionRecord) string {
	if !s.HasReaction {
		return "-"
	}
	return fmt.Sprintf("%.2fs", s.AvgReaction)
}
