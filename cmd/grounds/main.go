// grounds is a terminal shooting range: aim at targets, shoot them down
// against the clock and track accuracy and reaction time across sessions.
//
// Usage:
//
//	grounds list               - List available ranges
//	grounds play [range]       - Play a range (default: gallery)
//	grounds menu               - Pick a range interactively
//	grounds serve              - Start SSH server, optionally with the HTTP API
//	grounds scores [range]     - Show high scores
//	grounds sessions           - Show recent sessions
//	grounds simulate           - Run a scripted bot session
//	grounds export             - Write per-player features as CSV
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible target placement
//	--db <path>          - Set database path (default: ~/.grounds/grounds.db)
//	--config <path>      - Custom range config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/shooting-grounds/internal/games/gallery"
)

const defaultGame = "gallery"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grounds",
	Short: "Shooting Grounds - a shooting range in your terminal",
	Long: `Shooting Grounds is a terminal shooting range. Targets appear one at a
time inside the range; aim, fire, and knock down as many as you can before
the round clock runs out.

Available commands:
  list      - Show all available ranges
  play      - Play a range directly
  menu      - Interactive range picker
  serve     - Start SSH server (and HTTP API) for remote play
  scores    - View high scores
  sessions  - View recent sessions
  simulate  - Run a scripted bot session
  export    - Export per-player features as CSV

Examples:
  grounds list
  grounds play
  grounds play gallery_pistol --difficulty hard
  grounds serve --ssh :2222 --http :8080
  grounds simulate --save`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.grounds/grounds.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom range config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
}
