package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shooting-grounds/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available ranges",
	Long:  `Shows a list of all registered shooting ranges.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No ranges available.")
		return
	}

	fmt.Println("Available ranges:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'grounds play <id>' to play a range.")
}
