package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stackout/internal/games/breakout"
	"github.com/vovakirdan/stackout/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Breakout layouts:")
	for _, l := range breakout.BuiltinLayouts() {
		fmt.Printf("  %-10s  %s (%d blocks)\n", l.ID, l.Name, l.Blocks())
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
