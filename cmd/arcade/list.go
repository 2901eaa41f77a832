package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its playfield size and best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	store := openStore()
	defer closeStore(store)

	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "ID", "Title", "Field", "Best")
	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "--", "-----", "-----", "----")
	for _, info := range games {
		field := fmt.Sprintf("%.0fx%.0f", info.Width, info.Height)
		best := "-"
		if store != nil {
			if high, err := store.HighScore(info.ID); err == nil && high > 0 {
				best = fmt.Sprint(high)
			}
		}
		fmt.Printf("  %-10s  %-10s  %-8s  %s\n", info.ID, info.Title, field, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' or 'arcade window <id>' to play.")
}
