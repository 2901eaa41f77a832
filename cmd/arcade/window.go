package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/platform/session"
	"github.com/vovakirdan/canvas-arcade/internal/platform/window"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a native window",
	Long: `Open the game in a window at its original resolution
(480x600 for hitplane, 800x300 for jumpgod).

Controls are the same as 'arcade play'. Left/Right are read as
held keys, so movement is smooth.

Examples:
  arcade window hitplane
  arcade window jumpgod --sound --theme light`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]
	mustGame(gameID)
	configureGame(gameID, flagConfig, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	sound := openSound(flagSound)
	deps := session.Deps{Store: store, Theme: loadTheme(store), Sound: sound}
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}

	runErr := window.Run(game, deps, cfg)

	sound.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
