package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Left/Right, A/D  - Move (hitplane)
  Space/Up/W       - Jump (jumpgod), start (hitplane)
  Enter            - Start or resume
  P/Esc            - Pause (hitplane)
  R                - Restart
  T                - Toggle dark/light theme
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Gentler start, ramps normally
  normal - Default tuning
  hard   - Tougher start, ramps normally
  fixed  - No spawn acceleration or speed ramp

Examples:
  arcade play hitplane
  arcade play jumpgod --difficulty hard
  arcade play hitplane --config ./my-hitplane.yaml --sound`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, windowCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	}
}

// mustGame exits when gameID is not registered.
func mustGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
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
	deps := tui.Deps{Store: store, Theme: loadTheme(store), Sound: sound}

	runErr := tui.Run(game, deps, terminalConfig())

	// Clean up before potential exit
	sound.Close()
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
