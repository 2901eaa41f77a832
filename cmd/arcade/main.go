// arcade runs the Hit Plane shooter and the Jump God runner in the terminal
// or in a native window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a native window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade theme [mode]      - Show, set or toggle the dark/light theme
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--theme <mode>  - Override the saved theme (light or dark)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/canvas-arcade/internal/games/hitplane"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/jumpgod"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagTheme  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - a shooter and a runner for terminal and window",
	Long: `Canvas Arcade hosts two mini-games:

  hitplane - vertical shooter: move left/right, auto-fire, level up
  jumpgod  - endless runner: jump over obstacles as the speed grows

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a native window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  theme    - Show or change the dark/light theme

Examples:
  arcade list
  arcade play hitplane
  arcade window jumpgod --sound
  arcade menu --theme light
  arcade serve --ssh :2222
  arcade scores hitplane`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores and settings database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme for this run and later ones: light or dark")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themeCmd)
}
