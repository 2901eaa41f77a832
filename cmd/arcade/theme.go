package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the dark/light theme",
	Long: `Without arguments, print the current theme. With light or dark,
save that theme. With toggle, switch to the other one.

The theme is stored in the arcade database next to the scores.
Until a theme is saved, the terminal background decides.

Examples:
  arcade theme
  arcade theme light
  arcade theme toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	Run:       runTheme,
}

func runTheme(_ *cobra.Command, args []string) {
	store := openStore()
	defer closeStore(store)
	settings := loadTheme(store)

	if len(args) == 0 {
		fmt.Println(settings.Mode())
		return
	}

	var err error
	if args[0] == "toggle" {
		_, err = settings.Toggle()
	} else {
		var mode theme.Mode
		mode, err = theme.ParseMode(args[0])
		if err == nil {
			err = settings.Set(mode)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if store == nil {
		logger.Warn("theme not saved: no database")
	}
	fmt.Println(settings.Mode())
}
