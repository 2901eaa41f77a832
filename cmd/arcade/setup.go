package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-arcade/internal/audio"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/games/hitplane"
	"github.com/vovakirdan/canvas-arcade/internal/games/jumpgod"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

// openStore opens the database, or returns nil so games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// closeStore closes store if it was opened.
func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// loadTheme reads the saved theme and applies --theme on top of it.
func loadTheme(store *storage.Store) *theme.Settings {
	var src theme.Store
	if store != nil {
		src = store
	}
	settings, err := theme.Load(src)
	if err != nil {
		logger.Warn("could not read theme setting", "error", err)
	}
	if flagTheme == "" {
		return settings
	}

	mode, err := theme.ParseMode(flagTheme)
	if err != nil {
		logger.Warn("ignoring --theme", "error", err)
		return settings
	}
	if err := settings.Set(mode); err != nil {
		logger.Warn("could not save theme setting", "error", err)
	}
	return settings
}

// openSound starts audio output when enabled. Failures leave the game silent.
func openSound(enabled bool) *audio.Player {
	if !enabled {
		return nil
	}
	p := audio.NewPlayer()
	if err := p.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return p
}

// configureGame passes config overrides to the game before it is created.
func configureGame(gameID, configPath, difficulty string) {
	switch gameID {
	case "hitplane":
		hitplane.SetConfigPath(configPath)
		hitplane.SetDifficultyPreset(difficulty)
	case "jumpgod":
		jumpgod.SetConfigPath(configPath)
		jumpgod.SetDifficultyPreset(difficulty)
	}
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
