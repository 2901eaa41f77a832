// Package theme holds the light/dark display setting shared by every frontend.
//
// The setting is loaded once at startup and written back whenever it changes.
// When nothing has been saved yet, the terminal's background decides.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the persisted theme value.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// SettingKey is the settings-store key the mode is saved under.
const SettingKey = "theme"

// ParseMode converts a stored or user-supplied string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("theme: unknown mode %q (want light or dark)", s)
	}
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Store persists string settings. *storage.Store satisfies it.
type Store interface {
	Setting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// DetectDark reports whether the output has a dark background.
// Replaced in tests.
var DetectDark = lipgloss.HasDarkBackground

// Settings is the live theme setting bound to its store.
type Settings struct {
	store Store
	mode  Mode
}

// Load reads the saved mode from store. Missing or unknown values fall back
// to the detected background. A read error also falls back and is returned
// alongside usable settings. A nil store keeps the setting in memory only.
func Load(store Store) (*Settings, error) {
	return LoadDetect(store, DetectDark)
}

// LoadDetect is Load with the background check of a specific output,
// such as a remote client's terminal.
func LoadDetect(store Store, dark func() bool) (*Settings, error) {
	s := &Settings{store: store, mode: detected(dark)}
	if store == nil {
		return s, nil
	}

	value, ok, err := store.Setting(SettingKey)
	if err != nil {
		return s, fmt.Errorf("theme: load: %w", err)
	}
	if !ok {
		return s, nil
	}
	if m, err := ParseMode(value); err == nil {
		s.mode = m
	}
	return s, nil
}

func detected(dark func() bool) Mode {
	if dark != nil && dark() {
		return Dark
	}
	return Light
}

// Mode returns the current mode.
func (s *Settings) Mode() Mode {
	return s.mode
}

// Palette returns the palette for the current mode.
func (s *Settings) Palette() Palette {
	return For(s.mode)
}

// Set changes the mode and saves it. Setting the current mode is a no-op.
func (s *Settings) Set(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	if m == s.mode {
		return nil
	}
	s.mode = m
	if s.store == nil {
		return nil
	}
	if err := s.store.SetSetting(SettingKey, string(m)); err != nil {
		return fmt.Errorf("theme: save: %w", err)
	}
	return nil
}

// Toggle flips between light and dark, saves, and returns the new mode.
func (s *Settings) Toggle() (Mode, error) {
	next := s.mode.Opposite()
	return next, s.Set(next)
}
