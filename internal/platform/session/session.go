// Package session drives one game for a frontend that polls input itself:
// restarts, score saving, theme switching and sound.
package session

import (
	"time"

	"github.com/vovakirdan/canvas-arcade/internal/audio"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
	"github.com/vovakirdan/canvas-arcade/internal/storage"
	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

// Deps bundles the optional services a session uses.
// Any field may be nil.
type Deps struct {
	Store *storage.Store
	Theme *theme.Settings
	Sound *audio.Player
}

// Session owns one game and everything that happens around its ticks.
type Session struct {
	game       registry.Game
	deps       Deps
	config     core.RuntimeConfig
	state      core.GameState
	scoreSaved bool
	now        func() time.Time
}

// New resets game with cfg and returns a session ready to tick.
func New(game registry.Game, deps Deps, cfg core.RuntimeConfig) *Session {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if deps.Theme == nil {
		deps.Theme, _ = theme.Load(nil)
	}
	s := &Session{game: game, deps: deps, config: cfg, now: time.Now}
	if s.config.Seed == 0 {
		s.config.Seed = s.now().UnixNano()
	}
	game.Reset(s.config)
	s.state = game.State()
	return s
}

// Tick applies one frame of input. The theme action is handled here and
// never reaches the game.
func (s *Session) Tick(in core.InputFrame) core.GameState {
	if in.Has(core.ActionTheme) {
		//nolint:errcheck // Best-effort save, the toggle applies regardless
		s.deps.Theme.Toggle()
	}

	if in.Has(core.ActionRestart) && s.state.GameOver {
		s.config.Seed = s.now().UnixNano()
		s.game.Reset(s.config)
		s.state = s.game.State()
		s.scoreSaved = false
		return s.state
	}

	result := s.game.Step(in)
	s.state = result.State
	s.deps.Sound.Handle(result.Events)

	if s.state.GameOver && !s.scoreSaved {
		if s.deps.Store != nil && s.state.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			s.deps.Store.SaveScore(s.game.ID(), s.state.Score, s.state.Level)
		}
		s.scoreSaved = true
	}
	if !s.state.GameOver {
		s.scoreSaved = false
	}
	return s.state
}

// Game returns the running game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Palette returns the colors of the current theme.
func (s *Session) Palette() theme.Palette {
	return s.deps.Theme.Palette()
}

// State returns the last state seen by the session.
func (s *Session) State() core.GameState {
	return s.state
}

// Config returns the runtime configuration of the current round.
func (s *Session) Config() core.RuntimeConfig {
	return s.config
}
