// Package hitplane implements a vertical auto-firing shooter.
// The player slides along the bottom edge while enemies of growing level
// fall from the top; kills give experience and level-ups upgrade the ship.
package hitplane

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Phase is the session state machine:
// START -> PLAYING -> {PAUSED <-> PLAYING} -> GAME_OVER -> (restart) -> PLAYING.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSE"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Game implements the Hit Plane game logic.
type Game struct {
	cfg      config.HitPlaneConfig
	fixedCfg *config.HitPlaneConfig // Set by NewWithConfig, skips file loading
	runtime  core.RuntimeConfig
	rng      *rand.Rand

	player  Player
	bullets []Bullet
	enemies []Enemy
	frame   int // Frames simulated in the current session
	score   int
	phase   Phase

	sessions int // Number of Reset calls; the first session waits on the start screen
	events   []core.Event
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values keep the config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// New creates a new Hit Plane game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading files.
func NewWithConfig(cfg config.HitPlaneConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hitplane"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hit Plane"
}

// Surface returns the logical playfield size.
func (g *Game) Surface() (float64, float64) {
	if g.cfg.Field.Width == 0 {
		d := config.DefaultHitPlaneConfig()
		return d.Field.Width, d.Field.Height
	}
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Reset initializes or restarts the game.
// The first session starts on the title screen; later ones start playing.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.sessions++

	g.newSession()
	if g.sessions == 1 {
		g.phase = PhaseStart
	}
}

// loadConfig resolves the config for a new session.
func (g *Game) loadConfig() config.HitPlaneConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadHitPlane(configPath)
	if err != nil {
		cfg = config.DefaultHitPlaneConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHitPlanePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// newSession resets every entity list and stat and starts playing.
func (g *Game) newSession() {
	g.player = newPlayer(g.cfg)
	g.bullets = nil
	g.enemies = nil
	g.frame = 0
	g.score = 0
	g.phase = PhasePlaying
}

// Restart begins a fresh session immediately, keeping config and RNG.
func (g *Game) Restart() {
	g.newSession()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case PhaseStart:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.phase = PhasePlaying
		}
	case PhasePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.phase = PhasePlaying
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.phase = PhasePaused
			break
		}
		g.update(in)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one simulation frame in the fixed order the game depends on.
func (g *Game) update(in core.InputFrame) {
	g.movePlayer(in)
	g.autoFire()
	g.advanceBullets()
	g.spawnEnemy()
	g.advanceEnemies()
	g.resolveBulletHits()
	g.resolvePlayerHits()
	g.frame++
}

// movePlayer applies held left/right input, clamped to the playfield.
func (g *Game) movePlayer(in core.InputFrame) {
	p := &g.player
	speed := g.cfg.Player.MoveSpeed
	if in.Has(core.ActionLeft) {
		p.X = max(0, p.X-speed)
	}
	if in.Has(core.ActionRight) {
		p.X = min(g.cfg.Field.Width-p.W, p.X+speed)
	}
}

// autoFire emits a volley whenever the cooldown counter passes the threshold.
func (g *Game) autoFire() {
	p := &g.player
	p.BulletTimer++
	if p.BulletTimer <= g.cfg.Weapon.FireCooldown {
		return
	}
	p.BulletTimer = 0
	g.bullets = append(g.bullets, volley(*p, g.cfg.Weapon)...)
	g.emit(core.EventFire, p.BulletCount)
}

// advanceBullets moves bullets up and drops those fully above the playfield.
func (g *Game) advanceBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y -= b.Speed
		if b.Bottom() > 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// SpawnInterval returns the current spawn-rate denominator in frames.
func (g *Game) SpawnInterval() int {
	s := g.cfg.Spawn
	if !s.Ramp {
		return s.BaseInterval
	}
	return max(s.MinInterval, s.BaseInterval-g.score/s.ScorePerStep)
}

// spawnEnemy creates one enemy on frames that are a multiple of the spawn interval.
func (g *Game) spawnEnemy() {
	if g.frame%g.SpawnInterval() != 0 {
		return
	}
	e := g.cfg.Enemies
	level := g.rng.Intn(g.player.Level) + 1
	x := g.rng.Float64() * (g.cfg.Field.Width - e.Width)
	g.enemies = append(g.enemies, newEnemy(e, level, x, -e.Height))
}

// advanceEnemies moves every enemy down by its own speed.
func (g *Game) advanceEnemies() {
	for i := range g.enemies {
		g.enemies[i].Y += g.enemies[i].Speed
	}
}

// emit records an event for this tick.
func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.player.Level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.phase == PhaseStart,
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Bullets returns a copy of the live bullets in creation order.
func (g *Game) Bullets() []Bullet {
	return slices.Clone(g.bullets)
}

// Enemies returns a copy of the live enemies in spawn order.
func (g *Game) Enemies() []Enemy {
	return slices.Clone(g.enemies)
}

// Register the game with the registry
func init() {
	registry.Register("hitplane", func() registry.Game {
		return New()
	})
}
