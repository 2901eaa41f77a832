// Package jumpgod implements a side-scrolling endless runner.
// The dino jumps over ground obstacles that scroll in from the right
// at a speed that grows with the distance covered.
package jumpgod

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Dino is the player-controlled runner.
type Dino struct {
	core.RectF
	DY       float64 // Vertical velocity, negative is upward
	Airborne bool
}

// Game implements the Jump God runner logic.
type Game struct {
	cfg       config.JumpGodConfig
	fixedCfg  *config.JumpGodConfig // Set by NewWithConfig, skips file loading
	runtime   core.RuntimeConfig
	dino      Dino
	obstacles *ObstacleManager
	speed     float64 // Current scroll speed in units per frame
	score     int     // Internal counter, one point per frame
	display   int     // Downscaled score shown to the player
	frame     int
	running   bool
	events    []core.Event
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

// New creates a new Jump God game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading files.
func NewWithConfig(cfg config.JumpGodConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumpgod"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jump God"
}

// Surface returns the logical playfield size.
func (g *Game) Surface() (float64, float64) {
	if g.cfg.Field.Width == 0 {
		d := config.DefaultJumpGodConfig()
		return d.Field.Width, d.Field.Height
	}
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadJumpGod(configPath)
		if err != nil {
			cfg = config.DefaultJumpGodConfig()
		}
		if difficultyPreset != "" {
			config.ApplyJumpGodPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	d := g.cfg.Dino
	g.dino = Dino{RectF: core.NewRectF(d.X, g.restY(), d.Width, d.Height)}
	g.speed = g.cfg.Physics.StartSpeed
	g.score = 0
	g.display = 0
	g.frame = 0
	g.running = true

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, g.cfg.Obstacles, g.cfg.Field.Width, g.GroundY())
	} else {
		g.obstacles.Reset(runtime.Seed, g.cfg.Obstacles, g.cfg.Field.Width, g.GroundY())
	}
}

// GroundY returns the y of the ground line.
func (g *Game) GroundY() float64 {
	return g.cfg.Field.Height - g.cfg.Dino.GroundMargin
}

// restY is the dino's top edge while standing on the ground.
func (g *Game) restY() float64 {
	return g.GroundY() - g.cfg.Dino.Height
}

// Jump starts a jump. It is ignored while airborne or after game over.
func (g *Game) Jump() bool {
	if g.dino.Airborne || !g.running {
		return false
	}
	g.dino.DY = g.cfg.Physics.JumpStrength
	g.dino.Airborne = true
	g.emit(core.EventJump, 0)
	return true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if !g.running {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State(), Events: g.events}
	}

	if in.Has(core.ActionJump) {
		g.Jump()
	}
	g.update()

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one simulation frame: integrate, spawn, advance, collide, score.
func (g *Game) update() {
	g.integrate()

	g.frame++
	g.obstacles.MaybeSpawn(g.frame)
	g.obstacles.Advance(g.speed)

	hitbox := g.dino.Inset(g.cfg.Dino.HitboxInset, g.cfg.Dino.HitboxInset)
	if g.obstacles.CheckCollision(hitbox) {
		g.running = false
	}

	g.score++
	p := g.cfg.Physics
	if p.Ramp && p.SpeedEvery > 0 && g.score%p.SpeedEvery == 0 {
		g.speed += p.SpeedStep
	}
	if s := g.cfg.Score; s.RefreshEvery > 0 && g.frame%s.RefreshEvery == 0 {
		g.display = g.score / max(s.DisplayDivisor, 1)
	}

	if !g.running {
		g.emit(core.EventGameOver, g.display)
	}
}

// integrate applies velocity, then gravity while above ground, snapping on landing.
func (g *Game) integrate() {
	d := &g.dino
	d.Y += d.DY

	if d.Y < g.restY() {
		d.DY += g.cfg.Physics.Gravity
		return
	}
	if d.Airborne {
		g.emit(core.EventLand, 0)
	}
	d.Y = g.restY()
	d.DY = 0
	d.Airborne = false
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// State returns the current game state. Score is the displayed score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.display,
		GameOver: !g.running,
	}
}

// Dino returns a copy of the runner.
func (g *Game) Dino() Dino {
	return g.dino
}

// Obstacles returns the live obstacles.
func (g *Game) Obstacles() []Obstacle {
	return g.obstacles.Obstacles()
}

// Speed returns the current scroll speed.
func (g *Game) Speed() float64 {
	return g.speed
}

// InternalScore returns the frame-based score counter.
func (g *Game) InternalScore() int {
	return g.score
}

// Register the game with the registry
func init() {
	registry.Register("jumpgod", func() registry.Game {
		return New()
	})
}
