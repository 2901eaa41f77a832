// Package window runs arcade games in a native ebiten window, drawing each
// logical playfield at its original pixel size.
package window

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/platform/session"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// heldKeys are polled every frame for continuous movement.
var heldKeys = map[ebiten.Key]core.Action{
	ebiten.KeyLeft:  core.ActionLeft,
	ebiten.KeyA:     core.ActionLeft,
	ebiten.KeyRight: core.ActionRight,
	ebiten.KeyD:     core.ActionRight,
}

// pressedKeys fire once on the frame they go down.
var pressedKeys = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionJump,
	ebiten.KeyUp:     core.ActionJump,
	ebiten.KeyW:      core.ActionJump,
	ebiten.KeyEnter:  core.ActionConfirm,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyEscape: core.ActionPause,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyT:      core.ActionTheme,
	ebiten.KeyQ:      core.ActionQuit,
}

// App implements ebiten.Game around a Session.
type App struct {
	session *session.Session
	w, h    int
}

// NewApp creates the window application for game.
func NewApp(game registry.Game, deps session.Deps, cfg core.RuntimeConfig) *App {
	s := session.New(game, deps, cfg)
	w, h := game.Surface()
	return &App{session: s, w: int(math.Ceil(w)), h: int(math.Ceil(h))}
}

// readInput polls the keyboard into one input frame.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for key, action := range heldKeys {
		if ebiten.IsKeyPressed(key) {
			in.Set(action)
		}
	}
	for key, action := range pressedKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.Set(action)
		}
	}
	return in
}

// Update advances the simulation by one tick.
func (a *App) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	a.session.Tick(in)
	return nil
}

// Draw paints the game at its logical resolution.
func (a *App) Draw(screen *ebiten.Image) {
	w, h := a.session.Game().Surface()
	if w <= 0 || h <= 0 {
		return
	}
	a.session.Game().Draw(NewImageCanvas(screen, a.session.Palette(), w, h))
}

// Layout keeps the logical surface size regardless of the window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.w, a.h
}

// Run opens a window sized to the game surface and blocks until it closes.
func Run(game registry.Game, deps session.Deps, cfg core.RuntimeConfig) error {
	app := NewApp(game, deps, cfg)
	if app.w <= 0 || app.h <= 0 {
		return fmt.Errorf("window: game %q has no surface", game.ID())
	}

	ebiten.SetWindowSize(app.w, app.h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(app.session.Config().TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
