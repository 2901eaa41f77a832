package jumpgod

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Glyphs used when the canvas is a character grid.
const (
	DinoGlyph     = '█'
	EyeGlyph      = '◆'
	ObstacleGlyph = '▓'
	GroundGlyph   = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := g.Surface()
	g.Draw(core.NewCellCanvas(dst, w, h))
}

// Draw paints the post-update state onto c.
func (g *Game) Draw(c core.Canvas) {
	c.Clear()
	w, _ := c.Size()

	c.FillRect(core.NewRectF(0, g.GroundY(), w, 2), core.Style{Color: core.ColorGray, Glyph: GroundGlyph})

	d := g.dino
	c.FillRect(d.RectF, core.Style{Color: core.ColorWhite, Glyph: DinoGlyph})
	c.FillRect(core.NewRectF(d.X+25, d.Y+10, 5, 5), core.Style{Color: core.ColorDefault, Glyph: EyeGlyph})

	for _, o := range g.obstacles.Obstacles() {
		c.FillRect(o.RectF, core.Style{Color: core.ColorRed, Glyph: ObstacleGlyph})
	}

	scoreText := fmt.Sprintf("Score: %d", g.display)
	c.Text(w-c.TextWidth(scoreText)-16, 8, scoreText, core.ColorBrightWhite)
	if g.cfg.Physics.Ramp {
		c.Text(16, 8, fmt.Sprintf("Spd: %.1f", g.speed), core.ColorGray)
	}

	if !g.running {
		core.DrawCenteredMessage(c, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.display),
			"Press R to restart")
	}
}
