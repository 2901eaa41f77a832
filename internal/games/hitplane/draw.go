package hitplane

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Glyphs used when the canvas is a character grid.
const (
	PlayerGlyph = '▲'
	EnemyGlyph  = '▼'
	BulletGlyph = '│'
	BarGlyph    = '▬'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	w, h := g.Surface()
	g.Draw(core.NewCellCanvas(dst, w, h))
}

// Draw paints the post-update state onto c.
func (g *Game) Draw(c core.Canvas) {
	c.Clear()

	for _, e := range g.enemies {
		g.drawEnemy(c, e)
	}
	for _, b := range g.bullets {
		c.FillRect(b.RectF, core.Style{Color: b.Color, Glyph: BulletGlyph})
	}
	c.FillRect(g.player.RectF, core.Style{Color: g.player.Color, Glyph: PlayerGlyph})

	g.drawHUD(c)

	switch g.phase {
	case PhaseStart:
		core.DrawCenteredMessage(c, core.ColorBrightWhite,
			"HIT PLANE",
			"Move: LEFT/RIGHT  Fire: auto",
			"Press ENTER or SPACE to start")
	case PhasePaused:
		core.DrawCenteredMessage(c, core.ColorBrightWhite,
			"PAUSED",
			"P: resume  R: restart")
	case PhaseGameOver:
		core.DrawCenteredMessage(c, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", g.score, g.player.Level),
			"Press R to restart")
	}
}

// drawEnemy paints an enemy with its level label and a health bar above it.
func (g *Game) drawEnemy(c core.Canvas, e Enemy) {
	c.FillRect(e.RectF, core.Style{Color: e.Color, Glyph: EnemyGlyph})

	label := fmt.Sprintf("Lv.%d", e.Level)
	c.Text(e.X+(e.W-c.TextWidth(label))/2, e.Y-c.LineHeight()-6, label, core.ColorWhite)

	if e.HP < e.MaxHP {
		bar := core.NewRectF(e.X, e.Y-5, e.W, 3)
		drawBar(c, bar, float64(e.HP)/float64(e.MaxHP), core.ColorRed)
	}
}

// drawHUD paints score, level, and the player's hp and exp bars.
func (g *Game) drawHUD(c core.Canvas) {
	p := g.player
	lh := c.LineHeight()

	c.Text(10, 10, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
	c.Text(10, 10+lh*1.5, fmt.Sprintf("Level: %d", p.Level), core.ColorBrightWhite)

	hpRatio := 0.0
	if p.MaxHP > 0 {
		hpRatio = float64(max(p.HP, 0)) / float64(p.MaxHP)
	}
	hpColor := core.ColorRed
	switch {
	case hpRatio > 0.6:
		hpColor = core.ColorGreen
	case hpRatio > 0.3:
		hpColor = core.ColorYellow
	}
	w, _ := c.Size()
	hpText := fmt.Sprintf("HP %d/%d", max(p.HP, 0), p.MaxHP)
	c.Text(w-c.TextWidth(hpText)-10, 10, hpText, hpColor)
	drawBar(c, core.NewRectF(w-110, 10+lh*1.5, 100, 8), hpRatio, hpColor)

	expRatio := 0.0
	if p.ExpToNextLevel > 0 {
		expRatio = float64(p.Exp) / float64(p.ExpToNextLevel)
	}
	drawBar(c, core.NewRectF(w-110, 10+lh*3, 100, 6), expRatio, core.ColorPurple)
}

// drawBar paints a bar filled to ratio (clamped to [0, 1]) over a gray track.
func drawBar(c core.Canvas, r core.RectF, ratio float64, col core.Color) {
	ratio = core.ClampF(ratio, 0, 1)
	c.FillRect(r, core.Style{Color: core.ColorGray, Glyph: BarGlyph})
	if ratio > 0 {
		fill := r
		fill.W = r.W * ratio
		c.FillRect(fill, core.Style{Color: col, Glyph: BarGlyph})
	}
}
