package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/theme"
)

// Face7x13 metrics.
const (
	glyphAdvance = 7
	lineHeight   = 13
	ascent       = 11
)

// ImageCanvas draws onto an ebiten image whose pixels are logical units.
type ImageCanvas struct {
	dst     *ebiten.Image
	palette theme.Palette
	w, h    float64
}

// NewImageCanvas wraps dst for a logical surface of w x h units.
func NewImageCanvas(dst *ebiten.Image, p theme.Palette, w, h float64) *ImageCanvas {
	return &ImageCanvas{dst: dst, palette: p, w: w, h: h}
}

// Size returns the logical surface size.
func (c *ImageCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the image with the theme background.
func (c *ImageCanvas) Clear() {
	c.dst.Fill(c.palette.BackgroundRGBA())
}

// FillRect paints r in the palette color of st. Glyphs are ignored.
func (c *ImageCanvas) FillRect(r core.RectF, st core.Style) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.palette.RGBA(st.Color), false)
}

// Text draws s with its top-left corner at (x, y).
func (c *ImageCanvas) Text(x, y float64, s string, col core.Color) {
	text.Draw(c.dst, s, basicfont.Face7x13, int(x), int(y)+ascent, c.palette.RGBA(col))
}

// TextWidth returns the pixel width of s in the fixed-width face.
func (c *ImageCanvas) TextWidth(s string) float64 {
	return float64(len([]rune(s)) * glyphAdvance)
}

// LineHeight returns the pixel height of one text line.
func (c *ImageCanvas) LineHeight() float64 {
	return lineHeight
}
