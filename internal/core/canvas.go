package core

import "math"

// Style describes how a filled shape is drawn.
// Pixel canvases use only Color; cell canvases also use Glyph.
type Style struct {
	Color Color
	Glyph rune
}

// Canvas is the drawing sink games render onto after each update.
// Coordinates are logical playfield units; the implementation scales them.
// Drawing must never feed back into simulation state.
type Canvas interface {
	// Size returns the logical surface size.
	Size() (w, h float64)
	// Clear repaints the whole surface with the theme background.
	Clear()
	// FillRect paints an axis-aligned box.
	FillRect(r RectF, st Style)
	// Text draws a single line with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
	// TextWidth returns the logical width of s when drawn with Text.
	TextWidth(s string) float64
	// LineHeight returns the logical height of one text line.
	LineHeight() float64
}

// CellCanvas adapts a character Screen to the Canvas interface by scaling
// logical units onto the cell grid.
type CellCanvas struct {
	dst    *Screen
	w, h   float64
	sx, sy float64
}

// NewCellCanvas wraps dst for a logical surface of w x h units.
func NewCellCanvas(dst *Screen, w, h float64) *CellCanvas {
	c := &CellCanvas{dst: dst, w: w, h: h}
	if w > 0 {
		c.sx = float64(dst.Width()) / w
	}
	if h > 0 {
		c.sy = float64(dst.Height()) / h
	}
	return c
}

// Size returns the logical surface size.
func (c *CellCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear blanks the screen.
func (c *CellCanvas) Clear() {
	c.dst.Clear()
}

// FillRect paints every cell the box touches. Non-empty boxes cover at least one cell.
func (c *CellCanvas) FillRect(r RectF, st Style) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, x1 := c.span(r.X, r.Right(), c.sx)
	y0, y1 := c.span(r.Y, r.Bottom(), c.sy)

	glyph := st.Glyph
	if glyph == 0 {
		glyph = '█'
	}
	c.dst.DrawRectColored(NewRect(x0, y0, x1-x0, y1-y0), glyph, st.Color)
}

// span converts a logical interval to a half-open cell interval.
func (c *CellCanvas) span(from, to, scale float64) (int, int) {
	a := int(math.Floor(from * scale))
	b := int(math.Ceil(to * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// Text draws s starting at the cell containing (x, y).
func (c *CellCanvas) Text(x, y float64, s string, col Color) {
	c.dst.DrawTextColored(int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)), s, col)
}

// TextWidth returns the logical width of s, one cell per rune.
func (c *CellCanvas) TextWidth(s string) float64 {
	if c.sx == 0 {
		return 0
	}
	return float64(len([]rune(s))) / c.sx
}

// LineHeight returns the logical height of one cell row.
func (c *CellCanvas) LineHeight() float64 {
	if c.sy == 0 {
		return 0
	}
	return 1 / c.sy
}

// DrawCenteredMessage draws lines centered on the canvas, one line apart.
func DrawCenteredMessage(c Canvas, col Color, lines ...string) {
	w, h := c.Size()
	step := c.LineHeight() * 1.5
	top := h/2 - step*float64(len(lines))/2
	for i, line := range lines {
		x := (w - c.TextWidth(line)) / 2
		c.Text(x, top+float64(i)*step, line, col)
	}
}
