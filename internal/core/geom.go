// Package core holds the simulation primitives shared by games and frontends:
// geometry, the drawing canvas, input actions and events.
// It has no terminal or graphics dependency.
package core

// Rect is a box on the character grid, used when logical shapes are
// rasterized onto a Screen.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right column.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom row.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned box in logical playfield units.
// Simulations run entirely in RectF space; only the platform converts to cells or pixels.
type RectF struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRectF creates a new logical rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports strict overlap; touching edges do not collide.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inset shrinks the box by dx on the right and dy from the top.
func (r RectF) Inset(dx, dy float64) RectF {
	return RectF{X: r.X, Y: r.Y + dy, W: r.W - dx, H: r.H - dy}
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
