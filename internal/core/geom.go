// Package core provides fundamental types and utilities shared by the simulation
// and the platform drivers. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Touches returns true if the rectangles overlap or share an edge.
// This is the inclusive test the ball uses against blocks.
func (r Rect) Touches(other Rect) bool {
	return r.Right() >= other.X && r.X <= other.Right() &&
		r.Bottom() >= other.Y && r.Y <= other.Bottom()
}
