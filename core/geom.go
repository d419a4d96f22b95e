// Package core provides the fundamental geometry types for the simulation.
// It has no dependencies so gameplay math stays pure and testable.
package core

// Box is an axis-aligned bounding box in world units.
// Edges are half-open: a box occupies [X, X+W) x [Y, Y+H).
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box at the given position and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the x-coordinate of the box center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap (half-open intervals, no tolerance).
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
