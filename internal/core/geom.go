// Package core provides fundamental types and utilities for the arcade platform.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen, used for card
// layout and pointer hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Wrap maps val into [0, n) with wrap-around in both directions.
// Returns 0 when n <= 0.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
