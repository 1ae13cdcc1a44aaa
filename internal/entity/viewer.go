// Package entity provides the viewer whose sight the visibility scan computes.
package entity

import "github.com/tropical32/line-of-sight/internal/fov"

// Viewer is the single observer on the map.
type Viewer struct {
	X, Y   int  // Current position on the grid
	Symbol rune // Display symbol
}

// NewViewer creates a viewer at the given position.
func NewViewer(x, y int) *Viewer {
	return &Viewer{
		X:      x,
		Y:      y,
		Symbol: fov.Viewer.Rune(),
	}
}

// Move updates the viewer position by the given delta.
func (v *Viewer) Move(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// Position returns the current x, y coordinates.
func (v *Viewer) Position() (int, int) {
	return v.X, v.Y
}

// Origin returns the position as a scan origin.
func (v *Viewer) Origin() fov.Point {
	return fov.Point{X: float32(v.X), Y: float32(v.Y)}
}
