// Package fov computes per-cell visibility on a 2D grid using recursive shadowcasting.
package fov

// Cell represents the state of a single grid position.
type Cell uint8

const (
	// Empty is a traversable cell not yet seen by a scan.
	Empty Cell = iota
	// Blocking is an opaque cell. It blocks line of sight and is never marked visible.
	Blocking
	// Visible is a traversable cell found to be in line of sight.
	Visible
	// Viewer marks the origin cell. Set by callers after scanning.
	Viewer
)

// String returns a human-readable cell state name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Blocking:
		return "blocking"
	case Visible:
		return "visible"
	case Viewer:
		return "viewer"
	default:
		return "unknown"
	}
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	switch c {
	case Blocking:
		return '#'
	case Visible:
		return '*'
	case Viewer:
		return '@'
	default:
		return '.'
	}
}
