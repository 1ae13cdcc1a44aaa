package fov

// Transform maps a (distance, lateral offset) pair onto a displacement from
// the scan origin. Each value sweeps one quadrant.
type Transform uint8

const (
	// Identity maps (d, i) to (d, i).
	Identity Transform = iota
	// Clockwise maps (d, i) to (i, -d).
	Clockwise
	// Reverse maps (d, i) to (-d, -i).
	Reverse
	// CounterClockwise maps (d, i) to (-i, d).
	CounterClockwise
)

// Transforms lists every quadrant transform in scan order.
var Transforms = [...]Transform{Identity, Clockwise, Reverse, CounterClockwise}

// Apply returns the displacement for distance d and lateral offset i.
func (t Transform) Apply(d, i float32) (dx, dy float32) {
	switch t {
	case Clockwise:
		return i, -d
	case Reverse:
		return -d, -i
	case CounterClockwise:
		return -i, d
	default:
		return d, i
	}
}

// String returns the transform name.
func (t Transform) String() string {
	switch t {
	case Identity:
		return "identity"
	case Clockwise:
		return "clockwise"
	case Reverse:
		return "reverse"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}
