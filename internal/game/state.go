// Package game ties the visibility engine to a viewer and an interactive terminal loop.
package game

// State represents the current input mode.
type State int

const (
	// StateExplore moves the viewer and rescans after every step.
	StateExplore State = iota
	// StateEdit moves a cursor that toggles walls.
	StateEdit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateEdit:
		return "edit"
	default:
		return "unknown"
	}
}
