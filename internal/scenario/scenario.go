package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/tropical32/line-of-sight/internal/fov"
)

var (
	// ErrInvalidScenario is returned when a scenario cannot be turned into a grid.
	ErrInvalidScenario = errors.New("invalid scenario")
	// ErrUnknownScenario is returned when no scenario has the requested ID.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Def describes an obstacle layout and the scan to run over it.
type Def struct {
	ID       string     `json:"id"`       // Unique identifier (e.g., "reference")
	Name     string     `json:"name"`     // Display name
	Width    int        `json:"width"`    // Columns
	Height   int        `json:"height"`   // Rows
	Fill     string     `json:"fill"`     // "empty" or "blocking"
	Origin   [2]float32 `json:"origin"`   // Viewer cell, whole numbers only
	Radius   float32    `json:"radius"`   // Sight radius
	Blocking [][2]int   `json:"blocking"` // Cells set to Blocking after filling
	Open     [][2]int   `json:"open"`     // Cells set to Empty after filling
}

// ScenariosFile represents the structure of scenarios.json.
type ScenariosFile struct {
	Scenarios []Def `json:"scenarios"`
}

// FillCell returns the cell state the grid is filled with.
func (d *Def) FillCell() (fov.Cell, error) {
	switch d.Fill {
	case "", "empty":
		return fov.Empty, nil
	case "blocking":
		return fov.Blocking, nil
	default:
		return fov.Empty, fmt.Errorf("%w: %s: unknown fill %q", ErrInvalidScenario, d.ID, d.Fill)
	}
}

// Validate checks the size, fill and origin. The origin must name a whole cell
// so that the viewer marker and the scan origin agree.
func (d *Def) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidScenario)
	}
	if d.Width < 1 || d.Height < 1 {
		return fmt.Errorf("%w: %s: size %dx%d", ErrInvalidScenario, d.ID, d.Width, d.Height)
	}
	if _, err := d.FillCell(); err != nil {
		return err
	}
	for _, v := range d.Origin {
		if float64(v) != math.Trunc(float64(v)) {
			return fmt.Errorf("%w: %s: origin (%v, %v) is not a whole cell", ErrInvalidScenario, d.ID, d.Origin[0], d.Origin[1])
		}
	}
	return nil
}

// OriginPoint returns the viewer position as a scan origin.
func (d *Def) OriginPoint() fov.Point {
	return fov.Point{X: d.Origin[0], Y: d.Origin[1]}
}

// OriginCell returns the viewer position as grid coordinates.
func (d *Def) OriginCell() (int, int) {
	return int(d.Origin[0]), int(d.Origin[1])
}

// Build validates the definition and creates its grid. Open cells are applied
// after blocking ones.
func (d *Def) Build() (*fov.GridMap, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	fill, _ := d.FillCell()
	g := fov.NewFilled(d.Width, d.Height, fill)
	for _, c := range d.Blocking {
		g.Set(c[0], c[1], fov.Blocking)
	}
	for _, c := range d.Open {
		g.Set(c[0], c[1], fov.Empty)
	}
	return g, nil
}
