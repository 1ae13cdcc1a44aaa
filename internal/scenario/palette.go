package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/tropical32/line-of-sight/internal/fov"
)

// Palette holds hex colours for each cell state, loaded from palette.json.
type Palette struct {
	Empty    string `json:"empty"`
	Blocking string `json:"blocking"`
	Visible  string `json:"visible"`
	Viewer   string `json:"viewer"`
}

// LoadPalette loads the embedded palette.json file.
func LoadPalette() (Palette, error) {
	return decode[Palette]("palette.json")
}

// Color returns the tcell colour for a cell state, or white if the entry is malformed.
func (p Palette) Color(c fov.Cell) tcell.Color {
	var hex string
	switch c {
	case fov.Blocking:
		hex = p.Blocking
	case fov.Visible:
		hex = p.Visible
	case fov.Viewer:
		hex = p.Viewer
	default:
		hex = p.Empty
	}

	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
