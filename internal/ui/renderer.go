package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tropical32/line-of-sight/internal/entity"
	"github.com/tropical32/line-of-sight/internal/fov"
	"github.com/tropical32/line-of-sight/internal/scenario"
)

// Renderer draws visibility grids to the screen.
type Renderer struct {
	screen  *Screen
	palette scenario.Palette
}

// NewRenderer creates a renderer for the given screen and palette.
func NewRenderer(screen *Screen, palette scenario.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Frame is everything drawn in one refresh.
type Frame struct {
	Grid   *fov.GridMap
	Viewer *entity.Viewer
	Cursor *entity.Viewer // edit cursor, nil outside edit mode
	Status string
}

// Render draws the grid, the viewer and the status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	for y := 0; y < f.Grid.Height(); y++ {
		for x := 0; x < f.Grid.Width(); x++ {
			glyph, style := r.CellAppearance(f.Grid.Get(x, y))
			r.screen.SetContent(x, y, glyph, style)
		}
	}

	if f.Cursor != nil {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
		glyph, _ := r.CellAppearance(f.Grid.Get(f.Cursor.X, f.Cursor.Y))
		r.screen.SetContent(f.Cursor.X, f.Cursor.Y, glyph, style)
	}

	if f.Viewer != nil {
		style := tcell.StyleDefault.Foreground(r.palette.Color(fov.Viewer)).Bold(true)
		r.screen.SetContent(f.Viewer.X, f.Viewer.Y, f.Viewer.Symbol, style)
	}

	// Keep the status line on screen when the grid is taller than the terminal.
	_, height := r.screen.Size()
	r.RenderMessage(f.Status, max(min(f.Grid.Height()+1, height-1), 0))
	r.screen.Show()
}

// CellAppearance returns the glyph and style for a cell state.
// Cells never reached by a scan are drawn dim.
func (r *Renderer) CellAppearance(c fov.Cell) (rune, tcell.Style) {
	style := tcell.StyleDefault.Foreground(r.palette.Color(c))
	switch c {
	case fov.Empty:
		return ' ', style.Dim(true)
	case fov.Viewer:
		return c.Rune(), style.Bold(true)
	default:
		return c.Rune(), style
	}
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
