package fov

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// GridMap is a fixed-size, row-major grid of cell states.
// Reads outside the grid return Empty and writes outside it are ignored.
type GridMap struct {
	width  int
	height int
	cells  [][]Cell
}

// NewFilled creates a width x height grid with every cell set to fill.
// Negative dimensions are treated as zero.
func NewFilled(width, height int, fill Cell) *GridMap {
	width = max(width, 0)
	height = max(height, 0)

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = fill
		}
	}

	return &GridMap{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewEmpty creates a grid with every cell Empty.
func NewEmpty(width, height int) *GridMap {
	return NewFilled(width, height, Empty)
}

// NewBlocking creates a grid with every cell Blocking.
func NewBlocking(width, height int) *GridMap {
	return NewFilled(width, height, Blocking)
}

// Width returns the number of columns.
func (g *GridMap) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridMap) Height() int { return g.height }

// InBounds returns true if the position lies inside the grid.
func (g *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at the given position, or Empty if it is out of bounds.
func (g *GridMap) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// Set overwrites the cell at the given position. Out of bounds writes are no-ops.
func (g *GridMap) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

// Count returns how many cells are in the given state.
func (g *GridMap) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// ClearVisible resets Visible and Viewer cells to Empty. Blocking cells are kept.
func (g *GridMap) ClearVisible() {
	for _, row := range g.cells {
		for x, cell := range row {
			if cell == Visible || cell == Viewer {
				row[x] = Empty
			}
		}
	}
}

// Rows returns a numeric snapshot of the grid, one slice per row.
func (g *GridMap) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y, row := range g.cells {
		rows[y] = make([]uint8, g.width)
		for x, cell := range row {
			rows[y][x] = uint8(cell)
		}
	}
	return rows
}

// Dump writes a row-by-row rendering of the grid for debugging.
func (g *GridMap) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw); err != nil {
		return err
	}

	for _, row := range g.Rows() {
		values := make([]string, len(row))
		for x, v := range row {
			values[x] = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintf(bw, "[%s]\n", strings.Join(values, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String returns the Dump rendering.
func (g *GridMap) String() string {
	var sb strings.Builder
	_ = g.Dump(&sb)
	return sb.String()
}
