// Package world generates dungeon layouts used as obstacle maps for visibility scans.
package world

import "github.com/tropical32/line-of-sight/internal/fov"

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall is an impassable, opaque tile.
	TileWall Tile = '#'
	// TileFloor is a passable, transparent tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t != TileFloor
}

// Cell returns the visibility cell state the tile starts a scan with.
func (t Tile) Cell() fov.Cell {
	if t.IsOpaque() {
		return fov.Blocking
	}
	return fov.Empty
}
