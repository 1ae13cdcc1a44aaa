package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tropical32/line-of-sight/internal/fov"
	"github.com/tropical32/line-of-sight/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 64
	DefaultHeight = 22

	// BSP parameters
	minRoomSize = 4
	maxRoomSize = 12
	minLeafSize = 7
	maxAttempts = 100
)

// Dungeon is a generated wall/floor layout.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room
	rng    *rand.Rand
}

// NewDungeon creates a dungeon filled with walls. A nil rng is seeded from the
// clock. Negative dimensions are treated as zero.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	width = max(width, 0)
	height = max(height, 0)
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		rng:    rng,
	}
}

// Generate carves rooms and corridors using binary space partitioning.
func (d *Dungeon) Generate(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.generate")
	defer span.End()

	start := time.Now()

	// Leave a one tile wall border around the whole map.
	root := &partition{x: 1, y: 1, width: d.Width - 2, height: d.Height - 2}
	d.split(root)
	d.carveRooms(root)
	d.connect(root)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(start).Milliseconds()),
	)
}

// GridMap converts the layout into a visibility grid. Walls become Blocking.
func (d *Dungeon) GridMap() *fov.GridMap {
	g := fov.NewEmpty(d.Width, d.Height)
	for y, row := range d.Tiles {
		for x, tile := range row {
			g.Set(x, y, tile.Cell())
		}
	}
	return g
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.GetTile(x, y).IsPassable()
}

// GetTile returns the tile at the given position. Positions off the map are walls.
func (d *Dungeon) GetTile(x, y int) Tile {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return TileWall
	}
	return d.Tiles[y][x]
}

// RoomIndexAt returns the index of the room containing the position, or -1.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// RandomPointInRoom returns a random passable point in the room, falling back
// to its center.
func (d *Dungeon) RandomPointInRoom(roomIndex int) (int, int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1
	}
	room := d.Rooms[roomIndex]

	for i := 0; i < maxAttempts; i++ {
		x := room.X + d.rng.Intn(room.Width)
		y := room.Y + d.rng.Intn(room.Height)
		if d.IsPassable(x, y) {
			return x, y
		}
	}
	return room.Center()
}

// partition is a node in the BSP tree.
type partition struct {
	x, y          int
	width, height int
	left, right   *partition
	room          *Room
}

func (p *partition) isLeaf() bool {
	return p.left == nil && p.right == nil
}

// split divides the partition along its longer axis until leaves are small.
func (d *Dungeon) split(p *partition) {
	canSplitX := p.width >= minLeafSize*2
	canSplitY := p.height >= minLeafSize*2
	if !canSplitX && !canSplitY {
		return
	}

	horizontal := canSplitY && (!canSplitX || p.height >= p.width)

	size := p.width
	if horizontal {
		size = p.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi <= lo {
		return
	}
	at := lo + d.rng.Intn(hi-lo+1)

	if horizontal {
		p.left = &partition{x: p.x, y: p.y, width: p.width, height: at}
		p.right = &partition{x: p.x, y: p.y + at, width: p.width, height: p.height - at}
	} else {
		p.left = &partition{x: p.x, y: p.y, width: at, height: p.height}
		p.right = &partition{x: p.x + at, y: p.y, width: p.width - at, height: p.height}
	}

	d.split(p.left)
	d.split(p.right)
}

// carveRooms places one room in every leaf partition.
func (d *Dungeon) carveRooms(p *partition) {
	if p == nil {
		return
	}
	if !p.isLeaf() {
		d.carveRooms(p.left)
		d.carveRooms(p.right)
		return
	}

	w := min(maxRoomSize, p.width-2)
	h := min(maxRoomSize, p.height-2)
	if w < minRoomSize || h < minRoomSize {
		return
	}
	w = minRoomSize + d.rng.Intn(w-minRoomSize+1)
	h = minRoomSize + d.rng.Intn(h-minRoomSize+1)

	room := Room{
		X:      p.x + 1 + d.rng.Intn(p.width-w-1),
		Y:      p.y + 1 + d.rng.Intn(p.height-h-1),
		Width:  w,
		Height: h,
	}
	p.room = &room
	d.Rooms = append(d.Rooms, room)

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			d.carve(x, y)
		}
	}
}

// connect joins sibling subtrees with L-shaped corridors.
func (d *Dungeon) connect(p *partition) {
	if p == nil || p.isLeaf() {
		return
	}
	d.connect(p.left)
	d.connect(p.right)

	a, b := anyRoom(p.left), anyRoom(p.right)
	if a == nil || b == nil {
		return
	}

	x1, y1 := a.Center()
	x2, y2 := b.Center()
	if d.rng.Intn(2) == 0 {
		d.carveLine(x1, y1, x2, y1)
		d.carveLine(x2, y1, x2, y2)
	} else {
		d.carveLine(x1, y1, x1, y2)
		d.carveLine(x1, y2, x2, y2)
	}
}

// anyRoom returns the first room found in the subtree.
func anyRoom(p *partition) *Room {
	if p == nil {
		return nil
	}
	if p.room != nil {
		return p.room
	}
	if room := anyRoom(p.left); room != nil {
		return room
	}
	return anyRoom(p.right)
}

// carveLine carves a straight horizontal or vertical corridor, inclusive.
func (d *Dungeon) carveLine(x1, y1, x2, y2 int) {
	x1, x2 = min(x1, x2), max(x1, x2)
	y1, y2 = min(y1, y2), max(y1, y2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			d.carve(x, y)
		}
	}
}

// carve turns an interior tile into floor. The border stays wall.
func (d *Dungeon) carve(x, y int) {
	if x > 0 && x < d.Width-1 && y > 0 && y < d.Height-1 {
		d.Tiles[y][x] = TileFloor
	}
}
