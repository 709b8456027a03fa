// Package grid provides the fixed-size tile map the dungeon is carved into.
// Tiles are addressed column-major as [x][y].
package grid

import (
	"github.com/zyedidia/generic/mapset"
)

// Default map dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Tile is a single map cell
type Tile struct {
	Blocked     bool // Blocks movement
	BlocksSight bool // Blocks field of view
	Explored    bool // Has been seen at least once (one-way)
}

// Wall returns a blocked, opaque tile
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}

// Floor returns an open tile
func Floor() Tile {
	return Tile{}
}

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Grid is a fixed-dimension 2D array of tiles
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile // [x][y]
}

// New creates a grid of the given size filled with walls
func New(width, height int) *Grid {
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Wall()
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the map
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns the tile at (x, y). Out of bounds reads as a wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall()
	}
	return g.Tiles[x][y]
}

// IsBlocked reports whether the tile blocks movement
func (g *Grid) IsBlocked(x, y int) bool {
	return g.At(x, y).Blocked
}

// BlocksSight reports whether the tile blocks field of view
func (g *Grid) BlocksSight(x, y int) bool {
	return g.At(x, y).BlocksSight
}

// Carve turns the tile at (x, y) into floor. Exploration is kept.
func (g *Grid) Carve(x, y int) {
	if g.InBounds(x, y) {
		t := &g.Tiles[x][y]
		t.Blocked = false
		t.BlocksSight = false
	}
}

// Explore marks a tile as explored. There is no way to unset it.
func (g *Grid) Explore(x, y int) {
	if g.InBounds(x, y) {
		g.Tiles[x][y].Explored = true
	}
}

// IsExplored reports whether the tile has ever been seen
func (g *Grid) IsExplored(x, y int) bool {
	return g.At(x, y).Explored
}

// Reachable flood fills from start over unblocked tiles (4-neighbour BFS)
// and returns every tile reached
func (g *Grid) Reachable(start Point) mapset.Set[Point] {
	reached := mapset.New[Point]()
	if g.IsBlocked(start.X, start.Y) {
		return reached
	}

	dirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	queue := []Point{start}
	reached.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			next := Point{current.X + d.X, current.Y + d.Y}
			if reached.Has(next) || g.IsBlocked(next.X, next.Y) {
				continue
			}
			reached.Put(next)
			queue = append(queue, next)
		}
	}

	return reached
}

// OpenTiles returns the number of unblocked tiles
func (g *Grid) OpenTiles() int {
	n := 0
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if !g.Tiles[x][y].Blocked {
				n++
			}
		}
	}
	return n
}
