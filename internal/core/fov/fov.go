// Package fov computes which tiles the player can currently see. The
// visible set is recomputed only when the viewer moves or the map changes.
package fov

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/tombs/internal/world/grid"
)

// Map is the field of view from one viewer position
type Map struct {
	Radius     int  // 0 = unlimited
	LightWalls bool // Opaque tiles at the edge of sight are visible too

	visible mapset.Set[grid.Point]
	origin  grid.Point
	dirty   bool
}

// New creates an empty field of view
func New(radius int, lightWalls bool) *Map {
	return &Map{
		Radius:     radius,
		LightWalls: lightWalls,
		visible:    mapset.New[grid.Point](),
		dirty:      true,
	}
}

// Invalidate forces the next Update to recompute, e.g. after a new level
func (m *Map) Invalidate() {
	m.dirty = true
}

// Update recomputes the visible set if the viewer moved since the last
// call, marks every visible tile explored and reports whether it
// recomputed
func (m *Map) Update(g *grid.Grid, x, y int) bool {
	if !m.dirty && m.origin.X == x && m.origin.Y == y {
		return false
	}
	m.Compute(g, x, y)
	m.Explore(g)
	return true
}

// Compute casts rays from (x, y) to every tile on the border of the view
// square and records the tiles they pass before hitting something opaque
func (m *Map) Compute(g *grid.Grid, x, y int) {
	m.visible = mapset.New[grid.Point]()
	m.origin = grid.Point{X: x, Y: y}
	m.dirty = false

	if !g.InBounds(x, y) {
		return
	}
	m.visible.Put(m.origin)

	r := m.Radius
	if r <= 0 {
		r = max(g.Width, g.Height)
	}
	for _, target := range perimeter(x, y, r) {
		m.castRay(g, target)
	}
}

// IsVisible reports whether (x, y) was seen by the last computation
func (m *Map) IsVisible(x, y int) bool {
	return m.visible.Has(grid.Point{X: x, Y: y})
}

// Count returns the number of visible tiles
func (m *Map) Count() int {
	return m.visible.Size()
}

// Explore marks every visible tile explored on g
func (m *Map) Explore(g *grid.Grid) {
	m.visible.Each(func(p grid.Point) {
		g.Explore(p.X, p.Y)
	})
}
