package fov

import (
	"math"

	"chosenoffset.com/tombs/internal/world/grid"
)

// perimeter returns the tiles on the border of the square of half-size r
// around (x, y), the targets rays are cast toward
func perimeter(x, y, r int) []grid.Point {
	points := make([]grid.Point, 0, 8*r)
	for dx := -r; dx <= r; dx++ {
		points = append(points, grid.Point{X: x + dx, Y: y - r}, grid.Point{X: x + dx, Y: y + r})
	}
	for dy := -r + 1; dy < r; dy++ {
		points = append(points, grid.Point{X: x - r, Y: y + dy}, grid.Point{X: x + r, Y: y + dy})
	}
	return points
}

// castRay walks from the origin toward target one tile per step and marks
// every tile it reaches until it leaves the radius or hits an opaque tile
func (m *Map) castRay(g *grid.Grid, target grid.Point) {
	ox, oy := m.origin.X, m.origin.Y
	dx := target.X - ox
	dy := target.Y - oy
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return
	}

	limit := float64(m.Radius * m.Radius)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := ox + int(math.Round(float64(dx)*t))
		cy := oy + int(math.Round(float64(dy)*t))

		if !g.InBounds(cx, cy) {
			return
		}
		if m.Radius > 0 {
			ddx, ddy := float64(cx-ox), float64(cy-oy)
			if ddx*ddx+ddy*ddy > limit {
				return
			}
		}

		if g.BlocksSight(cx, cy) {
			if m.LightWalls {
				m.visible.Put(grid.Point{X: cx, Y: cy})
			}
			return
		}
		m.visible.Put(grid.Point{X: cx, Y: cy})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
