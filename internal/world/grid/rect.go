package grid

// Rect is an axis-aligned room rectangle. X2/Y2 are exclusive of the
// interior but part of the wall border.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rect from a corner and a size
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center tile of the rect
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether two rects overlap, borders included
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// ContainsInterior reports whether (x, y) is inside the carved area
func (r Rect) ContainsInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
