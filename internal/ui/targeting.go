package ui

import (
	"chosenoffset.com/tombs/internal/combat"
	"chosenoffset.com/tombs/internal/render"
	"chosenoffset.com/tombs/internal/world/grid"
)

// Targeting is the tile cursor shown while an item waits for a target
type Targeting struct {
	Index    int     // Inventory slot being used
	MaxRange float64 // 0 = unlimited
	X, Y     int
}

// Move shifts the cursor, keeping it on the map
func (t *Targeting) Move(dx, dy int, g *grid.Grid) {
	if g.InBounds(t.X+dx, t.Y+dy) {
		t.X += dx
		t.Y += dy
	}
}

// Valid reports whether the cursor is on a visible tile within range
func (t *Targeting) Valid(s *combat.Scene, vis combat.Visibility) bool {
	return s.Grid.InBounds(t.X, t.Y) && combat.InRange(s, vis, t.X, t.Y, t.MaxRange)
}

// Handle processes one key press. It reports whether the player confirmed
// a valid tile or cancelled.
func (t *Targeting) Handle(ev render.KeyEvent, s *combat.Scene, vis combat.Visibility) (confirmed, cancelled bool) {
	if ev.Key == render.KeyEscape {
		return false, true
	}
	if ev.Key == render.KeyEnter || ev.Rune == '.' {
		return t.Valid(s, vis), false
	}
	if dx, dy, ok := direction(ev); ok {
		t.Move(dx, dy, s.Grid)
	}
	return false, false
}

// Click moves the cursor to a clicked cell and reports whether it is a
// valid target
func (t *Targeting) Click(x, y int, s *combat.Scene, vis combat.Visibility) bool {
	if !s.Grid.InBounds(x, y) {
		return false
	}
	t.X, t.Y = x, y
	return t.Valid(s, vis)
}

// targetAt is a Targeter that always answers with a chosen tile
func targetAt(x, y int) combat.Targeter {
	return combat.TargeterFunc(func(float64, combat.Visibility) (int, int, bool) {
		return x, y, true
	})
}
