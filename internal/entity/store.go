package entity

import (
	"fmt"
	"math"

	"chosenoffset.com/tombs/internal/world/grid"
)

// PlayerIndex is the store index the player always occupies
const PlayerIndex = 0

// Store is the ordered entity collection. Index 0 is the player. Removal
// swaps the last entity into the hole, so callers must re-resolve indices
// after any mutation instead of holding on to them.
type Store struct {
	Entities []*Entity
}

// NewStore creates a store holding only the player
func NewStore(player *Entity) *Store {
	return &Store{Entities: []*Entity{player}}
}

// Len returns the number of entities
func (s *Store) Len() int {
	return len(s.Entities)
}

// At returns the entity at index i
func (s *Store) At(i int) *Entity {
	return s.Entities[i]
}

// Player returns the player entity
func (s *Store) Player() *Entity {
	return s.Entities[PlayerIndex]
}

// Push appends an entity and returns its index
func (s *Store) Push(e *Entity) int {
	s.Entities = append(s.Entities, e)
	return len(s.Entities) - 1
}

// SwapRemove removes the entity at i by moving the last entity into its
// slot. Removing the player is an invariant violation.
func (s *Store) SwapRemove(i int) *Entity {
	if i == PlayerIndex {
		panic("entity: the player cannot be removed from the store")
	}
	removed := s.Entities[i]
	last := len(s.Entities) - 1
	s.Entities[i] = s.Entities[last]
	s.Entities[last] = nil
	s.Entities = s.Entities[:last]
	return removed
}

// Retain keeps the player and every other entity for which keep returns true
func (s *Store) Retain(keep func(e *Entity) bool) {
	kept := s.Entities[:1]
	for _, e := range s.Entities[1:] {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.Entities); i++ {
		s.Entities[i] = nil
	}
	s.Entities = kept
}

// MutTwo returns two distinct entities for a simultaneous mutation such as
// attacker and defender. Asking for the same index twice is a programming
// error and panics.
func (s *Store) MutTwo(first, second int) (*Entity, *Entity) {
	if first == second {
		panic(fmt.Sprintf("entity: MutTwo called with the same index %d twice", first))
	}
	return s.Entities[first], s.Entities[second]
}

// IndexOf returns the index of e, or -1
func (s *Store) IndexOf(e *Entity) int {
	for i, ent := range s.Entities {
		if ent == e {
			return i
		}
	}
	return -1
}

// BlockingAt returns the index of a blocking entity on (x, y), or -1
func (s *Store) BlockingAt(x, y int) int {
	for i, e := range s.Entities {
		if e.Blocks && e.At(x, y) {
			return i
		}
	}
	return -1
}

// FighterAt returns the index of an entity with a fighter on (x, y), or -1
func (s *Store) FighterAt(x, y int) int {
	for i, e := range s.Entities {
		if e.Fighter != nil && e.At(x, y) {
			return i
		}
	}
	return -1
}

// ItemAt returns the index of an item on (x, y), or -1
func (s *Store) ItemAt(x, y int) int {
	for i, e := range s.Entities {
		if i != PlayerIndex && e.IsItem() && e.At(x, y) {
			return i
		}
	}
	return -1
}

// IsBlocked reports whether (x, y) is a wall or holds a blocking entity
func (s *Store) IsBlocked(g *grid.Grid, x, y int) bool {
	if g.IsBlocked(x, y) {
		return true
	}
	return s.BlockingAt(x, y) >= 0
}

// MoveBy moves entity i by (dx, dy) if the destination is free. Illegal
// moves are silently ignored; the return value reports whether it moved.
func (s *Store) MoveBy(i, dx, dy int, g *grid.Grid) bool {
	e := s.Entities[i]
	nx, ny := e.X+dx, e.Y+dy
	if s.IsBlocked(g, nx, ny) {
		return false
	}
	e.SetPos(nx, ny)
	return true
}

// MoveTowards steps entity i one tile along the rounded unit vector to (tx, ty)
func (s *Store) MoveTowards(i, tx, ty int, g *grid.Grid) bool {
	e := s.Entities[i]
	dx := float64(tx - e.X)
	dy := float64(ty - e.Y)
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance == 0 {
		return false
	}
	stepX := int(math.Round(dx / distance))
	stepY := int(math.Round(dy / distance))
	return s.MoveBy(i, stepX, stepY, g)
}
