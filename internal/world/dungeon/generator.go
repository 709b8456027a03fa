// Package dungeon carves new levels: rooms joined by L shaped corridors,
// populated with monsters and items drawn from a depth-weighted catalog.
package dungeon

import (
	"chosenoffset.com/tombs/internal/core/dice"
	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/simulation"
	"chosenoffset.com/tombs/internal/world/grid"
)

// StairsName is the name the stairs entity is looked up by
const StairsName = "stairs"

// StairsGlyph is how the stairs are drawn
const StairsGlyph = '<'

// Generator builds levels from a rule set and a catalog
type Generator struct {
	rules   simulation.MapConfig
	catalog *Catalog
	dice    *dice.Roller
}

// NewGenerator creates a generator. A nil catalog uses the built-in one.
func NewGenerator(rules simulation.MapConfig, catalog *Catalog, roller *dice.Roller) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Generator{
		rules:   rules,
		catalog: catalog,
		dice:    roller,
	}
}

// Catalog returns the catalog the generator spawns from
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Generate builds the level for depth. Every entity except the player is
// removed from the store first; the player is moved to the first room.
// The accepted rooms are returned in carving order.
func (g *Generator) Generate(store *entity.Store, depth int) (*grid.Grid, []grid.Rect) {
	m := grid.New(g.rules.Width, g.rules.Height)
	store.Retain(func(*entity.Entity) bool { return false })

	var rooms []grid.Rect
	for attempt := 0; attempt < g.rules.MaxRooms; attempt++ {
		w := g.dice.Between(g.rules.RoomMinSize, g.rules.RoomMaxSize)
		h := g.dice.Between(g.rules.RoomMinSize, g.rules.RoomMaxSize)
		x := g.dice.Range(0, m.Width-w)
		y := g.dice.Range(0, m.Height-h)
		room := grid.NewRect(x, y, w, h)

		if overlapsAny(room, rooms) {
			continue
		}
		carveRoom(m, room)

		cx, cy := room.Center()
		if len(rooms) == 0 {
			store.Player().SetPos(cx, cy)
		} else {
			px, py := rooms[len(rooms)-1].Center()
			if g.dice.Coin() {
				carveHTunnel(m, px, cx, py)
				carveVTunnel(m, py, cy, cx)
			} else {
				carveVTunnel(m, py, cy, px)
				carveHTunnel(m, px, cx, cy)
			}
		}

		g.placeObjects(m, store, room, depth)
		rooms = append(rooms, room)
	}

	if len(rooms) > 0 {
		sx, sy := rooms[len(rooms)-1].Center()
		store.Push(NewStairs(sx, sy))
	}

	return m, rooms
}

// NewStairs creates the stairs entity
func NewStairs(x, y int) *entity.Entity {
	stairs := entity.New(x, y, StairsGlyph, StairsName, palette.White, false)
	stairs.AlwaysVisible = true
	return stairs
}

func overlapsAny(room grid.Rect, rooms []grid.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func carveRoom(m *grid.Grid, room grid.Rect) {
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			m.Carve(x, y)
		}
	}
}

func carveHTunnel(m *grid.Grid, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.Carve(x, y)
	}
}

func carveVTunnel(m *grid.Grid, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.Carve(x, y)
	}
}

// --- Population ---

func (g *Generator) placeObjects(m *grid.Grid, store *entity.Store, room grid.Rect, depth int) {
	maxMonsters := g.catalog.MaxRoomMonsters.At(depth)
	numMonsters := g.dice.Between(0, maxMonsters)
	monsterWeights := g.catalog.MonsterWeights(depth)

	for i := 0; i < numMonsters; i++ {
		x, y := g.randomInterior(room)
		if store.IsBlocked(m, x, y) {
			continue
		}
		pick, err := g.dice.Weighted(monsterWeights)
		if err != nil {
			break
		}
		store.Push(g.catalog.Monsters[pick].Spawn(x, y))
	}

	maxItems := g.catalog.MaxRoomItems.At(depth)
	numItems := g.dice.Between(0, maxItems)
	itemWeights := g.catalog.ItemWeights(depth)

	for i := 0; i < numItems; i++ {
		x, y := g.randomInterior(room)
		if store.IsBlocked(m, x, y) {
			continue
		}
		pick, err := g.dice.Weighted(itemWeights)
		if err != nil {
			break
		}
		store.Push(g.catalog.Items[pick].Spawn(x, y))
	}
}

func (g *Generator) randomInterior(room grid.Rect) (int, int) {
	x := g.dice.Range(room.X1+1, room.X2)
	y := g.dice.Range(room.Y1+1, room.Y2)
	return x, y
}
