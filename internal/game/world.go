package game

import (
	"chosenoffset.com/tombs/internal/combat"
	"chosenoffset.com/tombs/internal/core/msglog"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/entity/inventory"
	"chosenoffset.com/tombs/internal/world/grid"
)

// World is everything a saved game needs: the current level, the message
// log, every entity on the level, the player's pack and the depth.
type World struct {
	Grid      *grid.Grid
	Log       *msglog.Log
	Store     *entity.Store
	Inventory *inventory.Inventory
	Depth     int
}

// Scene returns a view of the world the rules engine can act on. The view
// shares every pointer with the world.
func (w *World) Scene() *combat.Scene {
	return &combat.Scene{
		Grid:      w.Grid,
		Store:     w.Store,
		Inventory: w.Inventory,
		Log:       w.Log,
	}
}

// Player returns the player entity
func (w *World) Player() *entity.Entity {
	return w.Store.Player()
}
