// Package combat resolves everything that changes a fighter: attacks and
// death, experience and leveling, equipment bonuses and item effects.
// All results are reported through the message log.
package combat

import (
	"errors"

	"chosenoffset.com/tombs/internal/core/msglog"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/entity/inventory"
	"chosenoffset.com/tombs/internal/simulation"
	"chosenoffset.com/tombs/internal/world/grid"
)

// User-facing refusals. The action that returns one did not happen and
// did not cost a turn.
var (
	ErrInventoryFull = errors.New("inventory is full")
	ErrNotEquipment  = errors.New("item is not equipment")
	ErrNoTarget      = errors.New("no valid target")
	ErrFullHealth    = errors.New("already at full health")
	ErrCancelled     = errors.New("cancelled")
	ErrNothingHere   = errors.New("nothing here to pick up")
	ErrNotEligible   = errors.New("not enough experience to level up")
)

// Visibility answers whether a tile is currently seen by the player
type Visibility interface {
	IsVisible(x, y int) bool
}

// Targeter asks the player for a tile. A maxRange of zero or less means
// unlimited. ok is false when the player cancels.
type Targeter interface {
	TargetTile(maxRange float64, vis Visibility) (x, y int, ok bool)
}

// TargeterFunc adapts a function to Targeter
type TargeterFunc func(maxRange float64, vis Visibility) (int, int, bool)

// TargetTile calls f
func (f TargeterFunc) TargetTile(maxRange float64, vis Visibility) (int, int, bool) {
	return f(maxRange, vis)
}

// Scene is the mutable state an action works on
type Scene struct {
	Grid      *grid.Grid
	Store     *entity.Store
	Inventory *inventory.Inventory
	Log       *msglog.Log
}

// Engine applies the rule set to a scene
type Engine struct {
	rules *simulation.Config
}

// NewEngine creates an engine. A nil rule set uses the defaults.
func NewEngine(rules *simulation.Config) *Engine {
	if rules == nil {
		rules = simulation.DefaultConfig()
	}
	return &Engine{rules: rules}
}

// Rules returns the rule set in use
func (e *Engine) Rules() *simulation.Config {
	return e.rules
}
