package ui

import (
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/entity/turn"
	"chosenoffset.com/tombs/internal/render"
)

// Screen layout in console cells
const (
	ScreenWidth  = 80
	ScreenHeight = 50

	BarWidth    = 20
	PanelHeight = 7
	PanelY      = ScreenHeight - PanelHeight
	MsgX        = BarWidth + 2
	MsgWidth    = ScreenWidth - BarWidth - 2
	MsgHeight   = PanelHeight - 1

	InventoryWidth = 50
	LevelUpWidth   = 40
	InfoWidth      = 40
	NoticeWidth    = 26
	MainMenuWidth  = 24
)

// Arrow keys and the vi keys move; the diagonals are yubn.
var (
	keyDirections = map[render.Key]entity.Direction{
		render.KeyUp:    entity.DirNorth,
		render.KeyDown:  entity.DirSouth,
		render.KeyLeft:  entity.DirWest,
		render.KeyRight: entity.DirEast,
	}
	runeDirections = map[rune]entity.Direction{
		'k': entity.DirNorth,
		'j': entity.DirSouth,
		'h': entity.DirWest,
		'l': entity.DirEast,
		'y': entity.DirNorthWest,
		'u': entity.DirNorthEast,
		'b': entity.DirSouthWest,
		'n': entity.DirSouthEast,
	}
)

// direction returns the movement delta bound to a key press
func direction(ev render.KeyEvent) (dx, dy int, ok bool) {
	var d entity.Direction
	if ev.Rune != 0 {
		d, ok = runeDirections[ev.Rune]
	} else {
		d, ok = keyDirections[ev.Key]
	}
	if !ok {
		return 0, 0, false
	}
	dx, dy = d.Delta()
	return dx, dy, true
}

// command is what a key press does while playing: either an intent for the
// turn manager or a screen to open
type command struct {
	intent turn.Intent
	open   State
}

var runeCommands = map[rune]command{
	'.': {intent: turn.Simple(turn.IntentWait)},
	'5': {intent: turn.Simple(turn.IntentWait)},
	'g': {intent: turn.Simple(turn.IntentPickUp)},
	',': {intent: turn.Simple(turn.IntentPickUp)},
	'<': {intent: turn.Simple(turn.IntentDescend)},
	'c': {intent: turn.Simple(turn.IntentShowInfo)},
	'i': {open: StateInventory},
	'd': {open: StateDrop},
}

// commandFor maps a key press during play to a command
func commandFor(ev render.KeyEvent) (command, bool) {
	if dx, dy, ok := direction(ev); ok {
		return command{intent: turn.Move(dx, dy)}, true
	}
	if ev.Rune == 0 {
		return command{}, false
	}
	cmd, ok := runeCommands[ev.Rune]
	return cmd, ok
}
