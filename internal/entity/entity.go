// Package entity provides the objects that live on the dungeon grid: the
// player, monsters, items and fixtures. An entity is a bag of optional
// components; its identity is its index in a Store.
package entity

import (
	"image/color"
	"math"
)

// DeathCallback selects what happens when a fighter dies
type DeathCallback int

const (
	DeathNone DeathCallback = iota
	DeathPlayer
	DeathMonster
)

// Fighter grants hit points, base stats and a death transition
type Fighter struct {
	HP          int
	BaseMaxHP   int
	BaseDefense int
	BasePower   int
	XP          int // Experience banked (player) or awarded on death (monsters)
	OnDeath     DeathCallback
}

// ItemKind identifies what using an item does
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemHeal
	ItemLightning
	ItemConfuse
	ItemFireball
	ItemSword
	ItemShield
	ItemDagger
)

var itemKindNames = map[ItemKind]string{
	ItemNone:      "none",
	ItemHeal:      "heal",
	ItemLightning: "lightning",
	ItemConfuse:   "confuse",
	ItemFireball:  "fireball",
	ItemSword:     "sword",
	ItemShield:    "shield",
	ItemDagger:    "dagger",
}

func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseItemKind maps a catalog name to an ItemKind
func ParseItemKind(name string) (ItemKind, bool) {
	for k, n := range itemKindNames {
		if n == name && k != ItemNone {
			return k, true
		}
	}
	return ItemNone, false
}

// Slot is where a piece of equipment is worn
type Slot int

const (
	SlotHead Slot = iota
	SlotLeftHand
	SlotRightHand
)

func (s Slot) String() string {
	switch s {
	case SlotHead:
		return "head"
	case SlotLeftHand:
		return "left hand"
	case SlotRightHand:
		return "right hand"
	default:
		return "unknown"
	}
}

// Equipment is an item that can be worn for passive bonuses
type Equipment struct {
	Slot         Slot
	PowerBonus   int
	DefenseBonus int
	MaxHPBonus   int
	Equipped     bool
}

// Entity represents anything in the game world
type Entity struct {
	// Position (grid coordinates)
	X, Y int

	// Visual, carried for the frontends
	Glyph rune
	Name  string
	Color color.RGBA

	Blocks        bool // Occupies its tile exclusively
	Alive         bool
	AlwaysVisible bool // Drawn on explored tiles even outside the FOV

	Fighter   *Fighter
	AI        *AI
	Item      ItemKind
	Equipment *Equipment

	Level int // Player progression; stays 1 for everyone else
}

// New creates a basic entity
func New(x, y int, glyph rune, name string, clr color.RGBA, blocks bool) *Entity {
	return &Entity{
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Name:   name,
		Color:  clr,
		Blocks: blocks,
		Level:  1,
	}
}

// Pos returns the entity's position
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity without any legality check
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// At reports whether the entity stands on (x, y)
func (e *Entity) At(x, y int) bool {
	return e.X == x && e.Y == y
}

// Distance returns the Euclidean distance to a tile
func (e *Entity) Distance(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance to another entity
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Distance(other.X, other.Y)
}

// IsItem reports whether the entity can be picked up
func (e *Entity) IsItem() bool {
	return e.Item != ItemNone
}

// IsEquipment reports whether the entity can be worn
func (e *Entity) IsEquipment() bool {
	return e.Item != ItemNone && e.Equipment != nil
}

// IsEquipped reports whether the entity is currently worn
func (e *Entity) IsEquipped() bool {
	return e.Equipment != nil && e.Equipment.Equipped
}
