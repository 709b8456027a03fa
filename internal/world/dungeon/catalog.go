package dungeon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"unicode/utf8"

	"chosenoffset.com/tombs/internal/entity"
)

//go:embed catalog.json
var defaultCatalogJSON []byte

// MonsterDefinition defines a monster type that can be spawned
type MonsterDefinition struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Glyph   string   `json:"glyph"`
	Color   [3]uint8 `json:"color"`
	HP      int      `json:"hp"`
	Defense int      `json:"defense"`
	Power   int      `json:"power"`
	XP      int      `json:"xp"`     // Awarded to the player on death
	Weight  Table    `json:"weight"` // Spawn weight by depth
}

// EquipmentDefinition describes the wearable part of an item
type EquipmentDefinition struct {
	Slot         string `json:"slot"`
	PowerBonus   int    `json:"power_bonus,omitempty"`
	DefenseBonus int    `json:"defense_bonus,omitempty"`
	MaxHPBonus   int    `json:"max_hp_bonus,omitempty"`
}

// ItemDefinition defines an item type that can be spawned
type ItemDefinition struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Glyph     string               `json:"glyph"`
	Color     [3]uint8             `json:"color"`
	Kind      string               `json:"kind"`
	Weight    Table                `json:"weight"`
	Equipment *EquipmentDefinition `json:"equipment,omitempty"`
}

// Catalog contains everything the generator can place
type Catalog struct {
	Name            string              `json:"name"`
	MaxRoomMonsters Table               `json:"max_room_monsters"`
	MaxRoomItems    Table               `json:"max_room_items"`
	Monsters        []MonsterDefinition `json:"monsters"`
	Items           []ItemDefinition    `json:"items"`

	// Lookup maps
	monstersByID map[string]*MonsterDefinition
	itemsByID    map[string]*ItemDefinition
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	cat, err := ParseCatalog(defaultCatalogJSON)
	if err != nil {
		panic(fmt.Sprintf("dungeon: embedded catalog is invalid: %v", err))
	}
	return cat
}

// LoadCatalog loads a catalog from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := cat.build(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) build() error {
	if len(c.Monsters) == 0 {
		return fmt.Errorf("catalog %q has no monsters", c.Name)
	}
	c.MaxRoomMonsters = c.MaxRoomMonsters.sorted()
	c.MaxRoomItems = c.MaxRoomItems.sorted()

	c.monstersByID = make(map[string]*MonsterDefinition)
	for i := range c.Monsters {
		def := &c.Monsters[i]
		if def.HP <= 0 {
			return fmt.Errorf("monster %s: hp must be positive", def.ID)
		}
		if utf8.RuneCountInString(def.Glyph) != 1 {
			return fmt.Errorf("monster %s: glyph must be one character", def.ID)
		}
		def.Weight = def.Weight.sorted()
		c.monstersByID[def.ID] = def
	}

	c.itemsByID = make(map[string]*ItemDefinition)
	for i := range c.Items {
		def := &c.Items[i]
		if _, ok := entity.ParseItemKind(def.Kind); !ok {
			return fmt.Errorf("item %s: unknown kind %q", def.ID, def.Kind)
		}
		if utf8.RuneCountInString(def.Glyph) != 1 {
			return fmt.Errorf("item %s: glyph must be one character", def.ID)
		}
		if def.Equipment != nil {
			if _, err := parseSlot(def.Equipment.Slot); err != nil {
				return fmt.Errorf("item %s: %w", def.ID, err)
			}
		}
		def.Weight = def.Weight.sorted()
		c.itemsByID[def.ID] = def
	}
	return nil
}

// Monster returns a monster definition by ID
func (c *Catalog) Monster(id string) *MonsterDefinition {
	return c.monstersByID[id]
}

// Item returns an item definition by ID
func (c *Catalog) Item(id string) *ItemDefinition {
	return c.itemsByID[id]
}

// MonsterWeights returns the spawn weight of each monster at depth
func (c *Catalog) MonsterWeights(depth int) []int {
	weights := make([]int, len(c.Monsters))
	for i := range c.Monsters {
		weights[i] = c.Monsters[i].Weight.At(depth)
	}
	return weights
}

// ItemWeights returns the spawn weight of each item at depth
func (c *Catalog) ItemWeights(depth int) []int {
	weights := make([]int, len(c.Items))
	for i := range c.Items {
		weights[i] = c.Items[i].Weight.At(depth)
	}
	return weights
}

func parseSlot(name string) (entity.Slot, error) {
	for _, s := range []entity.Slot{entity.SlotHead, entity.SlotLeftHand, entity.SlotRightHand} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown equipment slot %q", name)
}

func rgb(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Spawn creates a monster instance from a definition
func (def *MonsterDefinition) Spawn(x, y int) *entity.Entity {
	m := entity.New(x, y, firstRune(def.Glyph), def.Name, rgb(def.Color), true)
	m.Alive = true
	m.Fighter = &entity.Fighter{
		HP:          def.HP,
		BaseMaxHP:   def.HP,
		BaseDefense: def.Defense,
		BasePower:   def.Power,
		XP:          def.XP,
		OnDeath:     entity.DeathMonster,
	}
	m.AI = entity.BasicAI()
	return m
}

// Spawn creates an item instance from a definition
func (def *ItemDefinition) Spawn(x, y int) *entity.Entity {
	item := entity.New(x, y, firstRune(def.Glyph), def.Name, rgb(def.Color), false)
	item.Item, _ = entity.ParseItemKind(def.Kind)
	item.AlwaysVisible = true
	if def.Equipment != nil {
		slot, _ := parseSlot(def.Equipment.Slot)
		item.Equipment = &entity.Equipment{
			Slot:         slot,
			PowerBonus:   def.Equipment.PowerBonus,
			DefenseBonus: def.Equipment.DefenseBonus,
			MaxHPBonus:   def.Equipment.MaxHPBonus,
		}
	}
	return item
}
