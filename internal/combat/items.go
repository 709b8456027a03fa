package combat

import (
	"fmt"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
)

// Outcome is what using an item did to it
type Outcome int

const (
	UsedUp    Outcome = iota // Consumed and removed from the inventory
	Cancelled                // Nothing happened
	Kept                     // Took effect but stays (equipment toggle)
)

func (o Outcome) String() string {
	switch o {
	case UsedUp:
		return "used up"
	case Cancelled:
		return "cancelled"
	case Kept:
		return "kept"
	default:
		return "unknown"
	}
}

// --- Pickup and drop ---

// PickUp picks up the first item under the player
func (e *Engine) PickUp(s *Scene) error {
	px, py := s.Store.Player().Pos()
	id := s.Store.ItemAt(px, py)
	if id < 0 {
		s.Log.Add("There is nothing here to pick up.", palette.White)
		return ErrNothingHere
	}
	return e.PickUpIndex(s, id)
}

// PickUpIndex moves the store entity at id into the inventory. Equipment
// is worn straight away when its slot is free.
func (e *Engine) PickUpIndex(s *Scene, id int) error {
	item := s.Store.At(id)
	if s.Inventory.IsFull() {
		s.Log.Add(fmt.Sprintf("Your inventory is full, cannot pick up %s.", item.Name), palette.Red)
		return ErrInventoryFull
	}

	s.Store.SwapRemove(id)
	s.Inventory.Add(item)
	s.Log.Add(fmt.Sprintf("You picked up a %s!", item.Name), palette.Green)

	if item.IsEquipment() && s.Inventory.EquippedIn(item.Equipment.Slot) < 0 {
		return e.Equip(s, s.Inventory.Len()-1)
	}
	return nil
}

// Drop takes off and puts down the inventory item at index i on the
// player's tile
func (e *Engine) Drop(s *Scene, i int) error {
	item := s.Inventory.At(i)
	if item.IsEquipped() {
		if err := e.Dequip(s, i); err != nil {
			return err
		}
	}

	s.Inventory.Remove(i)
	item.SetPos(s.Store.Player().Pos())
	s.Store.Push(item)
	s.Log.Add(fmt.Sprintf("You dropped a %s.", item.Name), palette.Yellow)
	return nil
}

// --- Item use ---

// UseItem applies the inventory item at index i. Consumables are removed
// when used up; equipment is toggled and kept. A Cancelled outcome comes
// with the reason as the error.
func (e *Engine) UseItem(s *Scene, i int, vis Visibility, targeter Targeter) (Outcome, error) {
	item := s.Inventory.At(i)

	var err error
	switch item.Item {
	case entity.ItemHeal:
		err = e.castHeal(s)
	case entity.ItemLightning:
		err = e.castLightning(s, vis)
	case entity.ItemConfuse:
		err = e.castConfuse(s, vis, targeter)
	case entity.ItemFireball:
		err = e.castFireball(s, vis, targeter)
	case entity.ItemSword, entity.ItemShield, entity.ItemDagger:
		if err := e.ToggleEquipment(s, i); err != nil {
			s.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), palette.White)
			return Cancelled, err
		}
		return Kept, nil
	default:
		s.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), palette.White)
		return Cancelled, ErrNotEquipment
	}

	if err != nil {
		s.Log.Add("Cancelled", palette.White)
		return Cancelled, err
	}
	s.Inventory.Remove(i)
	return UsedUp, nil
}

// NeedsTarget reports whether using an item of kind asks the targeter for
// a tile, and the range that tile must lie within (0 = unlimited)
func (e *Engine) NeedsTarget(kind entity.ItemKind) (maxRange float64, ok bool) {
	switch kind {
	case entity.ItemConfuse:
		return e.rules.Items.ConfuseRange, true
	case entity.ItemFireball:
		return 0, true
	default:
		return 0, false
	}
}

func (e *Engine) castHeal(s *Scene) error {
	player := s.Store.Player()
	if player.Fighter == nil {
		return ErrNoTarget
	}
	if player.Fighter.HP >= s.MaxHP(player) {
		s.Log.Add("You are already at full health.", palette.Red)
		return ErrFullHealth
	}
	s.Log.Add("Your wounds start to feel better!", palette.LightViolet)
	s.Heal(player, e.rules.Items.HealAmount)
	return nil
}

func (e *Engine) castLightning(s *Scene, vis Visibility) error {
	rules := e.rules.Items
	id := ClosestMonster(s, vis, rules.LightningRange)
	if id < 0 {
		s.Log.Add("No enemy is close enough to strike.", palette.Red)
		return ErrNoTarget
	}

	monster := s.Store.At(id)
	s.Log.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
		monster.Name, rules.LightningDamage), palette.LightBlue)
	if xp, died := e.TakeDamage(s, monster, rules.LightningDamage); died {
		s.Store.Player().Fighter.XP += xp
	}
	return nil
}

func (e *Engine) castConfuse(s *Scene, vis Visibility, targeter Targeter) error {
	rules := e.rules.Items
	s.Log.Add("Choose an enemy to confuse, or cancel.", palette.LightCyan)

	id := targetMonster(s, vis, targeter, rules.ConfuseRange)
	if id < 0 {
		s.Log.Add("No enemy is close enough to strike.", palette.Red)
		return ErrNoTarget
	}

	monster := s.Store.At(id)
	monster.AI = entity.ConfusedAI(monster.AI, rules.ConfuseTurns)
	s.Log.Add(fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", monster.Name), palette.LightGreen)
	return nil
}

func (e *Engine) castFireball(s *Scene, vis Visibility, targeter Targeter) error {
	rules := e.rules.Items
	s.Log.Add("Choose a target tile for the fireball, or cancel.", palette.LightCyan)

	if targeter == nil {
		return ErrCancelled
	}
	x, y, ok := targeter.TargetTile(0, vis)
	if !ok {
		return ErrCancelled
	}

	s.Log.Add(fmt.Sprintf("The fireball explodes, burning everything within %g tiles!", rules.FireballRadius), palette.Orange)

	xpGained := 0
	for id := 0; id < s.Store.Len(); id++ {
		target := s.Store.At(id)
		if target.Fighter == nil || target.Distance(x, y) > rules.FireballRadius {
			continue
		}
		s.Log.Add(fmt.Sprintf("The %s gets burned for %d hit points.", target.Name, rules.FireballDamage), palette.Orange)
		if xp, died := e.TakeDamage(s, target, rules.FireballDamage); died && id != entity.PlayerIndex {
			xpGained += xp
		}
	}
	if player := s.Store.Player(); player.Fighter != nil {
		player.Fighter.XP += xpGained
	}
	return nil
}

// --- Targeting ---

// ClosestMonster returns the index of the nearest visible monster within
// maxRange of the player, or -1
func ClosestMonster(s *Scene, vis Visibility, maxRange float64) int {
	player := s.Store.Player()
	closest := -1
	// Anything closer than maxRange+1 counts as in range
	closestDist := maxRange + 1

	for id := 1; id < s.Store.Len(); id++ {
		m := s.Store.At(id)
		if m.Fighter == nil || m.AI == nil {
			continue
		}
		if vis != nil && !vis.IsVisible(m.X, m.Y) {
			continue
		}
		if dist := player.DistanceTo(m); dist < closestDist {
			closest = id
			closestDist = dist
		}
	}
	return closest
}

// targetMonster asks the targeter for a tile and returns the visible
// fighter on it within maxRange, excluding the player, or -1
func targetMonster(s *Scene, vis Visibility, targeter Targeter, maxRange float64) int {
	if targeter == nil {
		return -1
	}
	x, y, ok := targeter.TargetTile(maxRange, vis)
	if !ok {
		return -1
	}
	if !InRange(s, vis, x, y, maxRange) {
		return -1
	}
	for id := 1; id < s.Store.Len(); id++ {
		if m := s.Store.At(id); m.Fighter != nil && m.At(x, y) {
			return id
		}
	}
	return -1
}

// InRange reports whether (x, y) is visible and within maxRange of the
// player. A maxRange of zero or less means unlimited.
func InRange(s *Scene, vis Visibility, x, y int, maxRange float64) bool {
	if vis != nil && !vis.IsVisible(x, y) {
		return false
	}
	if maxRange <= 0 {
		return true
	}
	return s.Store.Player().Distance(x, y) <= maxRange
}
