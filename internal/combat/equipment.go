package combat

import (
	"fmt"

	"chosenoffset.com/tombs/internal/core/palette"
)

// Equip wears the inventory item at index i. Whatever occupied the slot is
// taken off first. Equipping a worn item does nothing.
func (e *Engine) Equip(s *Scene, i int) error {
	item := s.Inventory.At(i)
	if !item.IsEquipment() {
		return ErrNotEquipment
	}
	if item.Equipment.Equipped {
		return nil
	}

	if worn := s.Inventory.EquippedIn(item.Equipment.Slot); worn >= 0 {
		if err := e.Dequip(s, worn); err != nil {
			return err
		}
	}

	item.Equipment.Equipped = true
	s.Log.Add(fmt.Sprintf("Equipped %s on %s.", item.Name, item.Equipment.Slot), palette.LightGreen)
	return nil
}

// Dequip takes off the inventory item at index i. Taking off an item that
// is not worn does nothing.
func (e *Engine) Dequip(s *Scene, i int) error {
	item := s.Inventory.At(i)
	if !item.IsEquipment() {
		return ErrNotEquipment
	}
	if !item.Equipment.Equipped {
		return nil
	}

	item.Equipment.Equipped = false
	s.Log.Add(fmt.Sprintf("Dequipped %s from %s.", item.Name, item.Equipment.Slot), palette.LightYellow)
	return nil
}

// ToggleEquipment equips or dequips the inventory item at index i
func (e *Engine) ToggleEquipment(s *Scene, i int) error {
	item := s.Inventory.At(i)
	if !item.IsEquipment() {
		return ErrNotEquipment
	}
	if item.Equipment.Equipped {
		return e.Dequip(s, i)
	}
	return e.Equip(s, i)
}
