// Package inventory provides the player's bounded item list. Items keep
// their pickup order; each one is addressed by its slot letter a..z.
package inventory

import (
	"fmt"

	"chosenoffset.com/tombs/internal/entity"
)

// MaxSlots is the default capacity, one slot per letter
const MaxSlots = 26

// Inventory holds the items the player carries
type Inventory struct {
	Items []*entity.Entity

	// MaxSlots limits the number of items (0 = unlimited)
	MaxSlots int

	// OnChange callback when inventory changes (for UI updates)
	OnChange func() `cbor:"-"`
}

// New creates a new empty inventory with the default capacity
func New() *Inventory {
	return NewWithCapacity(MaxSlots)
}

// NewWithCapacity creates a new inventory with a slot limit
func NewWithCapacity(maxSlots int) *Inventory {
	return &Inventory{MaxSlots: maxSlots}
}

// Len returns the number of carried items
func (inv *Inventory) Len() int {
	return len(inv.Items)
}

// At returns the item in slot i
func (inv *Inventory) At(i int) *entity.Entity {
	return inv.Items[i]
}

// Valid reports whether i addresses an item
func (inv *Inventory) Valid(i int) bool {
	return i >= 0 && i < len(inv.Items)
}

// IsFull returns true if the inventory cannot accept more items
func (inv *Inventory) IsFull() bool {
	return inv.MaxSlots > 0 && len(inv.Items) >= inv.MaxSlots
}

// IsEmpty returns true if the inventory has no items
func (inv *Inventory) IsEmpty() bool {
	return len(inv.Items) == 0
}

// Add appends an item. It returns false when the inventory is full.
func (inv *Inventory) Add(item *entity.Entity) bool {
	if inv.IsFull() {
		return false
	}
	inv.Items = append(inv.Items, item)
	inv.notifyChange()
	return true
}

// Remove takes the item out of slot i, keeping the order of the rest
func (inv *Inventory) Remove(i int) *entity.Entity {
	item := inv.Items[i]
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	inv.notifyChange()
	return item
}

// EquippedIn returns the slot index of the item worn in slot, or -1
func (inv *Inventory) EquippedIn(slot entity.Slot) int {
	for i, item := range inv.Items {
		if item.IsEquipped() && item.Equipment.Slot == slot {
			return i
		}
	}
	return -1
}

// Equipped returns every worn item
func (inv *Inventory) Equipped() []*entity.Entity {
	var worn []*entity.Entity
	for _, item := range inv.Items {
		if item.IsEquipped() {
			worn = append(worn, item)
		}
	}
	return worn
}

// Labels returns one menu line per item, marking worn equipment
func (inv *Inventory) Labels() []string {
	labels := make([]string, len(inv.Items))
	for i, item := range inv.Items {
		if item.IsEquipped() {
			labels[i] = fmt.Sprintf("%s (on %s)", item.Name, item.Equipment.Slot)
		} else {
			labels[i] = item.Name
		}
	}
	return labels
}

// SlotLetter returns the menu letter for slot i
func SlotLetter(i int) rune {
	return rune('a' + i)
}

// notifyChange calls the OnChange callback if set
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}
