package inventory

import (
	"testing"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
)

func potion() *entity.Entity {
	e := entity.New(0, 0, '!', "healing potion", palette.Violet, false)
	e.Item = entity.ItemHeal
	return e
}

func TestCapacity(t *testing.T) {
	inv := New()
	for i := 0; i < MaxSlots; i++ {
		if !inv.Add(potion()) {
			t.Fatalf("Expected slot %d to accept an item", i)
		}
	}
	if !inv.IsFull() {
		t.Error("Expected inventory to be full")
	}
	if inv.Add(potion()) {
		t.Error("Expected add to fail on full inventory")
	}
	if inv.Len() != MaxSlots {
		t.Errorf("Expected %d items, got %d", MaxSlots, inv.Len())
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	inv := New()
	names := []string{"a", "b", "c"}
	for _, n := range names {
		item := potion()
		item.Name = n
		inv.Add(item)
	}

	removed := inv.Remove(0)
	if removed.Name != "a" {
		t.Errorf("Expected to remove a, got %s", removed.Name)
	}
	if inv.At(0).Name != "b" || inv.At(1).Name != "c" {
		t.Errorf("Expected order b,c after removal, got %s,%s", inv.At(0).Name, inv.At(1).Name)
	}
}

func TestEquippedIn(t *testing.T) {
	inv := New()
	sword := entity.New(0, 0, '/', "sword", palette.Sky, false)
	sword.Item = entity.ItemSword
	sword.Equipment = &entity.Equipment{Slot: entity.SlotRightHand, PowerBonus: 3, Equipped: true}
	inv.Add(potion())
	inv.Add(sword)

	if got := inv.EquippedIn(entity.SlotRightHand); got != 1 {
		t.Errorf("Expected sword in slot 1, got %d", got)
	}
	if got := inv.EquippedIn(entity.SlotLeftHand); got != -1 {
		t.Errorf("Expected empty left hand, got %d", got)
	}
	if labels := inv.Labels(); labels[1] != "sword (on right hand)" {
		t.Errorf("Unexpected label %q", labels[1])
	}
}

func TestOnChange(t *testing.T) {
	inv := New()
	calls := 0
	inv.OnChange = func() { calls++ }
	inv.Add(potion())
	inv.Remove(0)
	if calls != 2 {
		t.Errorf("Expected 2 change notifications, got %d", calls)
	}
}
