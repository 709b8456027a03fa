package combat

import "chosenoffset.com/tombs/internal/entity"

// Bonuses from worn equipment. Only the player carries an inventory, so
// every other fighter gets zero.
func (s *Scene) bonuses(e *entity.Entity) (power, defense, maxHP int) {
	if s.Inventory == nil || e != s.Store.Player() {
		return 0, 0, 0
	}
	for _, item := range s.Inventory.Equipped() {
		power += item.Equipment.PowerBonus
		defense += item.Equipment.DefenseBonus
		maxHP += item.Equipment.MaxHPBonus
	}
	return power, defense, maxHP
}

// Power returns base power plus equipment bonuses
func (s *Scene) Power(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	bonus, _, _ := s.bonuses(e)
	return e.Fighter.BasePower + bonus
}

// Defense returns base defense plus equipment bonuses
func (s *Scene) Defense(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	_, bonus, _ := s.bonuses(e)
	return e.Fighter.BaseDefense + bonus
}

// MaxHP returns base max hp plus equipment bonuses
func (s *Scene) MaxHP(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	_, _, bonus := s.bonuses(e)
	return e.Fighter.BaseMaxHP + bonus
}

// Heal restores hp without going over the effective maximum
func (s *Scene) Heal(e *entity.Entity, amount int) {
	if e.Fighter == nil {
		return
	}
	e.Fighter.HP += amount
	if limit := s.MaxHP(e); e.Fighter.HP > limit {
		e.Fighter.HP = limit
	}
}
