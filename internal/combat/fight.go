package combat

import (
	"fmt"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
)

// CorpseGlyph is what a dead fighter is drawn as
const CorpseGlyph = '%'

// Attack has the attacker at index a strike the defender at index d.
// Damage is effective power minus effective defense; nothing happens
// when that is not positive.
func (e *Engine) Attack(s *Scene, a, d int) {
	attacker, defender := s.Store.MutTwo(a, d)
	if attacker.Fighter == nil || defender.Fighter == nil {
		return
	}

	damage := s.Power(attacker) - s.Defense(defender)
	if damage <= 0 {
		s.Log.Add(fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, defender.Name), palette.White)
		return
	}

	s.Log.Add(fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, defender.Name, damage), palette.White)
	if xp, died := e.TakeDamage(s, defender, damage); died && a == entity.PlayerIndex {
		attacker.Fighter.XP += xp
	}
}

// TakeDamage subtracts positive damage and runs the death transition the
// first time hp reaches zero. It returns the xp the victim was worth and
// whether it died from this hit.
func (e *Engine) TakeDamage(s *Scene, target *entity.Entity, damage int) (int, bool) {
	f := target.Fighter
	if f == nil {
		return 0, false
	}
	if damage > 0 {
		f.HP -= damage
	}
	if f.HP > 0 || !target.Alive {
		return 0, false
	}

	xp := f.XP
	target.Alive = false
	switch f.OnDeath {
	case entity.DeathPlayer:
		playerDeath(s, target)
	case entity.DeathMonster:
		monsterDeath(s, target)
	}
	return xp, true
}

func playerDeath(s *Scene, player *entity.Entity) {
	s.Log.Add("You died!", palette.Red)
	player.Glyph = CorpseGlyph
	player.Color = palette.DarkRed
}

func monsterDeath(s *Scene, monster *entity.Entity) {
	s.Log.Add(fmt.Sprintf("%s is dead! You gain %d experience points.", monster.Name, monster.Fighter.XP), palette.Orange)
	monster.Glyph = CorpseGlyph
	monster.Color = palette.DarkRed
	monster.Blocks = false
	monster.Fighter = nil
	monster.AI = nil
	monster.Name = "remains of " + monster.Name
}
