package combat

import (
	"fmt"

	"chosenoffset.com/tombs/internal/core/palette"
)

// LevelUpChoice is the stat a level-up improves
type LevelUpChoice int

const (
	ChoiceHP LevelUpChoice = iota
	ChoicePower
	ChoiceDefense
)

func (c LevelUpChoice) String() string {
	switch c {
	case ChoiceHP:
		return "constitution"
	case ChoicePower:
		return "strength"
	case ChoiceDefense:
		return "agility"
	default:
		return "unknown"
	}
}

// NextLevelXP returns the xp the player needs to leave the current level
func (e *Engine) NextLevelXP(s *Scene) int {
	return e.rules.LevelUpThreshold(s.Store.Player().Level)
}

// CanLevelUp reports whether the player has banked enough xp
func (e *Engine) CanLevelUp(s *Scene) bool {
	player := s.Store.Player()
	return player.Fighter != nil && player.Alive && player.Fighter.XP >= e.NextLevelXP(s)
}

// LevelUp spends the threshold xp and applies choice. Surplus xp is kept
// toward the next level.
func (e *Engine) LevelUp(s *Scene, choice LevelUpChoice) error {
	if !e.CanLevelUp(s) {
		return ErrNotEligible
	}
	if choice < ChoiceHP || choice > ChoiceDefense {
		return fmt.Errorf("unknown level up choice %d", choice)
	}

	player := s.Store.Player()
	f := player.Fighter
	f.XP -= e.NextLevelXP(s)
	player.Level++

	gain := e.rules.Progression
	switch choice {
	case ChoiceHP:
		f.BaseMaxHP += gain.HPGain
		f.HP += gain.HPGain
	case ChoicePower:
		f.BasePower += gain.PowerGain
	case ChoiceDefense:
		f.BaseDefense += gain.DefenseGain
	}

	s.Log.Add(fmt.Sprintf("Your battle skills grow stronger! You reached level %d!", player.Level), palette.Yellow)
	return nil
}
