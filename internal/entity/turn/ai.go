package turn

import (
	"fmt"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
)

// processMonsterTurns gives every entity holding an AI one turn, in index
// order. The AI is detached while it runs and the resulting state is
// attached afterwards.
func (m *Manager) processMonsterTurns() {
	store := m.scene.Store
	for i := 0; i < store.Len(); i++ {
		if i == entity.PlayerIndex {
			continue
		}
		e := store.At(i)
		if e.AI == nil {
			continue
		}

		ai := e.AI
		e.AI = nil
		next := m.takeAITurn(i, ai)
		store.At(i).AI = next
	}
}

func (m *Manager) takeAITurn(i int, ai *entity.AI) *entity.AI {
	switch ai.Kind {
	case entity.AIConfused:
		return m.confusedTurn(i, ai)
	default:
		return m.basicTurn(i, ai)
	}
}

// basicTurn chases the player while the monster is in sight and attacks
// once it is close enough
func (m *Manager) basicTurn(i int, ai *entity.AI) *entity.AI {
	store := m.scene.Store
	monster := store.At(i)
	player := store.Player()

	if !m.vis.IsVisible(monster.X, monster.Y) {
		return ai
	}

	if monster.DistanceTo(player) > m.engine.Rules().AI.AttackDistance {
		store.MoveTowards(i, player.X, player.Y, m.scene.Grid)
	} else if player.Fighter != nil && player.Fighter.HP > 0 {
		m.engine.Attack(m.scene, i, entity.PlayerIndex)
	}
	return ai
}

// confusedTurn stumbles in a random direction while turns remain, then
// hands back the wrapped AI without acting
func (m *Manager) confusedTurn(i int, ai *entity.AI) *entity.AI {
	store := m.scene.Store
	if ai.RemainingTurns > 0 {
		dx := m.roller.Between(-1, 1)
		dy := m.roller.Between(-1, 1)
		if dx != 0 || dy != 0 {
			store.MoveBy(i, dx, dy, m.scene.Grid)
		}
		return &entity.AI{Kind: entity.AIConfused, Previous: ai.Previous, RemainingTurns: ai.RemainingTurns - 1}
	}

	m.scene.Log.Add(fmt.Sprintf("The %s is no longer confused!", store.At(i).Name), palette.Red)
	if ai.Previous == nil {
		return entity.BasicAI()
	}
	return ai.Previous
}
