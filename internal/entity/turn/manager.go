// Package turn provides turn-based game management.
// It resolves one player intent at a time and, when that intent cost a
// turn, gives every monster with an AI its move.
package turn

import (
	"context"
	"errors"
	"fmt"

	"chosenoffset.com/tombs/internal/combat"
	"chosenoffset.com/tombs/internal/core/dice"
	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/world/dungeon"
	"chosenoffset.com/tombs/internal/world/grid"
)

var (
	// ErrNoStairs is returned when descending away from the stairs
	ErrNoStairs = errors.New("no stairs here")
	// ErrNoSuchItem is returned for an inventory slot that holds nothing
	ErrNoSuchItem = errors.New("no item in that slot")
	// ErrPlayerDead is returned for any action but quitting once the player died
	ErrPlayerDead = errors.New("player is dead")
)

// Phase represents the current phase of a turn
type Phase int

const (
	PhasePlayerInput  Phase = iota // Waiting for player input
	PhasePlayerAction              // Processing player action
	PhaseEnemyTurn                 // Monsters taking their turns
)

// LevelUpChooser asks the player which stat to raise
type LevelUpChooser interface {
	ChooseLevelUp(player *entity.Entity) combat.LevelUpChoice
}

// updater is a visibility source that follows the viewer
type updater interface {
	Update(g *grid.Grid, x, y int) bool
}

// Manager handles turn-based gameplay
type Manager struct {
	scene      *combat.Scene
	engine     *combat.Engine
	roller     *dice.Roller
	vis        combat.Visibility
	targeter   combat.Targeter
	turnNumber int
	phase      Phase

	// Callbacks
	OnTurnEnd  func(turnNumber int)
	OnDescend  func() error      // Builds the next level
	OnShowInfo func(info string) // Displays the character sheet; logged when nil
}

// NewManager creates a new turn manager over scene
func NewManager(scene *combat.Scene, engine *combat.Engine, roller *dice.Roller) *Manager {
	return &Manager{
		scene:  scene,
		engine: engine,
		roller: roller,
		vis:    everythingVisible{},
		phase:  PhasePlayerInput,
	}
}

type everythingVisible struct{}

func (everythingVisible) IsVisible(x, y int) bool { return true }

// SetVisibility sets the player's field of view. A source with an
// Update(grid, x, y) method is refreshed whenever the player may have moved.
func (m *Manager) SetVisibility(vis combat.Visibility) {
	if vis == nil {
		vis = everythingVisible{}
	}
	m.vis = vis
	m.refreshVisibility()
}

// Visibility returns the field of view in use
func (m *Manager) Visibility() combat.Visibility {
	return m.vis
}

// SetTargeter sets the collaborator confuse and fireball ask for a tile
func (m *Manager) SetTargeter(t combat.Targeter) {
	m.targeter = t
}

// Scene returns the state the manager mutates
func (m *Manager) Scene() *combat.Scene {
	return m.scene
}

// Engine returns the rules engine
func (m *Manager) Engine() *combat.Engine {
	return m.engine
}

// GetPhase returns the current phase
func (m *Manager) GetPhase() Phase {
	return m.phase
}

// GetTurnNumber returns the number of turns that cost time so far
func (m *Manager) GetTurnNumber() int {
	return m.turnNumber
}

// --- Turn resolution ---

// Step resolves one player intent. When it took a turn and the player is
// still alive, every monster acts once in store order.
func (m *Manager) Step(intent Intent) Result {
	m.phase = PhasePlayerAction
	defer func() { m.phase = PhasePlayerInput }()

	res := m.playerAction(intent)
	m.refreshVisibility()
	if !res.TookTurn {
		return res
	}

	if m.scene.Store.Player().Alive {
		m.phase = PhaseEnemyTurn
		m.processMonsterTurns()
		m.refreshVisibility()
	}

	m.turnNumber++
	if m.OnTurnEnd != nil {
		m.OnTurnEnd(m.turnNumber)
	}
	return res
}

// Run reads and resolves intents until the player quits, the source fails
// or ctx is done. An eligible level-up is offered before each intent.
func (m *Manager) Run(ctx context.Context, src IntentSource, chooser LevelUpChooser) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.OfferLevelUp(chooser)

		intent, err := src.NextIntent(ctx)
		if err != nil {
			return fmt.Errorf("read intent: %w", err)
		}
		if res := m.Step(intent); res.Exit {
			return nil
		}
	}
}

// OfferLevelUp asks chooser for a stat once if the player can level up. It
// reports whether the player leveled.
func (m *Manager) OfferLevelUp(chooser LevelUpChooser) bool {
	if chooser == nil || !m.engine.CanLevelUp(m.scene) {
		return false
	}
	choice := chooser.ChooseLevelUp(m.scene.Store.Player())
	return m.engine.LevelUp(m.scene, choice) == nil
}

func (m *Manager) playerAction(intent Intent) Result {
	player := m.scene.Store.Player()

	if intent.Kind == IntentQuit {
		return Result{Exit: true}
	}
	if !player.Alive && intent.Kind != IntentShowInfo {
		return Result{Err: ErrPlayerDead}
	}

	switch intent.Kind {
	case IntentMove:
		if intent.DX == 0 && intent.DY == 0 {
			return Result{TookTurn: true}
		}
		return Result{TookTurn: m.moveOrAttack(intent.DX, intent.DY)}

	case IntentWait:
		return Result{TookTurn: true}

	case IntentPickUp:
		if err := m.engine.PickUp(m.scene); err != nil {
			return Result{Err: err}
		}
		return Result{TookTurn: true}

	case IntentDrop:
		if !m.scene.Inventory.Valid(intent.Index) {
			return Result{Err: ErrNoSuchItem}
		}
		if err := m.engine.Drop(m.scene, intent.Index); err != nil {
			return Result{Err: err}
		}
		return Result{TookTurn: true}

	case IntentUseItem:
		if !m.scene.Inventory.Valid(intent.Index) {
			return Result{Err: ErrNoSuchItem}
		}
		outcome, err := m.engine.UseItem(m.scene, intent.Index, m.vis, m.targeter)
		if outcome == combat.Cancelled {
			return Result{Err: err}
		}
		return Result{TookTurn: true}

	case IntentDescend:
		return Result{Err: m.descend()}

	case IntentShowInfo:
		m.showInfo()
		return Result{}
	}

	return Result{}
}

// moveOrAttack attacks a fighter on the destination tile, otherwise moves.
// A blocked move does not cost a turn.
func (m *Manager) moveOrAttack(dx, dy int) bool {
	store := m.scene.Store
	player := store.Player()
	x, y := player.X+dx, player.Y+dy

	if target := store.FighterAt(x, y); target >= 0 && target != entity.PlayerIndex {
		m.engine.Attack(m.scene, entity.PlayerIndex, target)
		return true
	}
	return store.MoveBy(entity.PlayerIndex, dx, dy, m.scene.Grid)
}

func (m *Manager) descend() error {
	player := m.scene.Store.Player()
	onStairs := false
	for _, e := range m.scene.Store.Entities {
		if e.Name == dungeon.StairsName && e.At(player.X, player.Y) {
			onStairs = true
			break
		}
	}
	if !onStairs {
		m.scene.Log.Add("There are no stairs here.", palette.White)
		return ErrNoStairs
	}
	if m.OnDescend == nil {
		return ErrNoStairs
	}
	if err := m.OnDescend(); err != nil {
		return err
	}
	if r, ok := m.vis.(interface{ Invalidate() }); ok {
		r.Invalidate()
	}
	m.refreshVisibility()
	return nil
}

// CharacterInfo describes the player's progression
func (m *Manager) CharacterInfo() string {
	player := m.scene.Store.Player()
	f := player.Fighter
	if f == nil {
		return fmt.Sprintf("Level %d", player.Level)
	}
	return fmt.Sprintf("Level %d, experience %d, next level at %d. HP %d/%d, attack %d, defense %d.",
		player.Level, f.XP, m.engine.NextLevelXP(m.scene),
		f.HP, m.scene.MaxHP(player), m.scene.Power(player), m.scene.Defense(player))
}

func (m *Manager) showInfo() {
	info := m.CharacterInfo()
	if m.OnShowInfo != nil {
		m.OnShowInfo(info)
		return
	}
	m.scene.Log.Add(info, palette.LightGrey)
}

func (m *Manager) refreshVisibility() {
	if u, ok := m.vis.(updater); ok {
		x, y := m.scene.Store.Player().Pos()
		u.Update(m.scene.Grid, x, y)
	}
}
