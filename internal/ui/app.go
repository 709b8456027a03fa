// Package ui is the player-facing layer: the main menu, the map and panel,
// inventory and level-up menus, and the targeting cursor. It turns key
// presses into intents for the turn manager and draws onto any render
// backend.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/tombs/internal/combat"
	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity/turn"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/render"
	"chosenoffset.com/tombs/internal/storage"
)

// Title is shown on the main menu and the window
const Title = "TOMBS OF THE ANCIENT KINGS"

// State is the screen the App is on
type State int

const (
	StateMainMenu State = iota + 1
	StatePlaying
	StateInventory
	StateDrop
	StateTargeting
	StateLevelUp
	StateInfo
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main menu"
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateDrop:
		return "drop"
	case StateTargeting:
		return "targeting"
	case StateLevelUp:
		return "level up"
	case StateInfo:
		return "info"
	default:
		return "none"
	}
}

// Main menu options
const (
	menuNewGame = iota
	menuContinue
	menuQuit
)

// Options configures the App
type Options struct {
	Input render.InputManager
	Saves storage.Store // nil disables saving
	Game  game.Options
}

// App implements render.Game
type App struct {
	ctx   context.Context
	input render.InputManager
	saves storage.Store
	opts  game.Options

	state    State
	game     *game.Game
	mainMenu *Menu
	menu     *Menu // Inventory, drop, level-up or info window
	notice   *Menu // Message box over the main menu
	target   *Targeting
	hud      HUD

	deathHandled bool
}

// NewApp creates the App on the main menu
func NewApp(ctx context.Context, opts Options) *App {
	return &App{
		ctx:      ctx,
		input:    opts.Input,
		saves:    opts.Saves,
		opts:     opts.Game,
		state:    StateMainMenu,
		mainMenu: NewMenu("", []string{"Play a new game", "Continue last game", "Quit"}, MainMenuWidth),
	}
}

// State returns the current screen
func (a *App) State() State {
	return a.state
}

// Game returns the running game, or nil on the main menu before any game
func (a *App) Game() *game.Game {
	return a.game
}

// Update handles the input of one frame.
func (a *App) Update() error {
	if err := a.ctx.Err(); err != nil {
		a.saveOnExit()
		return render.ErrQuit
	}

	if a.state != StateMainMenu && a.state != StateTargeting {
		x, y := a.input.CursorCell()
		a.hud.SetMouse(x, y)
	}

	if a.state == StateTargeting {
		if a.updateTargetingMouse() {
			return nil
		}
	}

	for _, ev := range a.input.JustPressed() {
		var err error
		switch a.state {
		case StateMainMenu:
			err = a.updateMainMenu(ev)
		case StatePlaying:
			a.updatePlaying(ev)
		case StateInventory, StateDrop:
			a.updateInventory(ev)
		case StateTargeting:
			a.updateTargeting(ev)
		case StateLevelUp:
			a.updateLevelUp(ev)
		case StateInfo:
			if _, done := a.menu.Handle(ev); done {
				a.menu = nil
				a.state = StatePlaying
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// --- Main menu ---

func (a *App) updateMainMenu(ev render.KeyEvent) error {
	if a.notice != nil {
		a.notice = nil
		return nil
	}

	choice, done := a.mainMenu.Handle(ev)
	if !done {
		return nil
	}
	if ev.Key == render.KeyEscape {
		return render.ErrQuit
	}

	switch choice {
	case menuNewGame:
		g, err := game.New(a.opts)
		if err != nil {
			log.Printf("Failed to create game: %v", err)
			a.notice = MessageBox("Could not start a new game.", NoticeWidth)
			return nil
		}
		a.start(g)
	case menuContinue:
		if err := a.continueGame(); err != nil {
			if !errors.Is(err, storage.ErrNoSavedGame) {
				log.Printf("Failed to load game: %v", err)
			}
			a.notice = MessageBox("No saved game to load.", NoticeWidth)
		}
	case menuQuit:
		return render.ErrQuit
	}
	return nil
}

func (a *App) continueGame() error {
	if a.saves == nil {
		return storage.ErrNoSavedGame
	}
	world, err := a.saves.Load(a.ctx)
	if err != nil {
		return err
	}
	g, err := game.Resume(world, a.opts)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrNoSavedGame, err)
	}
	a.start(g)
	return nil
}

// start switches to a running game
func (a *App) start(g *game.Game) {
	a.game = g
	a.deathHandled = !g.World.Player().Alive
	a.menu = nil
	a.target = nil
	a.hud = HUD{}
	g.Turns.OnShowInfo = func(info string) {
		a.menu = MessageBox(info, InfoWidth)
		a.state = StateInfo
	}
	a.state = StatePlaying
	a.checkLevelUp()
}

// --- Playing ---

func (a *App) updatePlaying(ev render.KeyEvent) {
	if ev.Key == render.KeyEscape {
		a.saveOnExit()
		a.state = StateMainMenu
		return
	}

	a.checkDeath()
	cmd, ok := commandFor(ev)
	if !ok {
		return
	}
	if !a.game.World.Player().Alive && cmd.intent.Kind != turn.IntentShowInfo {
		return
	}

	switch cmd.open {
	case StateInventory:
		a.openInventory(StateInventory, "Press the key next to an item to use it, or any other to cancel.\n")
	case StateDrop:
		a.openInventory(StateDrop, "Press the key next to an item to drop it, or any other to cancel.\n")
	default:
		a.step(cmd.intent)
	}
}

// step resolves an intent and reacts to its consequences
func (a *App) step(intent turn.Intent) turn.Result {
	res := a.game.Turns.Step(intent)
	if res.Err != nil && a.opts.Debug {
		log.Printf("%s: %v", intent.Kind, res.Err)
	}

	a.checkDeath()
	if a.state == StatePlaying {
		a.checkLevelUp()
	}
	return res
}

// checkDeath deletes the save once the player has died
func (a *App) checkDeath() {
	if a.deathHandled || a.game.World.Player().Alive {
		return
	}
	a.deathHandled = true
	log.Printf("Player died at depth %d", a.game.World.Depth)
	if a.saves == nil {
		return
	}
	if err := a.saves.Delete(context.WithoutCancel(a.ctx)); err != nil {
		log.Printf("Failed to delete save: %v", err)
	}
}

func (a *App) checkLevelUp() {
	scene := a.game.Turns.Scene()
	if !a.game.Engine.CanLevelUp(scene) {
		return
	}
	player := scene.Store.Player()
	rules := a.game.Rules.Progression
	a.menu = NewMenu("Choose a stat to raise:\n", []string{
		fmt.Sprintf("Constitution (+%d HP, from %d)", rules.HPGain, player.Fighter.BaseMaxHP),
		fmt.Sprintf("Strength (+%d attack, from %d)", rules.PowerGain, player.Fighter.BasePower),
		fmt.Sprintf("Agility (+%d defense, from %d)", rules.DefenseGain, player.Fighter.BaseDefense),
	}, LevelUpWidth)
	a.menu.Required = true
	a.state = StateLevelUp
}

func (a *App) updateLevelUp(ev render.KeyEvent) {
	choice, done := a.menu.Handle(ev)
	if !done {
		return
	}
	if err := a.game.Engine.LevelUp(a.game.Turns.Scene(), combat.LevelUpChoice(choice)); err != nil {
		log.Printf("Failed to level up: %v", err)
	}
	a.menu = nil
	a.state = StatePlaying
	a.checkLevelUp()
}

// saveOnExit saves a living player's game
func (a *App) saveOnExit() {
	if a.game == nil || a.saves == nil || !a.game.World.Player().Alive {
		return
	}
	if err := a.saves.Save(context.WithoutCancel(a.ctx), a.game.World); err != nil {
		log.Printf("Failed to save game: %v", err)
		return
	}
	log.Printf("Game saved at depth %d", a.game.World.Depth)
}

// --- Inventory ---

func (a *App) openInventory(state State, header string) {
	options := a.game.World.Inventory.Labels()
	if len(options) == 0 {
		options = []string{"Inventory is empty."}
	}
	a.menu = NewMenu(header, options, InventoryWidth)
	a.state = state
}

func (a *App) updateInventory(ev render.KeyEvent) {
	choice, done := a.menu.Handle(ev)
	if !done {
		return
	}
	state := a.state
	a.menu = nil
	a.state = StatePlaying

	inv := a.game.World.Inventory
	if choice < 0 || !inv.Valid(choice) {
		return
	}

	if state == StateDrop {
		a.step(turn.Drop(choice))
		return
	}

	maxRange, needsTarget := a.game.Engine.NeedsTarget(inv.At(choice).Item)
	if !needsTarget {
		a.step(turn.UseItem(choice))
		return
	}
	px, py := a.game.World.Player().Pos()
	a.target = &Targeting{Index: choice, MaxRange: maxRange, X: px, Y: py}
	a.hud.Hint = "Choose a target tile (arrows and Enter, or click); Esc to cancel."
	a.state = StateTargeting
}

// --- Targeting ---

func (a *App) updateTargeting(ev render.KeyEvent) {
	scene := a.game.Turns.Scene()
	confirmed, cancelled := a.target.Handle(ev, scene, a.game.FOV)
	switch {
	case confirmed:
		a.finishTargeting(true)
	case cancelled:
		a.finishTargeting(false)
	}
}

// updateTargetingMouse handles clicks; it reports whether targeting ended
func (a *App) updateTargetingMouse() bool {
	if a.input.IsMouseButtonJustPressed(render.MouseButtonRight) {
		a.finishTargeting(false)
		return true
	}
	if a.input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := a.input.CursorCell()
		if a.target.Click(x, y, a.game.Turns.Scene(), a.game.FOV) {
			a.finishTargeting(true)
			return true
		}
	}
	return false
}

// finishTargeting uses the pending item on the cursor tile, or cancels it
func (a *App) finishTargeting(confirmed bool) {
	t := a.target
	a.target = nil
	a.hud.Hint = ""
	a.state = StatePlaying

	turns := a.game.Turns
	if confirmed {
		turns.SetTargeter(targetAt(t.X, t.Y))
	}
	a.step(turn.UseItem(t.Index))
	turns.SetTargeter(nil)
}

// --- Drawing ---

// Draw renders the current screen.
func (a *App) Draw(c render.Console) {
	c.Clear()
	if a.state == StateMainMenu {
		a.drawMainMenu(c)
		return
	}

	drawMap(c, a.game)
	if a.state == StateTargeting {
		bg := palette.DarkRed
		if a.target.Valid(a.game.Turns.Scene(), a.game.FOV) {
			bg = palette.LightGrey
		}
		c.SetBackground(a.target.X, a.target.Y, bg)
	}
	a.hud.Draw(c, a.game)

	if a.menu != nil {
		a.menu.Draw(c)
	}
}

func (a *App) drawMainMenu(c render.Console) {
	w, h := c.Size()
	c.Print(centered(w, len(Title)), h/2-6, Title, palette.LightYellow)
	a.mainMenu.Draw(c)
	if a.notice != nil {
		a.notice.Draw(c)
	}
}
