package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/render"
	"chosenoffset.com/tombs/internal/storage"
	"chosenoffset.com/tombs/internal/world/dungeon"
)

type fakeInput struct {
	events      []render.KeyEvent
	cx, cy      int
	left, right bool
}

func (f *fakeInput) JustPressed() []render.KeyEvent { return f.events }
func (f *fakeInput) CursorCell() (int, int)         { return f.cx, f.cy }

func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	switch b {
	case render.MouseButtonLeft:
		return f.left
	case render.MouseButtonRight:
		return f.right
	default:
		return false
	}
}

type harness struct {
	t     *testing.T
	app   *App
	input *fakeInput
	saves *storage.FileStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	saves, err := storage.NewFileStore(filepath.Join(t.TempDir(), "savegame.dat"))
	if err != nil {
		t.Fatal(err)
	}
	input := &fakeInput{}
	app := NewApp(context.Background(), Options{
		Input: input,
		Saves: saves,
		Game:  game.Options{Seed: 4242},
	})
	return &harness{t: t, app: app, input: input, saves: saves}
}

// press feeds one frame of key presses
func (h *harness) press(events ...render.KeyEvent) error {
	h.input.events = events
	err := h.app.Update()
	h.input.events = nil
	h.input.left, h.input.right = false, false
	return err
}

func (h *harness) runes(s string) {
	for _, r := range s {
		if err := h.press(render.RunePress(r)); err != nil {
			h.t.Fatalf("Unexpected error on %q: %v", r, err)
		}
	}
}

// newGame starts a game with every monster removed
func (h *harness) newGame() *game.Game {
	h.t.Helper()
	h.runes("a")
	if h.app.State() != StatePlaying {
		h.t.Fatalf("Expected to be playing, got %s", h.app.State())
	}
	g := h.app.Game()
	g.World.Store.Retain(func(e *entity.Entity) bool { return e.AI == nil })
	return g
}

func (h *harness) give(g *game.Game, id string) {
	h.t.Helper()
	px, py := g.World.Player().Pos()
	item := dungeon.DefaultCatalog().Item(id).Spawn(px, py)
	g.World.Inventory.Add(item)
}

func screenText(buf *render.Buffer) string {
	_, h := buf.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = buf.Row(y)
	}
	return strings.Join(rows, "\n")
}

func TestMainMenuQuit(t *testing.T) {
	h := newHarness(t)
	if err := h.press(render.RunePress('c')); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
	if err := h.press(render.KeyPress(render.KeyEscape)); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected escape to quit, got %v", err)
	}
}

func TestContinueWithoutSave(t *testing.T) {
	h := newHarness(t)
	h.runes("b")

	if h.app.State() != StateMainMenu {
		t.Fatalf("Expected to stay on the main menu, got %s", h.app.State())
	}
	buf := render.NewBuffer(ScreenWidth, ScreenHeight)
	h.app.Draw(buf)
	if !strings.Contains(screenText(buf), "No saved game to load.") {
		t.Error("Expected the no saved game notice")
	}

	// Any key dismisses the notice without choosing
	h.runes("a")
	if h.app.State() != StateMainMenu {
		t.Errorf("Expected the first key to only close the notice, got %s", h.app.State())
	}
}

func TestSaveAndContinue(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	g.World.Depth = 3

	if err := h.press(render.KeyPress(render.KeyEscape)); err != nil {
		t.Fatal(err)
	}
	if h.app.State() != StateMainMenu {
		t.Fatalf("Expected the main menu after escape, got %s", h.app.State())
	}

	h.runes("b")
	if h.app.State() != StatePlaying {
		t.Fatalf("Expected to continue playing, got %s", h.app.State())
	}
	resumed := h.app.Game()
	if resumed == g {
		t.Error("Expected a game restored from the save")
	}
	if resumed.World.Depth != 3 {
		t.Errorf("Expected depth 3, got %d", resumed.World.Depth)
	}
}

func TestUseHealingPotion(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "heal")
	g.World.Player().Fighter.HP = 5

	h.runes("i")
	if h.app.State() != StateInventory {
		t.Fatalf("Expected the inventory menu, got %s", h.app.State())
	}
	h.runes("a")

	if h.app.State() != StatePlaying {
		t.Errorf("Expected to be back to playing, got %s", h.app.State())
	}
	if hp := g.World.Player().Fighter.HP; hp != 30 {
		t.Errorf("Expected 30 hp after healing, got %d", hp)
	}
	if g.World.Inventory.Len() != 0 {
		t.Errorf("Expected the potion to be used up, got %d items", g.World.Inventory.Len())
	}
}

func TestInventoryCancel(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "heal")

	h.runes("i")
	h.press(render.KeyPress(render.KeyEscape))
	if h.app.State() != StatePlaying || g.World.Inventory.Len() != 1 {
		t.Errorf("Expected a cancelled menu to keep the item, got %s with %d items", h.app.State(), g.World.Inventory.Len())
	}
}

func TestDropItem(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "sword")

	h.runes("da")
	if g.World.Inventory.Len() != 0 {
		t.Fatalf("Expected the sword to be dropped, got %d items", g.World.Inventory.Len())
	}
	px, py := g.World.Player().Pos()
	if g.World.Store.ItemAt(px, py) < 0 {
		t.Error("Expected the sword on the floor under the player")
	}
}

func TestTargetingCancel(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "fireball")

	h.runes("ia")
	if h.app.State() != StateTargeting {
		t.Fatalf("Expected the targeting cursor, got %s", h.app.State())
	}
	h.press(render.KeyPress(render.KeyEscape))

	if h.app.State() != StatePlaying {
		t.Errorf("Expected to be back to playing, got %s", h.app.State())
	}
	if g.World.Inventory.Len() != 1 {
		t.Error("Expected the scroll to be kept")
	}
	if last := g.World.Log.Last(1)[0].Text; last != "Cancelled" {
		t.Errorf("Expected the cancel message, got %q", last)
	}
}

func TestTargetingConfirm(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "fireball")

	// The player's own tile is always visible: the fireball burns them
	h.runes("ia")
	h.press(render.KeyPress(render.KeyEnter))

	if h.app.State() != StatePlaying {
		t.Errorf("Expected to be back to playing, got %s", h.app.State())
	}
	if g.World.Inventory.Len() != 0 {
		t.Error("Expected the scroll to be used up")
	}
	if hp := g.World.Player().Fighter.HP; hp != 5 {
		t.Errorf("Expected 5 hp after the blast, got %d", hp)
	}
}

func TestTargetingClick(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	h.give(g, "fireball")
	h.runes("ia")

	// A click off the map keeps targeting
	h.input.cx, h.input.cy = 1, PanelY+2
	h.input.left = true
	h.press()
	if h.app.State() != StateTargeting {
		t.Fatalf("Expected to still be targeting, got %s", h.app.State())
	}

	h.input.cx, h.input.cy = g.World.Player().Pos()
	h.input.left = true
	h.press()
	if h.app.State() != StatePlaying || g.World.Inventory.Len() != 0 {
		t.Errorf("Expected the click to fire, got %s with %d items", h.app.State(), g.World.Inventory.Len())
	}
}

func TestLevelUpMenu(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	player := g.World.Player()
	player.Fighter.XP = 350

	h.runes(".")
	if h.app.State() != StateLevelUp {
		t.Fatalf("Expected the level-up menu, got %s", h.app.State())
	}
	h.press(render.KeyPress(render.KeyEscape))
	if h.app.State() != StateLevelUp {
		t.Fatal("Expected the level-up menu to require a choice")
	}

	h.runes("b")
	if h.app.State() != StatePlaying {
		t.Errorf("Expected to be back to playing, got %s", h.app.State())
	}
	if player.Level != 2 || player.Fighter.BasePower != 6 {
		t.Errorf("Expected level 2 with power 6, got level %d power %d", player.Level, player.Fighter.BasePower)
	}
}

func TestShowInfo(t *testing.T) {
	h := newHarness(t)
	h.newGame()

	h.runes("c")
	if h.app.State() != StateInfo {
		t.Fatalf("Expected the info box, got %s", h.app.State())
	}
	buf := render.NewBuffer(ScreenWidth, ScreenHeight)
	h.app.Draw(buf)
	if !strings.Contains(screenText(buf), "Level 1, experience 0") {
		t.Error("Expected the character info on screen")
	}

	h.runes("x")
	if h.app.State() != StatePlaying {
		t.Errorf("Expected the info box to close, got %s", h.app.State())
	}
}

func TestDeathDeletesSave(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()
	ctx := context.Background()
	if err := h.saves.Save(ctx, g.World); err != nil {
		t.Fatal(err)
	}

	scene := g.Turns.Scene()
	g.Engine.TakeDamage(scene, g.World.Player(), 100)
	h.runes(".")

	if _, err := h.saves.Load(ctx); !errors.Is(err, storage.ErrNoSavedGame) {
		t.Errorf("Expected the save to be deleted on death, got %v", err)
	}

	// A dead player cannot open the inventory, and leaving does not save
	h.runes("i")
	if h.app.State() != StatePlaying {
		t.Errorf("Expected no inventory for the dead, got %s", h.app.State())
	}
	h.press(render.KeyPress(render.KeyEscape))
	if _, err := h.saves.Load(ctx); !errors.Is(err, storage.ErrNoSavedGame) {
		t.Errorf("Expected no save for a dead player, got %v", err)
	}
}

func TestDrawPlaying(t *testing.T) {
	h := newHarness(t)
	g := h.newGame()

	buf := render.NewBuffer(ScreenWidth, ScreenHeight)
	h.app.Draw(buf)

	px, py := g.World.Player().Pos()
	if c := buf.At(px, py); c.Ch != '@' {
		t.Errorf("Expected the player glyph at (%d,%d), got %q", px, py, c.Ch)
	}
	text := screenText(buf)
	for _, want := range []string{"HP: 30/30", "Dungeon level: 1", "Welcome stranger!"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
}

func TestDrawMainMenu(t *testing.T) {
	h := newHarness(t)
	buf := render.NewBuffer(ScreenWidth, ScreenHeight)
	h.app.Draw(buf)

	text := screenText(buf)
	for _, want := range []string{Title, "(a) Play a new game", "(b) Continue last game", "(c) Quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q on the main menu", want)
		}
	}
}

func TestCancelledContextSaves(t *testing.T) {
	saves, _ := storage.NewFileStore(filepath.Join(t.TempDir(), "savegame.dat"))
	ctx, cancel := context.WithCancel(context.Background())
	input := &fakeInput{}
	app := NewApp(ctx, Options{Input: input, Saves: saves, Game: game.Options{Seed: 9}})

	input.events = []render.KeyEvent{render.RunePress('a')}
	if err := app.Update(); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := app.Update(); !errors.Is(err, render.ErrQuit) {
		t.Fatalf("Expected ErrQuit after cancel, got %v", err)
	}
	if _, err := saves.Load(context.Background()); err != nil {
		t.Errorf("Expected the game to be saved, got %v", err)
	}
}
