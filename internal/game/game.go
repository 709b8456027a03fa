// Package game wires the simulation together: it creates new games,
// resumes saved worlds and moves the player down the dungeon.
package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/tombs/internal/combat"
	"chosenoffset.com/tombs/internal/core/dice"
	"chosenoffset.com/tombs/internal/core/fov"
	"chosenoffset.com/tombs/internal/core/msglog"
	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/entity/inventory"
	"chosenoffset.com/tombs/internal/entity/turn"
	"chosenoffset.com/tombs/internal/simulation"
	"chosenoffset.com/tombs/internal/world/dungeon"
)

// PlayerName is the name the player entity carries
const PlayerName = "player"

// ErrInvalidWorld is returned when resuming a world that cannot be played
var ErrInvalidWorld = errors.New("invalid world")

// Options configures a game
type Options struct {
	Rules   *simulation.Config // nil = defaults
	Catalog *dungeon.Catalog   // nil = built-in catalog
	Seed    int64              // 0 = random
	Debug   bool               // Mirror game messages to the process log
}

// Game holds all game state and logic.
type Game struct {
	World *World

	Rules     *simulation.Config
	Roller    *dice.Roller
	Engine    *combat.Engine
	Generator *dungeon.Generator
	Turns     *turn.Manager
	FOV       *fov.Map

	debug bool
}

func newGame(world *World, opts Options) (*Game, error) {
	rules := opts.Rules
	if rules == nil {
		rules = simulation.DefaultConfig()
	}
	roller, err := dice.NewSeeded(opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed dice: %w", err)
	}

	g := &Game{
		World:     world,
		Rules:     rules,
		Roller:    roller,
		Engine:    combat.NewEngine(rules),
		Generator: dungeon.NewGenerator(rules.Map, opts.Catalog, roller),
		FOV:       fov.New(rules.Perception.TorchRadius, rules.Perception.LightWalls),
		debug:     opts.Debug,
	}
	log.Printf("Game seed: %d", roller.Seed())
	return g, nil
}

// New creates a fresh game: a new player on the first level
func New(opts Options) (*Game, error) {
	world := &World{
		Log:       msglog.New(),
		Inventory: inventory.New(),
		Depth:     1,
	}
	g, err := newGame(world, opts)
	if err != nil {
		return nil, err
	}

	world.Store = entity.NewStore(g.newPlayer())
	world.Grid, _ = g.Generator.Generate(world.Store, world.Depth)
	g.attach()

	world.Log.Add("Welcome stranger! Prepare to perish in the Tombs of the Ancient Kings.", palette.Red)
	log.Printf("New game at depth %d with %d entities", world.Depth, world.Store.Len())
	return g, nil
}

// Resume continues a saved world
func Resume(world *World, opts Options) (*Game, error) {
	if world == nil || world.Grid == nil || world.Store == nil || world.Store.Len() == 0 {
		return nil, ErrInvalidWorld
	}
	if world.Log == nil {
		world.Log = msglog.New()
	}
	if world.Inventory == nil {
		world.Inventory = inventory.New()
	}

	g, err := newGame(world, opts)
	if err != nil {
		return nil, err
	}
	g.attach()
	log.Printf("Resumed game at depth %d", world.Depth)
	return g, nil
}

func (g *Game) newPlayer() *entity.Entity {
	start := g.Rules.Player
	player := entity.New(0, 0, '@', PlayerName, palette.White, true)
	player.Alive = true
	player.Fighter = &entity.Fighter{
		HP:          start.HP,
		BaseMaxHP:   start.HP,
		BaseDefense: start.Defense,
		BasePower:   start.Power,
		OnDeath:     entity.DeathPlayer,
	}
	return player
}

// attach builds the turn manager over the world and hooks up callbacks
func (g *Game) attach() {
	if g.debug {
		g.World.Log.OnAdd = func(m msglog.Message) {
			log.Printf("Message: %s", m.Text)
		}
	}

	g.Turns = turn.NewManager(g.World.Scene(), g.Engine, g.Roller)
	g.Turns.OnDescend = g.Descend
	g.Turns.SetVisibility(g.FOV)
}

// Descend moves the player to a fresh, deeper level. The player rests
// first, recovering half of the maximum hp.
func (g *Game) Descend() error {
	w := g.World
	scene := g.Turns.Scene()
	player := w.Player()

	w.Log.Add("You take a moment to rest, and recover your strength.", palette.Violet)
	scene.Heal(player, scene.MaxHP(player)/2)
	w.Log.Add("After a rare moment of peace, you descend deeper into the heart of the dungeon...", palette.Red)

	w.Depth++
	w.Grid, _ = g.Generator.Generate(w.Store, w.Depth)
	scene.Grid = w.Grid
	g.FOV.Invalidate()

	log.Printf("Descended to depth %d", w.Depth)
	return nil
}
