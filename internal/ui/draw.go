package ui

import (
	"image/color"
	"sort"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/render"
)

// drawMap paints explored tiles and the entities the player can see
func drawMap(c render.Console, g *game.Game) {
	w := g.World
	for x := 0; x < w.Grid.Width; x++ {
		for y := 0; y < w.Grid.Height; y++ {
			if !w.Grid.IsExplored(x, y) {
				continue
			}
			visible := g.FOV.IsVisible(x, y)
			wall := w.Grid.BlocksSight(x, y)
			c.SetBackground(x, y, tileColor(visible, wall))
		}
	}

	for _, e := range drawOrder(g) {
		c.Print(e.X, e.Y, string(e.Glyph), e.Color)
	}
}

// drawOrder returns the drawable entities with non-blocking ones first, so
// monsters and the player are drawn over items and corpses
func drawOrder(g *game.Game) []*entity.Entity {
	w := g.World
	var out []*entity.Entity
	for _, e := range w.Store.Entities {
		if g.FOV.IsVisible(e.X, e.Y) || (e.AlwaysVisible && w.Grid.IsExplored(e.X, e.Y)) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return !out[i].Blocks && out[j].Blocks
	})
	return out
}

func tileColor(visible, wall bool) color.RGBA {
	switch {
	case !visible && wall:
		return palette.DarkWall
	case !visible:
		return palette.DarkGround
	case wall:
		return palette.LightWall
	default:
		return palette.LightGround
	}
}
