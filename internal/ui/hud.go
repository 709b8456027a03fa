package ui

import (
	"fmt"
	"image/color"
	"strings"

	"chosenoffset.com/tombs/internal/core/msglog"
	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/game"
	"chosenoffset.com/tombs/internal/render"
)

// HUD draws the bottom panel: the hp bar, the depth, the turn, names under
// the mouse and the newest messages
type HUD struct {
	// Hint replaces the names line, e.g. while targeting
	Hint string

	mouseX, mouseY int
}

// SetMouse records the cell under the mouse
func (h *HUD) SetMouse(x, y int) {
	h.mouseX, h.mouseY = x, y
}

// Draw renders the panel
func (h *HUD) Draw(c render.Console, g *game.Game) {
	c.FillRect(0, PanelY, ScreenWidth, PanelHeight, palette.Black)

	drawMessages(c, g.World.Log)

	player := g.World.Player()
	scene := g.Turns.Scene()
	hp := 0
	if player.Fighter != nil {
		hp = player.Fighter.HP
	}
	drawBar(c, 1, PanelY+1, BarWidth, "HP", hp, scene.MaxHP(player), palette.LightRed, palette.DarkerRed)

	c.Print(1, PanelY+3, fmt.Sprintf("Dungeon level: %d", g.World.Depth), palette.LightGrey)
	c.Print(1, PanelY+4, fmt.Sprintf("Turn: %d", g.Turns.GetTurnNumber()), palette.LightGrey)

	top := h.Hint
	if top == "" {
		top = namesUnder(g, h.mouseX, h.mouseY)
	}
	c.Print(1, PanelY, truncate(top, ScreenWidth-2), palette.LightGrey)
}

// drawBar renders a labelled bar filled in proportion to value over maximum
func drawBar(c render.Console, x, y, width int, name string, value, maximum int, bar, back color.RGBA) {
	filled := 0
	if maximum > 0 {
		filled = int(float64(value) / float64(maximum) * float64(width))
	}
	if filled > width {
		filled = width
	}

	c.FillRect(x, y, width, 1, back)
	if filled > 0 {
		c.FillRect(x, y, filled, 1, bar)
	}

	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	c.Print(x+centered(width, len(label)), y, label, palette.White)
}

// drawMessages prints the newest messages, wrapped, bottom line newest
func drawMessages(c render.Console, log *msglog.Log) {
	y := MsgHeight
	for i := log.Len() - 1; i >= 0 && y > 0; i-- {
		m := log.Messages[i]
		lines := wrapText(m.Text, MsgWidth)
		y -= len(lines)
		if y < 0 {
			break
		}
		for j, line := range lines {
			c.Print(MsgX, PanelY+1+y+j, line, m.Color)
		}
	}
}

// namesUnder lists the visible entities on a cell
func namesUnder(g *game.Game, x, y int) string {
	if !g.FOV.IsVisible(x, y) {
		return ""
	}
	var names []string
	for _, e := range g.World.Store.Entities {
		if e.At(x, y) {
			names = append(names, e.Name)
		}
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
