package ui

import (
	"fmt"
	"image/color"

	"chosenoffset.com/tombs/internal/core/palette"
	"chosenoffset.com/tombs/internal/entity/inventory"
	"chosenoffset.com/tombs/internal/render"
)

// MaxMenuOptions is one option per letter
const MaxMenuOptions = 26

// menuBackground is drawn behind every menu window
var (
	menuBackground = color.RGBA{24, 24, 32, 255}
	menuHighlight  = color.RGBA{64, 64, 96, 255}
)

// Menu is a centered window with a wrapped header and lettered options.
// A letter picks its option directly; the arrow keys move a highlight that
// Enter picks. Any other key cancels unless Required is set.
type Menu struct {
	Header   string
	Options  []string
	Width    int
	Required bool

	selected int
}

// NewMenu creates a menu
func NewMenu(header string, options []string, width int) *Menu {
	if len(options) > MaxMenuOptions {
		panic(fmt.Sprintf("ui: a menu cannot have more than %d options", MaxMenuOptions))
	}
	return &Menu{Header: header, Options: options, Width: width}
}

// Selected returns the highlighted option
func (m *Menu) Selected() int {
	return m.selected
}

// Handle processes one key press. done is true when the menu closes;
// choice is then the picked option or -1 when cancelled.
func (m *Menu) Handle(ev render.KeyEvent) (choice int, done bool) {
	switch {
	case ev.Key == render.KeyUp:
		if len(m.Options) > 0 {
			m.selected = (m.selected + len(m.Options) - 1) % len(m.Options)
		}
		return -1, false
	case ev.Key == render.KeyDown:
		if len(m.Options) > 0 {
			m.selected = (m.selected + 1) % len(m.Options)
		}
		return -1, false
	case ev.Key == render.KeyEnter:
		if len(m.Options) > 0 {
			return m.selected, true
		}
	case ev.Rune >= 'a' && ev.Rune <= 'z', ev.Rune >= 'A' && ev.Rune <= 'Z':
		index := int(toLower(ev.Rune) - 'a')
		if index < len(m.Options) {
			return index, true
		}
	}

	if m.Required {
		return -1, false
	}
	return -1, true
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// Draw renders the window centered on the console
func (m *Menu) Draw(c render.Console) {
	header := wrapText(m.Header, m.Width)
	if m.Header == "" {
		header = nil
	}
	height := len(header) + len(m.Options)

	w, h := c.Size()
	x := centered(w, m.Width)
	y := centered(h, height)

	c.FillRect(x-1, y-1, m.Width+2, height+2, menuBackground)
	for i, line := range header {
		c.Print(x, y+i, line, palette.White)
	}
	for i, option := range m.Options {
		row := y + len(header) + i
		if i == m.selected {
			c.FillRect(x, row, m.Width, 1, menuHighlight)
		}
		c.Print(x, row, fmt.Sprintf("(%c) %s", inventory.SlotLetter(i), option), palette.White)
	}
}

// MessageBox is a menu with no options; any key closes it
func MessageBox(text string, width int) *Menu {
	return NewMenu(text, nil, width)
}
