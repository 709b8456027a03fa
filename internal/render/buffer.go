package render

import (
	"image/color"
	"strings"
)

var black = color.RGBA{0, 0, 0, 255}

// Cell is one character cell
type Cell struct {
	Ch rune
	Fg color.RGBA
	Bg color.RGBA
}

// Buffer is an in-memory Console. Backends draw a frame into a buffer and
// then copy it to their surface.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a blank buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

// Size returns the buffer dimensions in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear blanks every cell
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Fg: black, Bg: black}
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// SetCell draws a glyph
func (b *Buffer) SetCell(x, y int, ch rune, fg, bg color.RGBA) {
	if i, ok := b.index(x, y); ok {
		b.cells[i] = Cell{Ch: ch, Fg: fg, Bg: bg}
	}
}

// SetBackground changes a cell's background only
func (b *Buffer) SetBackground(x, y int, bg color.RGBA) {
	if i, ok := b.index(x, y); ok {
		b.cells[i].Bg = bg
	}
}

// Print writes text over the existing backgrounds
func (b *Buffer) Print(x, y int, text string, fg color.RGBA) {
	for _, r := range text {
		if i, ok := b.index(x, y); ok {
			b.cells[i].Ch = r
			b.cells[i].Fg = fg
		}
		x++
	}
}

// FillRect paints the background of a block of cells
func (b *Buffer) FillRect(x, y, width, height int, bg color.RGBA) {
	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			b.SetBackground(cx, cy, bg)
		}
	}
}

// At returns the cell at (x, y); out of range cells are blank
func (b *Buffer) At(x, y int) Cell {
	if i, ok := b.index(x, y); ok {
		return b.cells[i]
	}
	return Cell{Ch: ' '}
}

// Row returns the glyphs of row y as a string
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.At(x, y).Ch)
	}
	return sb.String()
}

// Each calls fn for every cell, row by row
func (b *Buffer) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fn(x, y, b.cells[y*b.width+x])
		}
	}
}
