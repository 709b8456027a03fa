package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/tombs/internal/render"
)

// Cell size in pixels. The debug font is 6x16; the extra columns keep
// glyphs from touching.
const (
	CellWidth  = 8
	CellHeight = 16
)

// EbitenEngine implements the Engine interface using Ebiten. Each frame is
// drawn into a cell buffer and then blitted glyph by glyph.
type EbitenEngine struct {
	cols         int
	rows         int
	windowWidth  int
	windowHeight int

	buffer *render.Buffer
	input  *EbitenInputManager
	glyphs map[rune]*ebiten.Image
}

// NewEngine creates a new Ebiten-based game engine with a console of
// cols x rows cells.
func NewEngine(cols, rows, windowWidth, windowHeight int) *EbitenEngine {
	return &EbitenEngine{
		cols:         cols,
		rows:         rows,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
		buffer:       render.NewBuffer(cols, rows),
		input:        &EbitenInputManager{},
		glyphs:       make(map[rune]*ebiten.Image),
	}
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Input returns the engine's input manager.
func (e *EbitenEngine) Input() render.InputManager {
	return e.input
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&gameAdapter{engine: e, game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// glyph returns a white image of ch, rendered once and cached
func (e *EbitenEngine) glyph(ch rune) *ebiten.Image {
	if img, ok := e.glyphs[ch]; ok {
		return img
	}
	img := ebiten.NewImage(CellWidth, CellHeight)
	ebitenutil.DebugPrintAt(img, string(ch), 1, 0)
	e.glyphs[ch] = img
	return img
}

// blit copies the cell buffer to the screen
func (e *EbitenEngine) blit(screen *ebiten.Image) {
	screen.Fill(color.Black)
	e.buffer.Each(func(x, y int, c render.Cell) {
		px, py := float32(x*CellWidth), float32(y*CellHeight)
		if c.Bg != (color.RGBA{0, 0, 0, 255}) {
			vector.DrawFilledRect(screen, px, py, CellWidth, CellHeight, c.Bg, false)
		}
		if c.Ch == ' ' || c.Ch == 0 {
			return
		}
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(float64(px), float64(py))
		opts.ColorScale.ScaleWithColor(c.Fg)
		screen.DrawImage(e.glyph(c.Ch), opts)
	})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	engine *EbitenEngine
	game   render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	a.engine.input.update()
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.engine.buffer.Clear()
	a.game.Draw(a.engine.buffer)
	a.engine.blit(screen)
}

// Layout implements ebiten.Game. The logical screen is always the console
// size; ebiten scales it to the window.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.engine.cols * CellWidth, a.engine.rows * CellHeight
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	events []render.KeyEvent
	keys   []ebiten.Key
	chars  []rune
}

// update collects the input of the current tick
func (m *EbitenInputManager) update() {
	m.events = m.events[:0]

	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := ebitenKeyToKey(k); key != render.KeyNone {
			m.events = append(m.events, render.KeyPress(key))
		}
	}

	m.chars = ebiten.AppendInputChars(m.chars[:0])
	for _, r := range m.chars {
		m.events = append(m.events, render.RunePress(r))
	}
}

// JustPressed returns the key presses of this tick.
func (m *EbitenInputManager) JustPressed() []render.KeyEvent {
	return m.events
}

// CursorCell returns the cell under the cursor.
func (m *EbitenInputManager) CursorCell() (x, y int) {
	px, py := ebiten.CursorPosition()
	return px / CellWidth, py / CellHeight
}

// IsMouseButtonJustPressed returns whether the specified mouse button went
// down this tick.
func (m *EbitenInputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(mouseButtonToEbiten(button))
}

// ebitenKeyToKey converts the non-printable ebiten keys the game reads.
func ebitenKeyToKey(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyArrowUp:
		return render.KeyUp
	case ebiten.KeyArrowDown:
		return render.KeyDown
	case ebiten.KeyArrowLeft:
		return render.KeyLeft
	case ebiten.KeyArrowRight:
		return render.KeyRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return render.KeyEnter
	case ebiten.KeyEscape:
		return render.KeyEscape
	case ebiten.KeyBackspace:
		return render.KeyBackspace
	default:
		return render.KeyNone
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
