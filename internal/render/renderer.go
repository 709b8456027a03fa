// Package render abstracts the frontend the game is drawn on. Everything is
// a grid of character cells, so a window and a terminal can both serve.
package render

import (
	"errors"
	"image/color"
)

// ErrQuit is returned from Game.Update to end the game loop cleanly
var ErrQuit = errors.New("quit")

// Console is a grid of character cells the game draws into every frame.
// Cells outside the console are ignored.
type Console interface {
	// Size returns the console dimensions in cells.
	Size() (width, height int)

	// Clear blanks every cell to black.
	Clear()

	// SetCell draws a glyph with foreground and background colors.
	SetCell(x, y int, ch rune, fg, bg color.RGBA)

	// SetBackground changes a cell's background, keeping its glyph.
	SetBackground(x, y int, bg color.RGBA)

	// Print writes text left to right starting at (x, y).
	Print(x, y int, text string, fg color.RGBA)

	// FillRect paints the background of a block of cells.
	FillRect(x, y, width, height int, bg color.RGBA)
}

// Key represents a non-printable keyboard key. Printable input is reported
// as a rune instead.
type Key int

// Key constants for the keys the game reads
const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	default:
		return "none"
	}
}

// KeyEvent is one key press: either a special Key or a printable Rune
type KeyEvent struct {
	Key  Key
	Rune rune
}

// KeyPress builds an event for a special key
func KeyPress(k Key) KeyEvent {
	return KeyEvent{Key: k}
}

// RunePress builds an event for a printable character
func RunePress(r rune) KeyEvent {
	return KeyEvent{Rune: r}
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// InputManager reports the input received since the previous frame.
type InputManager interface {
	// JustPressed returns the key presses of this frame, oldest first.
	JustPressed() []KeyEvent

	// CursorCell returns the console cell under the mouse cursor.
	CursorCell() (x, y int)

	// IsMouseButtonJustPressed returns whether the button went down this frame.
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the game by one frame. Returning ErrQuit ends the
	// loop without error.
	Update() error

	// Draw draws the game into the console. It is called every frame.
	Draw(c Console)
}

// Engine represents the frontend that owns the console, the input and the
// frame loop.
type Engine interface {
	// SetWindowTitle sets the window title, where the frontend has one.
	SetWindowTitle(title string)

	// Input returns the frontend's input manager.
	Input() InputManager

	// RunGame runs the frame loop until the game quits or fails.
	// This is a blocking call.
	RunGame(game Game) error
}
