// Package terminal runs the game on a text terminal using tcell.
package terminal

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tombs/internal/render"
)

// DefaultFrameRate matches the classic 20 frames per second limit
const DefaultFrameRate = 20

// Engine implements render.Engine on a tcell screen
type Engine struct {
	screen tcell.Screen
	cols   int
	rows   int
	tick   time.Duration

	buffer *render.Buffer
	input  *InputManager
}

// NewEngine opens the terminal and creates an engine with a console of
// cols x rows cells
func NewEngine(cols, rows int) (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return NewEngineWithScreen(screen, cols, rows)
}

// NewEngineWithScreen creates an engine over an existing screen, such as a
// tcell simulation screen
func NewEngineWithScreen(screen tcell.Screen, cols, rows int) (*Engine, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &Engine{
		screen: screen,
		cols:   cols,
		rows:   rows,
		tick:   time.Second / DefaultFrameRate,
		buffer: render.NewBuffer(cols, rows),
		input:  &InputManager{},
	}, nil
}

// SetWindowTitle sets the terminal title where supported
func (e *Engine) SetWindowTitle(title string) {
	e.screen.SetTitle(title)
}

// Input returns the engine's input manager
func (e *Engine) Input() render.InputManager {
	return e.input
}

// RunGame runs the frame loop until the game returns an error. The screen
// is released when the loop ends.
func (e *Engine) RunGame(game render.Game) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	// Fini makes PollEvent return nil, ending the poller
	defer e.screen.Fini()
	defer close(done)
	go e.poll(events, done)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				e.screen.Sync()
				continue
			}
			e.input.handle(ev)
		case <-ticker.C:
			if err := e.frame(game); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// poll forwards screen events until the screen is finalized or done is
// closed
func (e *Engine) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame runs one Update/Draw cycle and flushes it to the terminal
func (e *Engine) frame(game render.Game) error {
	e.input.beginFrame()
	if err := game.Update(); err != nil {
		return err
	}

	e.buffer.Clear()
	game.Draw(e.buffer)

	e.screen.Clear()
	e.buffer.Each(func(x, y int, c render.Cell) {
		e.screen.SetContent(x, y, c.Ch, nil, style(c.Fg, c.Bg))
	})
	e.screen.Show()
	return nil
}

func style(fg, bg color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

// InputManager collects tcell events between frames
type InputManager struct {
	pending []render.KeyEvent
	events  []render.KeyEvent

	cursorX, cursorY int

	buttons      tcell.ButtonMask
	pressed      tcell.ButtonMask
	framePressed tcell.ButtonMask
}

// handle records one event for the next frame
func (m *InputManager) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if event, ok := keyEvent(ev); ok {
			m.pending = append(m.pending, event)
		}
	case *tcell.EventMouse:
		m.cursorX, m.cursorY = ev.Position()
		buttons := ev.Buttons()
		m.pressed |= buttons &^ m.buttons
		m.buttons = buttons
	}
}

// beginFrame makes the events received since the last frame current
func (m *InputManager) beginFrame() {
	m.events = append(m.events[:0], m.pending...)
	m.pending = m.pending[:0]
	m.framePressed = m.pressed
	m.pressed = 0
}

// JustPressed returns the key presses of this frame
func (m *InputManager) JustPressed() []render.KeyEvent {
	return m.events
}

// CursorCell returns the cell under the mouse
func (m *InputManager) CursorCell() (int, int) {
	return m.cursorX, m.cursorY
}

// IsMouseButtonJustPressed returns whether the button went down this frame
func (m *InputManager) IsMouseButtonJustPressed(button render.MouseButton) bool {
	switch button {
	case render.MouseButtonLeft:
		return m.framePressed&tcell.Button1 != 0
	case render.MouseButtonRight:
		return m.framePressed&tcell.Button2 != 0
	case render.MouseButtonMiddle:
		return m.framePressed&tcell.Button3 != 0
	default:
		return false
	}
}

// keyEvent converts a tcell key to a render key event
func keyEvent(ev *tcell.EventKey) (render.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return render.RunePress(ev.Rune()), true
	case tcell.KeyUp:
		return render.KeyPress(render.KeyUp), true
	case tcell.KeyDown:
		return render.KeyPress(render.KeyDown), true
	case tcell.KeyLeft:
		return render.KeyPress(render.KeyLeft), true
	case tcell.KeyRight:
		return render.KeyPress(render.KeyRight), true
	case tcell.KeyEnter:
		return render.KeyPress(render.KeyEnter), true
	case tcell.KeyEscape:
		return render.KeyPress(render.KeyEscape), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return render.KeyPress(render.KeyBackspace), true
	default:
		return render.KeyEvent{}, false
	}
}
