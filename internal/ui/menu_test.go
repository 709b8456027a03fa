package ui

import (
	"strings"
	"testing"

	"chosenoffset.com/tombs/internal/render"
)

func TestMenuLetters(t *testing.T) {
	m := NewMenu("Pick one", []string{"first", "second", "third"}, 20)

	if choice, done := m.Handle(render.RunePress('b')); !done || choice != 1 {
		t.Errorf("Expected option 1, got %d (done=%v)", choice, done)
	}
	if choice, done := m.Handle(render.RunePress('C')); !done || choice != 2 {
		t.Errorf("Expected uppercase to pick option 2, got %d (done=%v)", choice, done)
	}
	if choice, done := m.Handle(render.RunePress('z')); !done || choice != -1 {
		t.Errorf("Expected an out of range letter to cancel, got %d (done=%v)", choice, done)
	}
	if choice, done := m.Handle(render.KeyPress(render.KeyEscape)); !done || choice != -1 {
		t.Errorf("Expected escape to cancel, got %d (done=%v)", choice, done)
	}
}

func TestMenuArrows(t *testing.T) {
	m := NewMenu("", []string{"first", "second"}, 20)

	if _, done := m.Handle(render.KeyPress(render.KeyUp)); done {
		t.Fatal("Expected arrows to keep the menu open")
	}
	if m.Selected() != 1 {
		t.Errorf("Expected up to wrap to the last option, got %d", m.Selected())
	}
	m.Handle(render.KeyPress(render.KeyDown))
	if choice, done := m.Handle(render.KeyPress(render.KeyEnter)); !done || choice != 0 {
		t.Errorf("Expected enter to pick option 0, got %d (done=%v)", choice, done)
	}
}

func TestMenuRequired(t *testing.T) {
	m := NewMenu("", []string{"hp", "power"}, 20)
	m.Required = true

	if _, done := m.Handle(render.KeyPress(render.KeyEscape)); done {
		t.Error("Expected a required menu to ignore escape")
	}
	if choice, done := m.Handle(render.RunePress('a')); !done || choice != 0 {
		t.Errorf("Expected option 0, got %d (done=%v)", choice, done)
	}
}

func TestMessageBoxClosesOnAnyKey(t *testing.T) {
	m := MessageBox("No saved game to load.", NoticeWidth)
	if _, done := m.Handle(render.KeyPress(render.KeyEnter)); !done {
		t.Error("Expected the message box to close")
	}
}

func TestMenuDraw(t *testing.T) {
	buf := render.NewBuffer(ScreenWidth, ScreenHeight)
	m := NewMenu("Header", []string{"sword", "shield"}, 20)
	m.Draw(buf)

	var rows []string
	for y := 0; y < ScreenHeight; y++ {
		rows = append(rows, buf.Row(y))
	}
	screen := strings.Join(rows, "\n")
	for _, want := range []string{"Header", "(a) sword", "(b) shield"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
}

func TestMenuTooManyOptions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for more than 26 options")
		}
	}()
	NewMenu("", make([]string, MaxMenuOptions+1), 20)
}
