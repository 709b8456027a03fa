package ui

import (
	"testing"

	"chosenoffset.com/tombs/internal/entity/turn"
	"chosenoffset.com/tombs/internal/render"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name   string
		ev     render.KeyEvent
		intent turn.Intent
		open   State
		ok     bool
	}{
		{"arrow up", render.KeyPress(render.KeyUp), turn.Move(0, -1), 0, true},
		{"arrow right", render.KeyPress(render.KeyRight), turn.Move(1, 0), 0, true},
		{"vi south west", render.RunePress('b'), turn.Move(-1, 1), 0, true},
		{"vi north east", render.RunePress('u'), turn.Move(1, -1), 0, true},
		{"wait", render.RunePress('.'), turn.Simple(turn.IntentWait), 0, true},
		{"pick up", render.RunePress('g'), turn.Simple(turn.IntentPickUp), 0, true},
		{"pick up comma", render.RunePress(','), turn.Simple(turn.IntentPickUp), 0, true},
		{"descend", render.RunePress('<'), turn.Simple(turn.IntentDescend), 0, true},
		{"info", render.RunePress('c'), turn.Simple(turn.IntentShowInfo), 0, true},
		{"inventory", render.RunePress('i'), turn.Intent{}, StateInventory, true},
		{"drop", render.RunePress('d'), turn.Intent{}, StateDrop, true},
		{"unbound rune", render.RunePress('z'), turn.Intent{}, 0, false},
		{"unbound key", render.KeyPress(render.KeyBackspace), turn.Intent{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := commandFor(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if cmd.intent != tt.intent || cmd.open != tt.open {
				t.Errorf("Expected %+v/%s, got %+v/%s", tt.intent, tt.open, cmd.intent, cmd.open)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"header\n", 20, []string{"header"}},
		{"one\ntwo", 20, []string{"one", "two"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		got := wrapText(tt.text, tt.width)
		if len(got) != len(tt.want) {
			t.Errorf("wrapText(%q, %d): expected %q, got %q", tt.text, tt.width, tt.want, got)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("wrapText(%q, %d): expected %q, got %q", tt.text, tt.width, tt.want, got)
				break
			}
		}
	}
}
