package turn

import "context"

// IntentKind is what the player asked for
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentPickUp
	IntentDrop
	IntentUseItem
	IntentDescend
	IntentShowInfo
	IntentWait
	IntentQuit
)

var intentNames = map[IntentKind]string{
	IntentNone:     "none",
	IntentMove:     "move",
	IntentPickUp:   "pick up",
	IntentDrop:     "drop",
	IntentUseItem:  "use item",
	IntentDescend:  "descend",
	IntentShowInfo: "show info",
	IntentWait:     "wait",
	IntentQuit:     "quit",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is one decoded player command
type Intent struct {
	Kind   IntentKind
	DX, DY int // Move
	Index  int // Drop and UseItem: inventory slot
}

// Move returns a move (or attack) intent
func Move(dx, dy int) Intent {
	return Intent{Kind: IntentMove, DX: dx, DY: dy}
}

// UseItem returns an intent to use inventory slot i
func UseItem(i int) Intent {
	return Intent{Kind: IntentUseItem, Index: i}
}

// Drop returns an intent to drop inventory slot i
func Drop(i int) Intent {
	return Intent{Kind: IntentDrop, Index: i}
}

// Simple returns an intent that carries no arguments
func Simple(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// IntentSource blocks until the player decides what to do
type IntentSource interface {
	NextIntent(ctx context.Context) (Intent, error)
}

// Result is what resolving one intent did
type Result struct {
	TookTurn bool  // The AI phase ran
	Exit     bool  // The player asked to leave
	Err      error // Why the intent was refused, if it was
}
