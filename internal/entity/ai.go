package entity

// AIKind tags the AI state
type AIKind int

const (
	AIBasic AIKind = iota
	AIConfused
)

// AI is the behaviour state of a non-player entity. Confused wraps the AI
// it replaced so it can be restored when the confusion wears off; the wrap
// may nest to any depth.
type AI struct {
	Kind           AIKind
	Previous       *AI // Confused only
	RemainingTurns int // Confused only
}

// BasicAI returns a fresh basic AI
func BasicAI() *AI {
	return &AI{Kind: AIBasic}
}

// ConfusedAI wraps previous in a confusion lasting turns turns.
// A nil previous is treated as Basic.
func ConfusedAI(previous *AI, turns int) *AI {
	if previous == nil {
		previous = BasicAI()
	}
	return &AI{Kind: AIConfused, Previous: previous, RemainingTurns: turns}
}

// Depth returns how many Confused layers wrap the innermost AI
func (a *AI) Depth() int {
	depth := 0
	for cur := a; cur != nil && cur.Kind == AIConfused; cur = cur.Previous {
		depth++
	}
	return depth
}

func (k AIKind) String() string {
	switch k {
	case AIBasic:
		return "basic"
	case AIConfused:
		return "confused"
	default:
		return "unknown"
	}
}
