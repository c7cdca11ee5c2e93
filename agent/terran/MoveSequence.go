package terran

// Position is a position in the move sequence
type Position int

const (
	// Decide encodes the state, learns, and selects a new action
	Decide Position = iota

	// Commit issues the build, train or attack order of the action
	Commit

	// FollowUp returns builders to gathering resources
	FollowUp
)

func (p Position) String() string {
	switch p {
	case Decide:
		return "Decide"
	case Commit:
		return "Commit"
	default:
		return "FollowUp"
	}
}

// MoveSequence expands one abstract action into a short sequence of
// concrete sub-steps issued on successive ticks. Actions are only ever
// selected at the Decide position.
type MoveSequence struct {
	pos Position
}

// Position returns the current position in the sequence
func (m *MoveSequence) Position() Position {
	return m.pos
}

// Advance moves to the next position after a sub-step has been issued
// for an action whose sequence has the given number of steps. The
// sequence returns to Decide after its last step.
func (m *MoveSequence) Advance(steps int) {
	next := m.pos + 1
	if int(next) >= steps || next > FollowUp {
		next = Decide
	}
	m.pos = next
}

// Reset returns the sequence to Decide
func (m *MoveSequence) Reset() {
	m.pos = Decide
}
