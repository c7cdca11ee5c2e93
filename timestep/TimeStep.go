// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/environment/sc2"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes how an episode ended
type EndType int

const (
	// Running means the episode has not ended
	Running EndType = iota

	// TerminalStateReached means one side's base was destroyed
	TerminalStateReached

	// Timeout means the episode was cut off by a step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Running"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Reward is only meaningful on the Last step of an episode, where it
// holds the episode outcome: +1 for a win, 0 for a draw, -1 for a loss.
type TimeStep struct {
	StepType
	Reward      float64
	Observation sc2.Observation
	Number      int
	end         EndType
}

// New constructs a new TimeStep
func New(t StepType, r float64, o sc2.Observation, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records how the episode ended. It panics if the TimeStep is
// not the last in its episode.
func (t *TimeStep) SetEnd(e EndType) {
	if !t.Last() && e != Running {
		panic(fmt.Sprintf("setEnd: cannot set end type %v on a %v timestep",
			e, t.StepType))
	}
	t.end = e
}

// End returns how the episode ended
func (t *TimeStep) End() EndType {
	return t.end
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Number)
}

// Outcome is the result of an episode from the agent's point of view
type Outcome int

const (
	Unknown Outcome = iota
	Win
	Draw
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Draw:
		return "Draw"
	case Loss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Classify converts a terminal reward into an Outcome. Rewards other
// than +1, 0, and -1 are Unknown.
func Classify(reward float64) Outcome {
	switch reward {
	case 1:
		return Win
	case 0:
		return Draw
	case -1:
		return Loss
	default:
		return Unknown
	}
}

// Outcome returns the outcome of the episode a Last TimeStep ends. It
// returns Unknown for any other TimeStep.
func (t *TimeStep) Outcome() Outcome {
	if !t.Last() {
		return Unknown
	}
	return Classify(t.Reward)
}
