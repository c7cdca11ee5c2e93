package environment

import (
	"github.com/samuelfneumann/sc2learn/timestep"
)

// FunctionEnder ends an episode whenever a condition, usually on the
// underlying game state, holds.
type FunctionEnder struct {
	end     func(*timestep.TimeStep) bool
	endType timestep.EndType
	reward  float64
}

// NewFunctionEnder returns a new FunctionEnder which ends episodes with
// end type endType and terminal reward reward when f returns true.
func NewFunctionEnder(f func(*timestep.TimeStep) bool,
	endType timestep.EndType, reward float64) Ender {
	return &FunctionEnder{f, endType, reward}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last, its reward is the terminal reward, and its
// EndType is the appropriate ending type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if f.end(t) {
		t.StepType = timestep.Last
		t.Reward = f.reward
		t.SetEnd(f.endType)
		return true
	}
	return false
}

// FirstEnder returns an Ender which ends an episode as the first of
// enders that would end it
func FirstEnder(enders ...Ender) Ender {
	return firstEnder(enders)
}

type firstEnder []Ender

func (f firstEnder) End(t *timestep.TimeStep) bool {
	for _, e := range f {
		if e.End(t) {
			return true
		}
	}
	return false
}
