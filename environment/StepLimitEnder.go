package environment

import "github.com/samuelfneumann/sc2learn/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits. Episodes ended this way are draws.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last, its reward is the draw outcome, and its end
// type is timestep.Timeout
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		t.Reward = 0
		t.SetEnd(timestep.Timeout)
		return true
	}
	return false
}
