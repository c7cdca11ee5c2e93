// Package environment outlines the interfaces and structs needed to implement
// concrete game hosts
package environment

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/timestep"
)

// Ender determines whether an episode should end. If the episode should
// end, End() modifies the argument TimeStep so that it is the last in the
// episode and records how the episode ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a game host that the agent plays against. The
// host is driven one tick at a time: each call to Step() blocks until
// the command has been applied and the next observation is available.
type Environment interface {
	// Reset starts a new episode and returns its first TimeStep
	Reset() (timestep.TimeStep, error)

	// Step applies a command and returns the next TimeStep together
	// with whether the episode has ended
	Step(cmd sc2.Command) (timestep.TimeStep, bool, error)

	// LastTimeStep returns the most recent TimeStep of the host
	LastTimeStep() timestep.TimeStep
}
