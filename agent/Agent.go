// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/state"
	"github.com/samuelfneumann/sc2learn/timestep"
)

// NoAction is the action recorded before any action has been taken in
// an episode
const NoAction = -1

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action values
// are updated.
type Learner interface {
	// Update learns from the transition (prior, action, reward, next).
	// A nil next denotes the terminal transition of an episode. A nil
	// prior or an action of NoAction means there is nothing to learn.
	Update(prior *state.Key, action int, reward float64, next *state.Key)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should share the same value table so that any
// changes the learner makes are reflected in the actions the Policy
// chooses
type Policy interface {
	// SelectAction selects an action in state key which is not in
	// excluded, unless every action is excluded
	SelectAction(key state.Key, excluded []int) int
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}

// Player is an agent that plays a game tick by tick, returning exactly
// one concrete command for each TimeStep it is given
type Player interface {
	Step(t timestep.TimeStep) sc2.Command
}
