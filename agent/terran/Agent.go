// Package terran implements a tick-driven agent which plays a Terran
// skirmish by learning which high-level action to take with tabular
// Q-learning.
//
// On each deciding tick the agent encodes the observation into a
// state.Key, learns from the previous transition with a reward of zero,
// and selects a new action among those not excluded by the current
// counts. The selected action is then expanded over the following ticks
// into concrete commands by a MoveSequence. On the last tick of an
// episode the agent learns from the episode outcome and resets.
package terran

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/sc2learn/agent"
	"github.com/samuelfneumann/sc2learn/agent/tabular/qlearning"
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/state"
	"github.com/samuelfneumann/sc2learn/timestep"
)

// Config represents a configuration of the Terran agent
type Config struct {
	// MinimapSize is the side length of the minimap
	MinimapSize int

	// LearnUnknownOutcomes determines whether terminal rewards other
	// than +1, 0, or -1 are learned from. Unknown outcomes are always
	// reported.
	LearnUnknownOutcomes bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{MinimapSize: 64, LearnUnknownOutcomes: true}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.MinimapSize < 2 || c.MinimapSize%2 != 0 {
		return fmt.Errorf("minimap size must be even and at least 2, got %d",
			c.MinimapSize)
	}
	return nil
}

// Agent is the Terran decision loop. It implements agent.Player.
type Agent struct {
	learner agent.Learner
	policy  agent.Policy
	catalog Catalog
	config  Config
	rng     *rand.Rand
	logger  zerolog.Logger

	// Per-episode state
	encoder    state.Encoder
	oriented   bool
	base       sc2.Point
	hasBase    bool
	prevState  *state.Key
	prevAction int
	moves      MoveSequence
}

// New creates a new Agent which learns with learner and acts with
// policy. Both should share the same value table, sized for the catalog
// returned by NewCatalog(c.MinimapSize). The seed drives the random
// choice of concrete targets such as which worker to select.
func New(learner agent.Learner, policy agent.Policy, c Config, seed uint64,
	logger zerolog.Logger) (*Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if learner == nil || policy == nil {
		return nil, fmt.Errorf("new: learner and policy are required")
	}

	return &Agent{
		learner:    learner,
		policy:     policy,
		catalog:    NewCatalog(c.MinimapSize),
		config:     c,
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
		prevAction: agent.NoAction,
	}, nil
}

// Catalog returns the action catalog of the agent
func (a *Agent) Catalog() Catalog {
	return a.catalog
}

// Position returns the current position of the move sequence
func (a *Agent) Position() Position {
	return a.moves.Position()
}

// Previous returns the last state and action the agent decided on in
// the current episode. The state is nil and the action is
// agent.NoAction if no decision has been made yet.
func (a *Agent) Previous() (*state.Key, int) {
	return a.prevState, a.prevAction
}

// Orientation returns the orientation fixed at the start of the episode
func (a *Agent) Orientation() state.Orientation {
	return a.encoder.Orientation()
}

// Step returns the command to issue for TimeStep t
func (a *Agent) Step(t timestep.TimeStep) sc2.Command {
	if t.Last() {
		a.end(t)
		return sc2.NoOp()
	}

	obs := t.Observation
	if t.First() {
		// An episode may have been abandoned without a last step
		a.reset()
		a.start(obs)
	} else if !a.oriented {
		a.start(obs)
	}

	var cmd sc2.Command
	switch a.moves.Position() {
	case Decide:
		a.decide(obs)
		cmd = a.selectUnits(obs)

	case Commit:
		cmd = a.commit(obs)

	case FollowUp:
		cmd = a.followUp(obs)
	}

	kind, _, _ := a.catalog.Split(a.prevAction)
	a.moves.Advance(kind.Steps())

	return cmd
}

// start fixes the orientation and base location for the episode
func (a *Agent) start(obs sc2.Observation) {
	a.encoder = state.NewEncoder(state.DetectOrientation(obs))
	a.oriented = true
	a.base, a.hasBase = obs.Centre(sc2.CommandCenter)

	a.logger.Debug().
		Stringer("orientation", a.encoder.Orientation()).
		Bool("base", a.hasBase).
		Msg("episode started")
}

// decide learns from the previous transition and selects the next action
func (a *Agent) decide(obs sc2.Observation) {
	key := a.encoder.Encode(obs)

	if a.prevState != nil {
		a.learner.Update(a.prevState, a.prevAction, 0, &key)
	}

	excluded := Exclusions(CountsOf(key, obs.Player), a.catalog)
	action := a.policy.SelectAction(key, excluded)

	a.prevState = &key
	a.prevAction = action

	a.logger.Debug().
		Stringer("state", key).
		Ints("excluded", excluded).
		Stringer("action", a.catalog[action]).
		Msg("decided")
}

// end learns from the terminal transition and resets the episode state
func (a *Agent) end(t timestep.TimeStep) {
	reward := t.Reward
	outcome := timestep.Classify(reward)

	learn := true
	if outcome == timestep.Unknown {
		a.logger.Warn().
			Float64("reward", reward).
			Int("step", t.Number).
			Bool("learned", a.config.LearnUnknownOutcomes).
			Msg("unknown episode outcome")
		learn = a.config.LearnUnknownOutcomes
	}

	if learn && a.prevState != nil {
		a.learner.Update(a.prevState, a.prevAction, reward, qlearning.Terminal)
	}

	a.logger.Debug().
		Stringer("outcome", outcome).
		Int("steps", t.Number).
		Msg("episode ended")

	a.reset()
}

// reset clears all per-episode state
func (a *Agent) reset() {
	a.prevState = nil
	a.prevAction = agent.NoAction
	a.moves.Reset()
	a.oriented = false
	a.hasBase = false
}
