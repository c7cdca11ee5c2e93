package experiment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/samuelfneumann/sc2learn/agent"
	env "github.com/samuelfneumann/sc2learn/environment"
	"github.com/samuelfneumann/sc2learn/experiment/checkpointer"
	"github.com/samuelfneumann/sc2learn/experiment/trackers"
	"github.com/samuelfneumann/sc2learn/plot"
	ts "github.com/samuelfneumann/sc2learn/timestep"
)

// Online is an Experiment that runs an agent online only, learning as
// it plays. No offline evaluation is performed.
type Online struct {
	env.Environment
	agent.Player
	episodes int
	logger   zerolog.Logger

	outcomes      *trackers.Outcome
	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
	renderers     []plot.Renderer
	onEpisode     []func(ts.TimeStep)
}

// NewOnline creates and returns a new online experiment which plays
// episodes episodes of environment e with player p. The outcomes
// Tracker, which may be nil, records episode outcomes and provides the
// data that registered Renderers chart.
func NewOnline(e env.Environment, p agent.Player, episodes int,
	outcomes *trackers.Outcome, logger zerolog.Logger) (*Online, error) {
	if episodes <= 0 {
		return nil, fmt.Errorf("newOnline: episodes must be positive, got %d",
			episodes)
	}

	o := &Online{
		Environment: e,
		Player:      p,
		episodes:    episodes,
		logger:      logger,
		outcomes:    outcomes,
	}
	if outcomes != nil {
		o.Register(outcomes)
	}
	return o, nil
}

// Register registers a Tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Checkpoint registers a Checkpointer with the Experiment
func (o *Online) Checkpoint(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// Render registers a Renderer which is redrawn after every episode. It
// is an error to register a Renderer without an outcomes Tracker.
func (o *Online) Render(r plot.Renderer) error {
	if o.outcomes == nil {
		return fmt.Errorf("render: no outcomes are tracked")
	}
	o.renderers = append(o.renderers, r)
	return nil
}

// OnEpisode registers a function called with the last TimeStep of every
// episode, after all data has been saved
func (o *Online) OnEpisode(f func(ts.TimeStep)) {
	o.onEpisode = append(o.onEpisode, f)
}

// RunEpisode runs a single episode of the experiment
func (o *Online) RunEpisode(ctx context.Context) (ts.TimeStep, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return step, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)

	for !step.Last() {
		if err := ctx.Err(); err != nil {
			return step, err
		}

		cmd := o.Player.Step(step)
		step, _, err = o.Environment.Step(cmd)
		if err != nil {
			return step, fmt.Errorf("runEpisode: step %d: %w", step.Number,
				err)
		}

		// The player learns from the episode outcome before the last
		// step is checkpointed
		if step.Last() {
			o.Player.Step(step)
		}
		o.track(step)
	}

	return step, nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run(ctx context.Context) error {
	for i := 0; i < o.episodes; i++ {
		step, err := o.RunEpisode(ctx)
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", i+1, err)
		}
		o.episodeEnd(step)
	}
	return nil
}

// track sends the current timestep to each Tracker and Checkpointer
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}

	for _, c := range o.checkpointers {
		if err := c.Checkpoint(t); err != nil {
			o.logger.Error().Err(err).Int("step", t.Number).
				Msg("could not checkpoint")
		}
	}
}

// episodeEnd saves all tracked data and redraws all charts
func (o *Online) episodeEnd(t ts.TimeStep) {
	o.logger.Info().
		Stringer("outcome", t.Outcome()).
		Stringer("end", t.End()).
		Int("steps", t.Number).
		Msg("episode ended")

	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			o.logger.Error().Err(err).Msg("could not save tracked data")
		}
	}

	if o.outcomes != nil {
		records := o.outcomes.Records()
		for _, r := range o.renderers {
			if err := r.Render(records); err != nil {
				o.logger.Error().Err(err).Msg("could not render chart")
			}
		}
	}

	for _, f := range o.onEpisode {
		f(t)
	}
}
