// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"

	ts "github.com/samuelfneumann/sc2learn/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// The Run() method runs all episodes until the episode limit is reached
// or the context is cancelled. The RunEpisode() method runs a single
// episode and returns its last TimeStep.
//
// Experiments send each TimeStep to Trackers using the Tracker's
// Track() method, and to Checkpointers using their Checkpoint() method.
// When an episode ends, Trackers are saved and charts are rendered.
// Failures to save data are logged and do not stop the experiment.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode(ctx context.Context) (ts.TimeStep, error)
}
