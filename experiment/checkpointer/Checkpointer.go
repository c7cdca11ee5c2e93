// Package checkpointer implements functionality for saving objects,
// such as value tables, to disk while an experiment runs
package checkpointer

import (
	ts "github.com/samuelfneumann/sc2learn/timestep"
)

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on
// timestep.TimeSteps
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}
