// Package qlearning implements the tabular Q-Learning algorithm.
//
// The behaviour policy is ε-greedy with respect to the learned action
// values and the target policy is greedy, so that the update bootstraps
// from the maximum action value of the next state.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/agent/tabular/policy"
	"github.com/samuelfneumann/sc2learn/qtable"
)

// QLearning implements the Q-Learning algorithm. The learner and the
// behaviour policy share the same table.
type QLearning struct {
	*QLearner
	*policy.EGreedy
	seed uint64
}

// New creates a new QLearning agent learning into table
func New(table *qtable.Table, c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed, table)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	learner := NewQLearner(table, c.LearningRate, c.Discount)

	return &QLearning{learner, behaviour, seed}, nil
}
