package qlearning

import (
	"github.com/samuelfneumann/sc2learn/agent"
	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/state"
)

// Terminal is the next-state marker of the last transition in an
// episode. Transitions into Terminal are not bootstrapped.
var Terminal *state.Key = nil

// QLearner implements the one-step tabular Q-learning update:
//
//	Q(s, a) <- Q(s, a) + α(r + γ max_a' Q(s', a') - Q(s, a))
//
// where the bootstrap term is dropped for terminal transitions.
type QLearner struct {
	table        *qtable.Table
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner which updates table in place
func NewQLearner(table *qtable.Table, learningRate,
	discount float64) *QLearner {
	return &QLearner{table, learningRate, discount}
}

// Update performs a single Q-learning update on the transition
// (prior, action, reward, next). Update does nothing if there is no
// prior state or action yet, as on the first tick of an episode. A nil
// next marks the terminal transition.
//
// The row of next is materialised before bootstrapping from it, even
// though no action may ever be selected there.
func (q *QLearner) Update(prior *state.Key, action int, reward float64,
	next *state.Key) {
	if prior == nil || action == agent.NoAction {
		return
	}

	target := reward
	if next != Terminal {
		target += q.discount * q.table.Max(*next)
	}

	current := q.table.At(*prior, action)
	q.table.Set(*prior, action, current+q.learningRate*(target-current))
}

// TdError returns the temporal difference error of a transition without
// performing an update
func (q *QLearner) TdError(prior state.Key, action int, reward float64,
	next *state.Key) float64 {
	target := reward
	if next != Terminal {
		target += q.discount * q.table.Max(*next)
	}
	return target - q.table.At(prior, action)
}

// Table returns the table the learner updates
func (q *QLearner) Table() *qtable.Table {
	return q.table
}
