// Package qtable implements a sparse tabular action-value function.
//
// Rows are indexed by the canonical string form of a state.Key and are
// materialised lazily: a state that has never been looked up behaves as
// an all-zero row and is stored the first time it is touched.
package qtable

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/state"
	"github.com/samuelfneumann/sc2learn/utils/floatutils"
	"gonum.org/v1/gonum/floats"
)

// Table maps states to a vector of action values. Every row has exactly
// NumActions() entries.
type Table struct {
	numActions int
	rows       map[string][]float64
}

// New returns a new, empty Table over numActions actions
func New(numActions int) *Table {
	if numActions <= 0 {
		panic(fmt.Sprintf("new: number of actions must be positive, got %d",
			numActions))
	}
	return &Table{numActions: numActions, rows: make(map[string][]float64)}
}

// NumActions returns the number of actions in each row
func (t *Table) NumActions() int {
	return t.numActions
}

// Len returns the number of rows that have been materialised
func (t *Table) Len() int {
	return len(t.rows)
}

// Has returns whether the row for key has been materialised. Has does
// not materialise the row.
func (t *Table) Has(key state.Key) bool {
	_, ok := t.rows[key.String()]
	return ok
}

// Keys returns the canonical keys of all materialised rows
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.rows))
	for k := range t.rows {
		keys = append(keys, k)
	}
	return keys
}

// row returns the stored row for key, creating it if needed
func (t *Table) row(key state.Key) []float64 {
	k := key.String()
	r, ok := t.rows[k]
	if !ok {
		r = make([]float64, t.numActions)
		t.rows[k] = r
	}
	return r
}

// Row returns a copy of the action values of key
func (t *Table) Row(key state.Key) []float64 {
	r := t.row(key)
	out := make([]float64, len(r))
	copy(out, r)
	return out
}

// At returns the value of action in key
func (t *Table) At(key state.Key, action int) float64 {
	t.checkAction(action)
	return t.row(key)[action]
}

// Set sets the value of action in key
func (t *Table) Set(key state.Key, action int, value float64) {
	t.checkAction(action)
	t.row(key)[action] = value
}

// Max returns the maximum action value of key
func (t *Table) Max(key state.Key) float64 {
	return floats.Max(t.row(key))
}

// BestActions returns, in ascending order, every action not in excluded
// whose value equals the maximum value over all non-excluded actions.
// If every action is excluded, all actions are returned.
//
// Ties are deliberately all returned so that the caller can break them
// at random.
func (t *Table) BestActions(key state.Key, excluded []int) []int {
	skip := make(map[int]bool, len(excluded))
	for _, a := range excluded {
		skip[a] = true
	}

	_, best := floatutils.MaxSliceExcept(t.row(key), skip)
	if best == nil {
		best = make([]int, t.numActions)
		for i := range best {
			best[i] = i
		}
	}
	return best
}

func (t *Table) checkAction(action int) {
	if action < 0 || action >= t.numActions {
		panic(fmt.Sprintf("action %d out of range [0, %d)", action,
			t.numActions))
	}
}
