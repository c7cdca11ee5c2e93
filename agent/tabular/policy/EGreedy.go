// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/state"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a qtable.Table.
//
// With probability ε an action is chosen uniformly at random from the
// actions that are not excluded. Otherwise an action is chosen uniformly
// at random from the non-excluded actions of maximal value, so that ties
// never depend on iteration order. If every action is excluded, the
// policy falls back to the full set of actions.
type EGreedy struct {
	table   *qtable.Table
	epsilon float64
	explore distuv.Bernoulli
	rng     *rand.Rand
	eval    bool
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected and table holds the
// action values. All randomness is drawn from a source seeded with seed.
func NewEGreedy(e float64, seed uint64, table *qtable.Table) (*EGreedy,
	error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"got %v", e)
	}
	if table == nil {
		return nil, fmt.Errorf("newEGreedy: table cannot be nil")
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		table:   table,
		epsilon: e,
		explore: distuv.Bernoulli{P: e, Src: source},
		rng:     rand.New(source),
	}, nil
}

// SelectAction selects an action from an ε-greedy policy. The row of key
// is materialised in the table if it did not exist.
func (p *EGreedy) SelectAction(key state.Key, excluded []int) int {
	best := p.table.BestActions(key, excluded)

	if !p.eval && p.explore.Rand() == 1 {
		allowed := Allowed(p.table.NumActions(), excluded)
		return allowed[p.rng.Intn(len(allowed))]
	}

	return best[p.rng.Intn(len(best))]
}

// Epsilon returns the exploration probability of the policy
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the exploration probability of the policy
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
	p.explore.P = e
}

// Eval sets the policy to evaluation mode, in which it acts greedily
func (p *EGreedy) Eval() { p.eval = true }

// Train sets the policy to training mode
func (p *EGreedy) Train() { p.eval = false }

// IsEval returns whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool { return p.eval }

// Allowed returns, in ascending order, the actions in [0, numActions)
// that are not excluded. If every action is excluded, all actions are
// returned.
func Allowed(numActions int, excluded []int) []int {
	skip := make(map[int]bool, len(excluded))
	for _, a := range excluded {
		skip[a] = true
	}

	allowed := make([]int, 0, numActions)
	for a := 0; a < numActions; a++ {
		if !skip[a] {
			allowed = append(allowed, a)
		}
	}

	if len(allowed) == 0 {
		for a := 0; a < numActions; a++ {
			allowed = append(allowed, a)
		}
	}
	return allowed
}
