package policy

import "github.com/samuelfneumann/sc2learn/qtable"

// NewGreedy creates a new greedy policy, which breaks ties between
// maximal actions uniformly at random
func NewGreedy(seed uint64, table *qtable.Table) (*EGreedy, error) {
	return NewEGreedy(0.0, seed, table)
}
