package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Starter samples the starting configuration of an episode, such as the
// corner of the map a player spawns in
type Starter interface {
	Start() int
}

// CategoricalStarter returns starting configurations sampled from a
// uniform categorical distribution over (0, 1, 2, ... N-1).
type CategoricalStarter struct {
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling from
// (0, 1, 2, ... n-1)
func NewCategoricalStarter(n int, seed uint64) *CategoricalStarter {
	source := rand.NewSource(seed)

	// Create the weights for the uniform categorical distribution
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}

	return &CategoricalStarter{distuv.NewCategorical(weights, source)}
}

// Start returns a starting configuration
func (c *CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}

// FixedStarter always returns the same starting configuration
type FixedStarter int

// Start returns the fixed starting configuration
func (f FixedStarter) Start() int {
	return int(f)
}
