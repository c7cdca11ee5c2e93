package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/agent"
	"github.com/samuelfneumann/sc2learn/qtable"
)

// Default hyperparameters
const (
	DefaultEpsilon      = 0.1
	DefaultLearningRate = 0.01
	DefaultDiscount     = 0.9
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Epsilon      float64 // epislon for behaviour policy
	LearningRate float64
	Discount     float64
}

// DefaultConfig returns the default QLearning configuration
func DefaultConfig() Config {
	return Config{
		Epsilon:      DefaultEpsilon,
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
	}
}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(table *qtable.Table,
	seed uint64) (agent.Agent, error) {
	return New(table, c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1], got %v", c.Discount)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearningTabular
}
