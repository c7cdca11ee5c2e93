package qlearning

import (
	"math"
	"testing"

	"github.com/samuelfneumann/sc2learn/agent"
	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = state.Key{1}
	b = state.Key{2}
)

func TestTerminalUpdate(t *testing.T) {
	table := qtable.New(4)
	q := NewQLearner(table, 0.1, 0.9)

	q.Update(&a, 0, 1, Terminal)
	assert.InDelta(t, 0.1, table.At(a, 0), 1e-12)
	assert.Equal(t, []float64{0.1, 0, 0, 0}, table.Row(a))
}

func TestTerminalUpdateConverges(t *testing.T) {
	table := qtable.New(4)
	q := NewQLearner(table, 0.1, 0.9)

	prevResidual := 1.0
	for i := 0; i < 200; i++ {
		q.Update(&a, 0, 1, Terminal)

		// The residual decays geometrically by a factor of (1 - α)
		residual := 1 - table.At(a, 0)
		assert.InDelta(t, prevResidual*0.9, residual, 1e-9)
		prevResidual = residual
	}
	assert.InDelta(t, 1.0, table.At(a, 0), 1e-8)
}

func TestBootstrap(t *testing.T) {
	table := qtable.New(4)
	table.Set(b, 2, 0.5)
	table.Set(b, 3, -1)
	q := NewQLearner(table, 0.1, 0.9)

	q.Update(&a, 1, 0, &b)
	assert.InDelta(t, 0.1*0.9*0.5, table.At(a, 1), 1e-12)

	for i := 0; i < 500; i++ {
		q.Update(&a, 1, 0, &b)
	}
	assert.InDelta(t, 0.9*0.5, table.At(a, 1), 1e-9)
}

func TestBootstrapMaterialisesNext(t *testing.T) {
	table := qtable.New(4)
	q := NewQLearner(table, 0.1, 0.9)

	q.Update(&a, 0, 0, &b)
	assert.True(t, table.Has(a))
	assert.True(t, table.Has(b))
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []float64{0, 0, 0, 0}, table.Row(b))
}

func TestUpdateWithoutPrior(t *testing.T) {
	table := qtable.New(4)
	q := NewQLearner(table, 0.1, 0.9)

	q.Update(nil, 0, 1, Terminal)
	q.Update(&a, agent.NoAction, 1, &b)
	assert.Equal(t, 0, table.Len())
}

func TestTdError(t *testing.T) {
	table := qtable.New(2)
	table.Set(b, 0, 1)
	q := NewQLearner(table, 0.5, 0.5)

	assert.InDelta(t, 1.5, q.TdError(a, 0, 1, &b), 1e-12)
	assert.InDelta(t, -2, q.TdError(a, 0, -2, Terminal), 1e-12)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Epsilon: -1, LearningRate: 0.1, Discount: 0.9},
		{Epsilon: 0.1, LearningRate: 0, Discount: 0.9},
		{Epsilon: 0.1, LearningRate: 0.1, Discount: 1.5},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate(), "config %+v", c)
	}
}

func TestCreateAgent(t *testing.T) {
	table := qtable.New(4)
	c := DefaultConfig()

	ag, err := c.CreateAgent(table, 1)
	require.NoError(t, err)
	assert.True(t, c.ValidAgent(ag))
	assert.Equal(t, agent.EGreedyQLearningTabular, c.Type())

	// Learner and policy share the table
	ag.Update(&a, 2, 1, Terminal)
	ag.Eval()
	assert.Equal(t, 2, ag.SelectAction(a, nil))

	_, err = New(table, Config{Epsilon: 2, LearningRate: 0.1}, 1)
	assert.Error(t, err)
}

func TestNoNaN(t *testing.T) {
	table := qtable.New(3)
	q := NewQLearner(table, 1, 1)
	for i := 0; i < 100; i++ {
		q.Update(&a, i%3, -1, &b)
		q.Update(&b, i%3, 1, &a)
	}
	for _, v := range append(table.Row(a), table.Row(b)...) {
		assert.False(t, math.IsNaN(v))
	}
}

func BenchmarkUpdate(bm *testing.B) {
	table := qtable.New(8)
	q := NewQLearner(table, 0.01, 0.9)

	for i := 0; i < bm.N; i++ {
		q.Update(&a, i%8, 0, &b)
	}
}
