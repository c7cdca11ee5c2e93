package policy

import (
	"testing"

	"github.com/samuelfneumann/sc2learn/qtable"
	"github.com/samuelfneumann/sc2learn/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(actions []int, a int) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func TestNewEGreedyValidation(t *testing.T) {
	_, err := NewEGreedy(-0.1, 1, qtable.New(4))
	assert.Error(t, err)

	_, err = NewEGreedy(1.1, 1, qtable.New(4))
	assert.Error(t, err)

	_, err = NewEGreedy(0.1, 1, nil)
	assert.Error(t, err)
}

func TestGreedyDeterministic(t *testing.T) {
	inputs := []struct {
		key      state.Key
		excluded []int
	}{
		{state.Key{0}, nil},
		{state.Key{1}, []int{0}},
		{state.Key{2}, []int{1, 2, 3}},
		{state.Key{0}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{state.Key{3}, []int{4, 5, 6, 7}},
	}

	run := func() []int {
		table := qtable.New(8)
		table.Set(state.Key{1}, 0, 1)
		table.Set(state.Key{1}, 4, 0.5)

		p, err := NewGreedy(42, table)
		require.NoError(t, err)

		var chosen []int
		for i := 0; i < 20; i++ {
			for _, in := range inputs {
				chosen = append(chosen, p.SelectAction(in.key, in.excluded))
			}
		}
		return chosen
	}

	first := run()
	assert.Equal(t, first, run())

	for i, a := range first {
		in := inputs[i%len(inputs)]
		if len(in.excluded) < 8 {
			assert.False(t, contains(in.excluded, a),
				"action %d is excluded in %v", a, in.excluded)
		}
	}
}

func TestGreedyPicksBest(t *testing.T) {
	table := qtable.New(4)
	key := state.Key{1}
	table.Set(key, 2, 1)
	table.Set(key, 3, 2)

	p, err := NewGreedy(7, table)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		assert.Equal(t, 3, p.SelectAction(key, nil))

		// Optimal action excluded
		assert.Equal(t, 2, p.SelectAction(key, []int{3}))
	}
}

func TestGreedyBreaksTiesAtRandom(t *testing.T) {
	table := qtable.New(4)
	p, err := NewGreedy(3, table)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := 0; i < 400; i++ {
		seen[p.SelectAction(state.Key{}, []int{1})]++
	}

	assert.Len(t, seen, 3)
	assert.Zero(t, seen[1])
	for _, a := range []int{0, 2, 3} {
		assert.Greater(t, seen[a], 50, "action %d chosen too rarely", a)
	}
}

func TestExplorationRespectsExclusions(t *testing.T) {
	table := qtable.New(8)
	key := state.Key{5}
	table.Set(key, 0, 10)

	p, err := NewEGreedy(1.0, 11, table)
	require.NoError(t, err)

	excluded := []int{0, 1, 2, 3}
	for i := 0; i < 200; i++ {
		a := p.SelectAction(key, excluded)
		assert.False(t, contains(excluded, a))
	}
}

func TestAllExcluded(t *testing.T) {
	all := []int{0, 1, 2, 3}
	for _, e := range []float64{0, 1} {
		p, err := NewEGreedy(e, 5, qtable.New(4))
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			a := p.SelectAction(state.Key{}, all)
			assert.True(t, a >= 0 && a < 4)
		}
	}
}

func TestEvalIsGreedy(t *testing.T) {
	table := qtable.New(4)
	key := state.Key{1}
	table.Set(key, 1, 1)

	p, err := NewEGreedy(1.0, 9, table)
	require.NoError(t, err)

	p.Eval()
	assert.True(t, p.IsEval())
	for i := 0; i < 50; i++ {
		assert.Equal(t, 1, p.SelectAction(key, nil))
	}
	p.Train()
	assert.False(t, p.IsEval())
}

func TestSelectActionMaterialisesRow(t *testing.T) {
	table := qtable.New(4)
	p, err := NewEGreedy(0.5, 1, table)
	require.NoError(t, err)

	p.SelectAction(state.Key{9}, nil)
	assert.True(t, table.Has(state.Key{9}))
	assert.Equal(t, 1, table.Len())
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Allowed(4, []int{0, 2}))
	assert.Equal(t, []int{0, 1, 2}, Allowed(3, []int{0, 1, 2}))
}
