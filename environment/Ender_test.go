package environment

import (
	"testing"

	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/timestep"
	"github.com/stretchr/testify/assert"
)

func mid(n int) timestep.TimeStep {
	return timestep.New(timestep.Mid, 0, sc2.Observation{}, n)
}

func TestStepLimit(t *testing.T) {
	e := NewStepLimit(3)

	step := mid(2)
	assert.False(t, e.End(&step))
	assert.True(t, step.Mid())

	step = mid(3)
	step.Reward = 0.5
	assert.True(t, e.End(&step))
	assert.True(t, step.Last())
	assert.Equal(t, 0.0, step.Reward)
	assert.Equal(t, timestep.Timeout, step.End())
}

func TestFirstEnder(t *testing.T) {
	won := false
	e := FirstEnder(
		NewFunctionEnder(func(*timestep.TimeStep) bool { return won },
			timestep.TerminalStateReached, 1),
		NewStepLimit(5),
	)

	step := mid(1)
	assert.False(t, e.End(&step))

	won = true
	step = mid(5)
	assert.True(t, e.End(&step))
	assert.Equal(t, timestep.Win, step.Outcome())
	assert.Equal(t, timestep.TerminalStateReached, step.End())

	won = false
	step = mid(5)
	assert.True(t, e.End(&step))
	assert.Equal(t, timestep.Draw, step.Outcome())
	assert.Equal(t, timestep.Timeout, step.End())
}

func TestStarters(t *testing.T) {
	assert.Equal(t, 1, FixedStarter(1).Start())

	a := NewCategoricalStarter(2, 5)
	b := NewCategoricalStarter(2, 5)
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		s := a.Start()
		assert.Equal(t, s, b.Start())
		assert.True(t, s == 0 || s == 1)
		seen[s] = true
	}
	assert.Len(t, seen, 2)
}
