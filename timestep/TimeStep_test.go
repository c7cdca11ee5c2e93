package timestep

import (
	"testing"

	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		reward float64
		want   Outcome
	}{
		{1, Win},
		{0, Draw},
		{-1, Loss},
		{0.5, Unknown},
		{2, Unknown},
	}

	for _, test := range tests {
		step := New(Last, test.reward, sc2.Observation{}, 10)
		assert.Equal(t, test.want, step.Outcome(), "reward %v", test.reward)
	}

	mid := New(Mid, 1, sc2.Observation{}, 3)
	assert.Equal(t, Unknown, mid.Outcome())
}

func TestSetEnd(t *testing.T) {
	step := New(Last, 1, sc2.Observation{}, 10)
	step.SetEnd(TerminalStateReached)
	assert.Equal(t, TerminalStateReached, step.End())

	first := New(First, 0, sc2.Observation{}, 0)
	assert.Panics(t, func() { first.SetEnd(Timeout) })
}
