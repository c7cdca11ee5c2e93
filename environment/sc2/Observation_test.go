package sc2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCentre(t *testing.T) {
	obs := Observation{Screen: map[UnitType][]Point{
		CommandCenter: {{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}},
		SCV:           {{X: 1, Y: 1}, {X: 2, Y: 4}, {X: 2, Y: 4}},
	}}

	c, ok := obs.Centre(CommandCenter)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 2, Y: 1}, c)

	// Means of 5/3 and 3 round to the nearest pixel
	c, ok = obs.Centre(SCV)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 2, Y: 3}, c)

	_, ok = obs.Centre(Barracks)
	assert.False(t, ok)
}

func TestFacilityCount(t *testing.T) {
	assert.Equal(t, 0, FacilityCount(0, PixelsPerDepot))
	assert.Equal(t, 1, FacilityCount(PixelsPerDepot, PixelsPerDepot))
	assert.Equal(t, 2, FacilityCount(2*PixelsPerBarracks-20, PixelsPerBarracks))
	assert.Equal(t, 0, FacilityCount(10, 0))
}
