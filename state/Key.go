// Package state implements the discretisation of game observations into
// compact, comparable state keys
package state

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout of a Key
const (
	CommandCenterIndex = 0
	DepotIndex         = 1
	BarracksIndex      = 2
	ArmyIndex          = 3
	HostileIndex       = 4 // first of Quadrants hostile occupancy flags
	FriendlyIndex      = 8 // first of Quadrants friendly occupancy flags

	// Quadrants is the number of cells the minimap is partitioned into
	Quadrants = 4

	// Len is the number of features in a Key
	Len = FriendlyIndex + Quadrants
)

// Key is the discrete representation of a game state. Two observations
// which encode to the same Key are indistinguishable to the learner.
//
// Key is an array and so is comparable and copied by value.
type Key [Len]int

// String returns the canonical form of the Key, which is used as the
// value table index, e.g. "[1 0 0 3 0 0 0 1 1 0 0 0]"
func (k Key) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range k {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Parse parses the canonical form of a Key
func Parse(s string) (Key, error) {
	var k Key
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	fields := strings.Fields(trimmed)
	if len(fields) != Len {
		return k, fmt.Errorf("parse: key %q has %d features, want %d", s,
			len(fields), Len)
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return k, fmt.Errorf("parse: feature %d of key %q: %w", i, s, err)
		}
		k[i] = v
	}
	return k, nil
}

// CommandCenter returns 1 if the player has a command center
func (k Key) CommandCenter() int { return k[CommandCenterIndex] }

// Depots returns the number of supply depots
func (k Key) Depots() int { return k[DepotIndex] }

// Barracks returns the number of barracks
func (k Key) Barracks() int { return k[BarracksIndex] }

// Army returns the army supply
func (k Key) Army() int { return k[ArmyIndex] }

// Hostile returns the hostile occupancy bitmap
func (k Key) Hostile() [Quadrants]int {
	var q [Quadrants]int
	copy(q[:], k[HostileIndex:HostileIndex+Quadrants])
	return q
}

// Friendly returns the friendly occupancy bitmap
func (k Key) Friendly() [Quadrants]int {
	var q [Quadrants]int
	copy(q[:], k[FriendlyIndex:FriendlyIndex+Quadrants])
	return q
}
