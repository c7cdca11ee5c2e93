package state

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"gonum.org/v1/gonum/stat"
)

// Orientation describes which corner of the map the player started in
type Orientation int

const (
	// TopLeft is the canonical orientation; quadrant bitmaps are
	// encoded as they appear on the minimap
	TopLeft Orientation = iota

	// BottomRight mirrors quadrant bitmaps so that quadrant 0 is
	// always the player's own corner
	BottomRight
)

func (o Orientation) String() string {
	if o == TopLeft {
		return "TopLeft"
	}
	return "BottomRight"
}

// DetectOrientation determines the starting corner of the player from
// the first observation of an episode. The player is in the top-left
// when friendly cells exist on the minimap and their mean row lies in
// the upper half.
func DetectOrientation(obs sc2.Observation) Orientation {
	friendly := obs.Minimap.Positions(sc2.Self)
	if len(friendly) == 0 {
		return BottomRight
	}

	rows := make([]float64, len(friendly))
	for i, p := range friendly {
		rows[i] = float64(p.Y)
	}

	half := float64(obs.Minimap.Size()/2 - 1)
	if stat.Mean(rows, nil) <= half {
		return TopLeft
	}
	return BottomRight
}

// Encoder encodes observations into Keys. The orientation of an Encoder
// is fixed for its lifetime, which should be a single episode.
type Encoder struct {
	orientation Orientation
}

// NewEncoder returns a new Encoder for the given orientation
func NewEncoder(o Orientation) Encoder {
	return Encoder{o}
}

// Orientation returns the orientation of the Encoder
func (e Encoder) Orientation() Orientation {
	return e.orientation
}

// Encode encodes an observation into a Key. Encode has no side effects
// and never fails: missing structures are counted as zero.
func (e Encoder) Encode(obs sc2.Observation) Key {
	var k Key

	if obs.Has(sc2.CommandCenter) {
		k[CommandCenterIndex] = 1
	}
	k[DepotIndex] = sc2.FacilityCount(len(obs.Pixels(sc2.SupplyDepot)),
		sc2.PixelsPerDepot)
	k[BarracksIndex] = sc2.FacilityCount(len(obs.Pixels(sc2.Barracks)),
		sc2.PixelsPerBarracks)
	k[ArmyIndex] = obs.Player.FoodArmy

	hostile := e.occupancy(obs.Minimap, sc2.Hostile)
	friendly := e.occupancy(obs.Minimap, sc2.Self)
	copy(k[HostileIndex:], hostile[:])
	copy(k[FriendlyIndex:], friendly[:])

	return k
}

// occupancy returns the quadrant bitmap of cells with allegiance r,
// mirrored if the Encoder is not in the canonical orientation
func (e Encoder) occupancy(g sc2.Grid, r sc2.Relative) [Quadrants]int {
	var q [Quadrants]int
	size := g.Size()
	if size == 0 {
		return q
	}

	for _, p := range g.Positions(r) {
		q[Quadrant(p, size)] = 1
	}

	if e.orientation != TopLeft {
		for i, j := 0, len(q)-1; i < j; i, j = i+1, j-1 {
			q[i], q[j] = q[j], q[i]
		}
	}
	return q
}

// Quadrant returns the index of the 2x2 quadrant of a size x size
// grid that point p falls in. Quadrants are numbered row-major from
// the top-left.
func Quadrant(p sc2.Point, size int) int {
	return (p.Y*2/size)*2 + p.X*2/size
}
