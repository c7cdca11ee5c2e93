package terran

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/state"
)

// Build placements, as offsets from the command centre in the canonical
// orientation, for the first and second structure of each kind
var (
	depotOffsets    = [MaxDepots]sc2.Point{{X: -35, Y: 0}, {X: -25, Y: -25}}
	barracksOffsets = [MaxBarracks]sc2.Point{{X: 15, Y: -9}, {X: 15, Y: 12}}
)

// attackJitter is the spacing of the random offsets added to attack
// targets on the minimap
const attackJitter = 8

// selectUnits returns the first sub-step of the stored action, which
// selects the units that will carry it out
func (a *Agent) selectUnits(obs sc2.Observation) sc2.Command {
	switch kind, _, _ := a.catalog.Split(a.prevAction); kind {
	case BuildSupplyDepot, BuildBarracks:
		if p, ok := a.pick(obs.Pixels(sc2.SCV)); ok {
			return sc2.SelectPoint(p, false)
		}

	case BuildMarine:
		if p, ok := a.pick(obs.Pixels(sc2.Barracks)); ok {
			return sc2.SelectPoint(p, true)
		}

	case Attack:
		if obs.CanIssue(sc2.SelectArmyID) {
			return sc2.SelectArmy()
		}
	}
	return sc2.NoOp()
}

// commit returns the second sub-step of the stored action, which issues
// the build, train or attack order
func (a *Agent) commit(obs sc2.Observation) sc2.Command {
	kind, x, y := a.catalog.Split(a.prevAction)

	switch kind {
	case BuildSupplyDepot:
		depots := sc2.FacilityCount(len(obs.Pixels(sc2.SupplyDepot)),
			sc2.PixelsPerDepot)
		if depots < MaxDepots && obs.CanIssue(sc2.BuildSupplyDepotID) &&
			a.hasBase {
			return sc2.BuildSupplyDepot(a.transformDistance(depotOffsets[depots]))
		}

	case BuildBarracks:
		barracks := sc2.FacilityCount(len(obs.Pixels(sc2.Barracks)),
			sc2.PixelsPerBarracks)
		if barracks < MaxBarracks && obs.CanIssue(sc2.BuildBarracksID) &&
			a.hasBase {
			return sc2.BuildBarracks(a.transformDistance(barracksOffsets[barracks]))
		}

	case BuildMarine:
		if obs.CanIssue(sc2.TrainMarineID) {
			return sc2.TrainMarine(true)
		}

	case Attack:
		// Workers that are still selected must not be sent to attack
		if obs.SelectedIs(sc2.SCV) {
			break
		}
		if obs.CanIssue(sc2.AttackMinimapID) {
			dx := (a.rng.Intn(3) - 1) * attackJitter
			dy := (a.rng.Intn(3) - 1) * attackJitter
			return sc2.AttackMinimap(a.transformLocation(x+dx, y+dy))
		}
	}
	return sc2.NoOp()
}

// followUp returns the third sub-step of the stored action, which sends
// builders back to gather minerals
func (a *Agent) followUp(obs sc2.Observation) sc2.Command {
	switch kind, _, _ := a.catalog.Split(a.prevAction); kind {
	case BuildSupplyDepot, BuildBarracks:
		if !obs.CanIssue(sc2.HarvestGatherID) {
			break
		}
		if p, ok := a.pick(obs.Pixels(sc2.MineralField)); ok {
			return sc2.HarvestGather(p, true)
		}
	}
	return sc2.NoOp()
}

// pick returns a point chosen uniformly at random from points
func (a *Agent) pick(points []sc2.Point) (sc2.Point, bool) {
	if len(points) == 0 {
		return sc2.Point{}, false
	}
	return points[a.rng.Intn(len(points))], true
}

// transformDistance offsets the base location by offset, mirroring the
// offset when the agent did not start in the top-left
func (a *Agent) transformDistance(offset sc2.Point) sc2.Point {
	if a.encoder.Orientation() != state.TopLeft {
		offset = sc2.Point{X: -offset.X, Y: -offset.Y}
	}
	return sc2.Point{X: a.base.X + offset.X, Y: a.base.Y + offset.Y}
}

// transformLocation mirrors a minimap location through the centre of the
// map when the agent did not start in the top-left
func (a *Agent) transformLocation(x, y int) sc2.Point {
	if a.encoder.Orientation() != state.TopLeft {
		size := a.config.MinimapSize
		return sc2.Point{X: size - x, Y: size - y}
	}
	return sc2.Point{X: x, Y: y}
}
