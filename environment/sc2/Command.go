package sc2

import "fmt"

// FunctionID identifies a host function that a Command invokes
type FunctionID int

const (
	NoOpID FunctionID = iota
	SelectPointID
	BuildSupplyDepotID
	BuildBarracksID
	TrainMarineID
	SelectArmyID
	AttackMinimapID
	HarvestGatherID
)

var functionNames = map[FunctionID]string{
	NoOpID:             "no_op",
	SelectPointID:      "select_point",
	BuildSupplyDepotID: "Build_SupplyDepot_screen",
	BuildBarracksID:    "Build_Barracks_screen",
	TrainMarineID:      "Train_Marine_quick",
	SelectArmyID:       "select_army",
	AttackMinimapID:    "Attack_minimap",
	HarvestGatherID:    "Harvest_Gather_screen",
}

func (f FunctionID) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("function(%d)", int(f))
}

// Command is one concrete call into the host
type Command struct {
	Function FunctionID

	// Queued appends the order to the unit's queue instead of replacing
	// its current order
	Queued bool

	// SelectAll selects every unit of the clicked type when selecting
	// a point
	SelectAll bool

	// Target is the screen or minimap coordinate of the command. It
	// is only meaningful if HasTarget is true.
	Target    Point
	HasTarget bool
}

// NoOp returns the command that does nothing
func NoOp() Command {
	return Command{Function: NoOpID}
}

// SelectPoint returns a command selecting the unit at p. If all is
// true, every unit of the same type on the screen is selected.
func SelectPoint(p Point, all bool) Command {
	return Command{Function: SelectPointID, SelectAll: all, Target: p,
		HasTarget: true}
}

// BuildSupplyDepot returns a command placing a supply depot at p
func BuildSupplyDepot(p Point) Command {
	return Command{Function: BuildSupplyDepotID, Target: p, HasTarget: true}
}

// BuildBarracks returns a command placing a barracks at p
func BuildBarracks(p Point) Command {
	return Command{Function: BuildBarracksID, Target: p, HasTarget: true}
}

// TrainMarine returns a command training a marine at the selected
// barracks
func TrainMarine(queued bool) Command {
	return Command{Function: TrainMarineID, Queued: queued}
}

// SelectArmy returns a command selecting every army unit
func SelectArmy() Command {
	return Command{Function: SelectArmyID}
}

// AttackMinimap returns a command ordering the selection to attack-move
// to minimap coordinate p
func AttackMinimap(p Point) Command {
	return Command{Function: AttackMinimapID, Target: p, HasTarget: true}
}

// HarvestGather returns a command ordering the selection to gather from
// the mineral field at p
func HarvestGather(p Point, queued bool) Command {
	return Command{Function: HarvestGatherID, Queued: queued, Target: p,
		HasTarget: true}
}

// IsNoOp returns whether the command does nothing
func (c Command) IsNoOp() bool {
	return c.Function == NoOpID
}

func (c Command) String() string {
	if !c.HasTarget {
		return fmt.Sprintf("%v(queued=%v)", c.Function, c.Queued)
	}
	return fmt.Sprintf("%v(queued=%v, target=[%d %d])", c.Function,
		c.Queued, c.Target.X, c.Target.Y)
}
