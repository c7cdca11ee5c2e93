package terran

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/state"
)

// Caps on structures the agent will build
const (
	MaxDepots   = 2
	MaxBarracks = 2
)

// Counts are the quantities the eligibility of actions depends on
type Counts struct {
	Depots       int
	Barracks     int
	SupplyFree   int
	ArmySupply   int
	WorkerSupply int
}

// CountsOf extracts Counts from an encoded state and the player's supply
func CountsOf(k state.Key, p sc2.Player) Counts {
	return Counts{
		Depots:       k.Depots(),
		Barracks:     k.Barracks(),
		SupplyFree:   p.SupplyFree(),
		ArmySupply:   p.FoodArmy,
		WorkerSupply: p.FoodWorkers,
	}
}

// Exclusions returns, in ascending order, the actions of catalog c that
// cannot be carried out given counts. Exclusions is a pure function.
func Exclusions(counts Counts, c Catalog) []int {
	var excluded []int
	for i, a := range c {
		if !eligible(a.Kind, counts) {
			excluded = append(excluded, i)
		}
	}
	return excluded
}

func eligible(k Kind, c Counts) bool {
	switch k {
	case BuildSupplyDepot:
		return c.Depots < MaxDepots && c.WorkerSupply > 0
	case BuildBarracks:
		return c.Depots > 0 && c.Barracks < MaxBarracks && c.WorkerSupply > 0
	case BuildMarine:
		return c.SupplyFree > 0 && c.Barracks > 0
	case Attack:
		return c.ArmySupply > 0
	default:
		return true
	}
}
