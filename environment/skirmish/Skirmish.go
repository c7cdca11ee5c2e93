// Package skirmish implements a small, deterministic real-time strategy
// skirmish which can be played through the sc2 observation and command
// vocabulary.
//
// The player starts in one corner of a 64 x 64 map with a command
// center, workers, and mineral fields, and the enemy starts in the
// opposite corner. Workers gather minerals every tick. The player can
// build supply depots, which raise the supply cap, and barracks, which
// train marines. The enemy army grows over time and periodically attacks
// the player's base. The player wins by attacking the enemy base with
// enough marines to destroy it, loses if its own base is destroyed, and
// draws if neither happens within the step limit.
package skirmish

import (
	"fmt"

	"github.com/samuelfneumann/sc2learn/environment"
	"github.com/samuelfneumann/sc2learn/environment/sc2"
	"github.com/samuelfneumann/sc2learn/timestep"
)

const (
	MinimapSize = 64
	ScreenSize  = 84

	DepotCost    = 100
	BarracksCost = 150
	MarineCost   = 50

	StartingWorkers  = 12
	StartingMinerals = 50
	BaseSupply       = 15
	DepotSupply      = 8

	// workersPerMineral is the number of workers that gather one mineral
	// per tick
	workersPerMineral = 4

	// marineDamage is the damage each marine surviving a battle deals
	// to a base
	marineDamage = 5

	// raidDamage is the damage each undefended enemy unit deals to the
	// player's base
	raidDamage = 10

	// warning is the number of ticks before an enemy attack during
	// which the attacking army is visible near the player's base
	warning = 10
)

// Starting corners of the player
const (
	TopLeft = iota
	BottomRight
)

// structure is a building placed on the screen
type structure struct {
	kind sc2.UnitType
	at   sc2.Point
}

// Skirmish is a simulated game host. It implements
// environment.Environment.
type Skirmish struct {
	environment.Starter
	environment.Ender
	config Config

	corner     int
	minerals   int
	workers    int
	marines    int
	structures []structure
	selected   []sc2.UnitType

	armyAt       sc2.Point
	armyDeployed bool

	enemyArmy int
	baseHP    int
	enemyHP   int

	currentStep timestep.TimeStep
}

// New creates a new Skirmish, which chooses the starting corner of each
// episode with s, and returns it together with the first TimeStep of
// its first episode
func New(c Config, s environment.Starter) (*Skirmish, timestep.TimeStep,
	error) {
	if err := c.Validate(); err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	g := &Skirmish{
		Starter: s,
		config:  c,
	}
	g.Ender = environment.FirstEnder(
		environment.NewFunctionEnder(func(*timestep.TimeStep) bool {
			return g.enemyHP <= 0
		}, timestep.TerminalStateReached, 1),
		environment.NewFunctionEnder(func(*timestep.TimeStep) bool {
			return g.baseHP <= 0
		}, timestep.TerminalStateReached, -1),
		environment.NewStepLimit(c.MaxSteps),
	)

	step, err := g.Reset()
	return g, step, err
}

// Reset starts a new episode
func (g *Skirmish) Reset() (timestep.TimeStep, error) {
	g.corner = g.Start() % 2
	g.minerals = StartingMinerals
	g.workers = StartingWorkers
	g.marines = 0
	g.structures = nil
	g.selected = nil
	g.armyDeployed = false
	g.enemyArmy = 0
	g.baseHP = g.config.BaseHP
	g.enemyHP = g.config.BaseHP

	g.currentStep = timestep.New(timestep.First, 0, g.observe(0), 0)
	return g.currentStep, nil
}

// Step applies a command and advances the game by one tick
func (g *Skirmish) Step(cmd sc2.Command) (timestep.TimeStep, bool, error) {
	if g.currentStep.Last() {
		return g.currentStep, true, fmt.Errorf("step: episode has ended, " +
			"the skirmish must be reset")
	}

	if g.available()[cmd.Function] {
		g.apply(cmd)
	}

	number := g.currentStep.Number + 1
	g.tick(number)

	step := timestep.New(timestep.Mid, 0, g.observe(number), number)
	g.End(&step)

	g.currentStep = step
	return step, step.Last(), nil
}

// LastTimeStep returns the last TimeStep in the episode
func (g *Skirmish) LastTimeStep() timestep.TimeStep {
	return g.currentStep
}

// Corner returns the starting corner of the player in this episode
func (g *Skirmish) Corner() int {
	return g.corner
}

// apply carries out an available command
func (g *Skirmish) apply(cmd sc2.Command) {
	switch cmd.Function {
	case sc2.SelectPointID:
		if u, ok := g.unitAt(cmd.Target); ok {
			g.selected = []sc2.UnitType{u}
		} else {
			g.selected = nil
		}

	case sc2.SelectArmyID:
		g.selected = make([]sc2.UnitType, g.marines)
		for i := range g.selected {
			g.selected[i] = sc2.Marine
		}

	case sc2.BuildSupplyDepotID:
		g.build(sc2.SupplyDepot, DepotCost, cmd.Target)

	case sc2.BuildBarracksID:
		g.build(sc2.Barracks, BarracksCost, cmd.Target)

	case sc2.TrainMarineID:
		g.minerals -= MarineCost
		g.marines++

	case sc2.AttackMinimapID:
		g.attack(cmd.Target)

	case sc2.HarvestGatherID:
		g.selected = nil
	}
}

// build places a structure on the screen
func (g *Skirmish) build(kind sc2.UnitType, cost int, at sc2.Point) {
	g.minerals -= cost
	at.X = clamp(at.X, 0, ScreenSize-width(kind))
	at.Y = clamp(at.Y, 0, ScreenSize-footprint(kind)/width(kind)-1)
	g.structures = append(g.structures, structure{kind, at})
}

// attack moves the army to a minimap location, fighting the enemy if the
// location is in the enemy's quadrant
func (g *Skirmish) attack(target sc2.Point) {
	g.armyAt = target
	g.armyDeployed = true

	if quadrant(target) != g.enemyQuadrant() {
		return
	}

	if g.marines > g.enemyArmy {
		g.marines -= g.enemyArmy
		g.enemyArmy = 0
		g.enemyHP -= g.marines * marineDamage
	} else {
		g.enemyArmy -= g.marines
		g.marines = 0
		g.armyDeployed = false
		g.selected = nil
	}
}

// tick advances the world after a command has been applied
func (g *Skirmish) tick(n int) {
	g.minerals += g.workers / workersPerMineral

	if n%g.config.EnemyGrowth == 0 {
		g.enemyArmy++
	}

	if n%g.config.EnemyAttackEvery == 0 && g.enemyArmy > 0 {
		defenders := g.marines
		if g.armyDeployed {
			defenders = 0
		}

		if g.enemyArmy > defenders {
			g.baseHP -= (g.enemyArmy - defenders) * raidDamage
			g.enemyArmy -= defenders
			g.marines -= defenders
		} else {
			g.marines -= g.enemyArmy / 2
			g.enemyArmy = 0
		}
	}
}

func (g *Skirmish) count(kind sc2.UnitType) int {
	n := 0
	for _, s := range g.structures {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (g *Skirmish) player() sc2.Player {
	return sc2.Player{
		FoodUsed:    g.workers + g.marines,
		FoodCap:     BaseSupply + DepotSupply*g.count(sc2.SupplyDepot),
		FoodArmy:    g.marines,
		FoodWorkers: g.workers,
	}
}

func (g *Skirmish) selectedIs(u sc2.UnitType) bool {
	return len(g.selected) > 0 && g.selected[0] == u
}

// available returns the functions that can be issued this tick
func (g *Skirmish) available() map[sc2.FunctionID]bool {
	f := map[sc2.FunctionID]bool{
		sc2.NoOpID:        true,
		sc2.SelectPointID: true,
	}

	if g.marines > 0 {
		f[sc2.SelectArmyID] = true
	}

	if g.selectedIs(sc2.SCV) {
		f[sc2.HarvestGatherID] = true
		f[sc2.BuildSupplyDepotID] = g.minerals >= DepotCost
		f[sc2.BuildBarracksID] = g.minerals >= BarracksCost &&
			g.count(sc2.SupplyDepot) > 0
	}

	if g.selectedIs(sc2.Barracks) {
		f[sc2.TrainMarineID] = g.minerals >= MarineCost &&
			g.player().SupplyFree() > 0
	}

	if g.selectedIs(sc2.Marine) && g.marines > 0 {
		f[sc2.AttackMinimapID] = true
	}

	return f
}

// enemyQuadrant returns the minimap quadrant of the enemy base
func (g *Skirmish) enemyQuadrant() int {
	if g.corner == TopLeft {
		return 3
	}
	return 0
}

func quadrant(p sc2.Point) int {
	return (p.Y*2/MinimapSize)*2 + p.X*2/MinimapSize
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
