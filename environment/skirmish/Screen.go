package skirmish

import (
	"github.com/samuelfneumann/sc2learn/environment/sc2"
)

// Screen layout of the player's base, given for the top-left corner.
// Bases in the bottom-right corner mirror the x coordinates.
const (
	ccAnchor   = 37
	ccWidth    = 10
	mineralX   = 4
	mineralY   = 24
	mineralGap = 5
	fields     = 8
	workerX    = 22
	workerY    = 30
)

// Minimap layout, given for the top-left corner
const (
	baseLo  = 8
	baseHi  = 20
	raidLo  = 22
	raidHi  = 26
	armyPad = 2
)

// footprint returns the number of screen pixels covered by a structure
func footprint(kind sc2.UnitType) int {
	switch kind {
	case sc2.SupplyDepot:
		return sc2.PixelsPerDepot
	case sc2.Barracks:
		return sc2.PixelsPerBarracks
	default:
		return ccWidth * ccWidth
	}
}

// width returns the width in pixels of a structure on the screen
func width(sc2.UnitType) int {
	return ccWidth
}

// block returns the pixels of a structure anchored at its top-left
// corner
func block(kind sc2.UnitType, at sc2.Point) []sc2.Point {
	w := width(kind)
	pixels := make([]sc2.Point, footprint(kind))
	for i := range pixels {
		pixels[i] = sc2.Point{X: at.X + i%w, Y: at.Y + i/w}
	}
	return pixels
}

// mirrorX places a top-left x coordinate on the side of the screen
// belonging to the player's corner
func (g *Skirmish) mirrorX(x int) int {
	if g.corner == TopLeft {
		return x
	}
	return ScreenSize - 1 - x
}

// screen renders the unit positions on the player's screen
func (g *Skirmish) screen() map[sc2.UnitType][]sc2.Point {
	screen := map[sc2.UnitType][]sc2.Point{
		sc2.CommandCenter: block(sc2.CommandCenter,
			sc2.Point{X: ccAnchor, Y: ccAnchor}),
	}

	for i := 0; i < fields; i++ {
		y := mineralY + i*mineralGap
		for dx := 0; dx < 4; dx++ {
			for dy := 0; dy < 2; dy++ {
				screen[sc2.MineralField] = append(screen[sc2.MineralField],
					sc2.Point{X: g.mirrorX(mineralX + dx), Y: y + dy})
			}
		}
	}

	for i := 0; i < g.workers; i++ {
		screen[sc2.SCV] = append(screen[sc2.SCV],
			sc2.Point{X: g.mirrorX(workerX), Y: workerY + 2*i})
	}

	for _, s := range g.structures {
		screen[s.kind] = append(screen[s.kind], block(s.kind, s.at)...)
	}

	return screen
}

// unitAt returns the type of the unit covering screen pixel p
func (g *Skirmish) unitAt(p sc2.Point) (sc2.UnitType, bool) {
	screen := g.screen()
	order := []sc2.UnitType{sc2.SCV, sc2.Barracks, sc2.SupplyDepot,
		sc2.CommandCenter, sc2.MineralField}

	for _, u := range order {
		for _, q := range screen[u] {
			if q == p {
				return u, true
			}
		}
	}
	return 0, false
}

// minimap renders the allegiance of each minimap cell
func (g *Skirmish) minimap(n int) sc2.Grid {
	grid := sc2.NewGrid(MinimapSize)

	lo, hi := baseLo, baseHi
	mirror := func(v int) int { return MinimapSize - v }
	if g.corner == TopLeft {
		grid.Fill(lo, lo, hi, hi, sc2.Self)
		grid.Fill(mirror(hi), mirror(hi), mirror(lo), mirror(lo),
			sc2.Hostile)
	} else {
		grid.Fill(mirror(hi), mirror(hi), mirror(lo), mirror(lo), sc2.Self)
		grid.Fill(lo, lo, hi, hi, sc2.Hostile)
	}

	every := g.config.EnemyAttackEvery
	if g.enemyArmy > 0 && n%every >= every-warning {
		if g.corner == TopLeft {
			grid.Fill(raidLo, raidLo, raidHi, raidHi, sc2.Hostile)
		} else {
			grid.Fill(mirror(raidHi), mirror(raidHi), mirror(raidLo),
				mirror(raidLo), sc2.Hostile)
		}
	}

	if g.armyDeployed && g.marines > 0 {
		grid.Fill(g.armyAt.X-armyPad, g.armyAt.Y-armyPad,
			g.armyAt.X+armyPad+1, g.armyAt.Y+armyPad+1, sc2.Self)
	}

	return grid
}

// observe builds the observation of tick n
func (g *Skirmish) observe(n int) sc2.Observation {
	selected := make([]sc2.UnitType, len(g.selected))
	copy(selected, g.selected)

	return sc2.Observation{
		Player:    g.player(),
		Minimap:   g.minimap(n),
		Screen:    g.screen(),
		Available: g.available(),
		Selected:  selected,
	}
}
