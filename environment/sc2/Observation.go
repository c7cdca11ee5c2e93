// Package sc2 defines the observation and command vocabulary shared by
// real-time strategy hosts and the agents that play against them.
//
// The vocabulary mirrors the feature-layer interface of the StarCraft II
// learning environment: a square minimap layer describing which player
// owns each cell, per-unit-type pixel positions on the screen, player
// supply scalars, and the set of functions that may be issued this tick.
package sc2

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Relative is the allegiance of a minimap cell relative to the player
type Relative int

const (
	Background Relative = iota
	Self
	Ally
	Neutral
	Hostile
)

// UnitType identifies a kind of unit or structure on the screen
type UnitType int

const (
	CommandCenter UnitType = 18
	SupplyDepot   UnitType = 19
	Barracks      UnitType = 21
	SCV           UnitType = 45
	Marine        UnitType = 48
	MineralField  UnitType = 341
)

// Screen footprints, in pixels, of the structures whose counts are
// recovered from pixel counts
const (
	PixelsPerDepot    = 69
	PixelsPerBarracks = 137
)

// Point is a coordinate on the screen or minimap
type Point struct {
	X, Y int
}

// Player holds the supply scalars of the observing player
type Player struct {
	FoodUsed    int
	FoodCap     int
	FoodArmy    int
	FoodWorkers int
}

// SupplyFree returns the unused supply of the player
func (p Player) SupplyFree() int {
	return p.FoodCap - p.FoodUsed
}

// Grid is a square feature layer indexed by (x, y)
type Grid struct {
	size  int
	cells []Relative
}

// NewGrid returns a new size x size Grid filled with Background
func NewGrid(size int) Grid {
	return Grid{size: size, cells: make([]Relative, size*size)}
}

// Size returns the side length of the grid
func (g Grid) Size() int {
	return g.size
}

// At returns the value of cell (x, y)
func (g Grid) At(x, y int) Relative {
	return g.cells[y*g.size+x]
}

// Set sets the value of cell (x, y)
func (g Grid) Set(x, y int, r Relative) {
	g.cells[y*g.size+x] = r
}

// Fill sets every cell in the rectangle [x0, x1) x [y0, y1) to r. The
// rectangle is clipped to the grid.
func (g Grid) Fill(x0, y0, x1, y1 int, r Relative) {
	for y := max(y0, 0); y < min(y1, g.size); y++ {
		for x := max(x0, 0); x < min(x1, g.size); x++ {
			g.Set(x, y, r)
		}
	}
}

// Positions returns the coordinates of all cells with value r in
// row-major order
func (g Grid) Positions(r Relative) []Point {
	var points []Point
	for i, cell := range g.cells {
		if cell == r {
			points = append(points, Point{X: i % g.size, Y: i / g.size})
		}
	}
	return points
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	cells := make([]Relative, len(g.cells))
	copy(cells, g.cells)
	return Grid{size: g.size, cells: cells}
}

// Observation is everything the host reports to the agent on one tick
type Observation struct {
	Player  Player
	Minimap Grid

	// Screen holds the pixel positions of each unit type visible on
	// the screen
	Screen map[UnitType][]Point

	// Available is the set of functions that can be issued this tick
	Available map[FunctionID]bool

	// Selected holds the unit types of the current selection
	Selected []UnitType
}

// Pixels returns the screen pixels covered by units of type u
func (o Observation) Pixels(u UnitType) []Point {
	return o.Screen[u]
}

// Has returns whether any unit of type u is on the screen
func (o Observation) Has(u UnitType) bool {
	return len(o.Screen[u]) > 0
}

// CanIssue returns whether function f is available this tick
func (o Observation) CanIssue(f FunctionID) bool {
	return o.Available[f]
}

// SelectedIs returns whether the first selected unit is of type u
func (o Observation) SelectedIs(u UnitType) bool {
	return len(o.Selected) > 0 && o.Selected[0] == u
}

// Centre returns the rounded mean position of the pixels of unit type
// u and whether any such pixels exist
func (o Observation) Centre(u UnitType) (Point, bool) {
	pixels := o.Screen[u]
	if len(pixels) == 0 {
		return Point{}, false
	}

	xs := make([]float64, len(pixels))
	ys := make([]float64, len(pixels))
	for i, p := range pixels {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
	}
	return Point{
		X: int(math.Round(stat.Mean(xs, nil))),
		Y: int(math.Round(stat.Mean(ys, nil))),
	}, true
}

// FacilityCount converts a number of screen pixels into a number of
// structures with the given footprint, rounding to the nearest count
func FacilityCount(pixels, footprint int) int {
	if footprint <= 0 {
		return 0
	}
	return int(math.Round(float64(pixels) / float64(footprint)))
}

// Functions returns the available functions in ascending order
func (o Observation) Functions() []FunctionID {
	ids := make([]FunctionID, 0, len(o.Available))
	for id, ok := range o.Available {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
