package terran

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samuelfneumann/sc2learn/environment/sc2"
)

// Kind is the kind of an abstract action
type Kind int

const (
	DoNothing Kind = iota
	BuildSupplyDepot
	BuildBarracks
	BuildMarine
	Attack
)

var kindNames = map[Kind]string{
	DoNothing:        "donothing",
	BuildSupplyDepot: "buildsupplydepot",
	BuildBarracks:    "buildbarracks",
	BuildMarine:      "buildmarine",
	Attack:           "attack",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Steps returns the number of ticks the move sequence of an action of
// kind k takes, including the deciding tick
func (k Kind) Steps() int {
	switch k {
	case BuildSupplyDepot, BuildBarracks:
		return 3
	case BuildMarine, Attack:
		return 2
	default:
		return 1
	}
}

// Action is one entry of the action catalog
type Action struct {
	Kind Kind

	// Target is the minimap point of Attack actions
	Target sc2.Point
}

func (a Action) String() string {
	if a.Kind != Attack {
		return a.Kind.String()
	}
	return fmt.Sprintf("%v_%d_%d", a.Kind, a.Target.X, a.Target.Y)
}

// Catalog is the fixed, ordered set of abstract actions the agent may
// choose among. An action is identified by its index in the Catalog.
type Catalog []Action

// NewCatalog returns the catalog for a minimap of the given size: doing
// nothing, building a supply depot, building a barracks, training a
// marine, and attacking the centre of each minimap quadrant
func NewCatalog(minimapSize int) Catalog {
	c := Catalog{
		{Kind: DoNothing},
		{Kind: BuildSupplyDepot},
		{Kind: BuildBarracks},
		{Kind: BuildMarine},
	}

	half := minimapSize / 2
	for x := half - 1; x < minimapSize; x += half {
		for y := half - 1; y < minimapSize; y += half {
			c = append(c, Action{
				Kind:   Attack,
				Target: sc2.Point{X: x - half/2, Y: y - half/2},
			})
		}
	}
	return c
}

// Len returns the number of actions in the catalog
func (c Catalog) Len() int {
	return len(c)
}

// Split returns the kind and target of action i
func (c Catalog) Split(i int) (Kind, int, int) {
	a := c[i]
	return a.Kind, a.Target.X, a.Target.Y
}

// OfKind returns the indices of all actions of kind k
func (c Catalog) OfKind(k Kind) []int {
	var indices []int
	for i, a := range c {
		if a.Kind == k {
			indices = append(indices, i)
		}
	}
	return indices
}

// Names returns the names of the actions in catalog order
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, a := range c {
		names[i] = a.String()
	}
	return names
}

// Index returns the index of the action with the given name
func (c Catalog) Index(name string) (int, error) {
	for i, a := range c {
		if a.String() == name {
			return i, nil
		}
	}

	// Accept attack actions given by coordinates alone, e.g. "15_47"
	if parts := strings.Split(name, "_"); len(parts) == 2 {
		x, errX := strconv.Atoi(parts[0])
		y, errY := strconv.Atoi(parts[1])
		if errX == nil && errY == nil {
			return c.Index(Action{Kind: Attack,
				Target: sc2.Point{X: x, Y: y}}.String())
		}
	}
	return 0, fmt.Errorf("index: no action named %q", name)
}
