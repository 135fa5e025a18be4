package cave

import (
	"fmt"
	"maps"
	"slices"
)

// Cell is a grid position. Rows grow upwards and columns to the right,
// both starting at 1.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("%d%d", c.Row, c.Col)
}

// Layout describes a cave: its size and where the features are.
// A nil Wumpus gives a five-letter alphabet with no Shoot.
type Layout struct {
	Name     string `json:"name" yaml:"name"`
	Rows     int    `json:"rows" yaml:"rows"`
	Cols     int    `json:"cols" yaml:"cols"`
	Entrance Cell   `json:"entrance" yaml:"entrance"`
	Treasure Cell   `json:"treasure" yaml:"treasure"`
	Wumpus   *Cell  `json:"wumpus,omitempty" yaml:"wumpus,omitempty"`
	Pits     []Cell `json:"pits,omitempty" yaml:"pits,omitempty"`
}

// Classic is the 3x3 wumpus cave:
//
//	pit       .         wumpus
//	.         treasure  .
//	entrance  .         pit
var Classic = Layout{
	Name:     "wumpus",
	Rows:     3,
	Cols:     3,
	Entrance: Cell{1, 1},
	Treasure: Cell{2, 2},
	Wumpus:   &Cell{3, 3},
	Pits:     []Cell{{1, 3}, {3, 1}},
}

// Builtin returns the layouts shipped with the simulator, Classic first.
func Builtin() []Layout {
	return []Layout{
		Classic,
		{
			// No wumpus: the alphabet has no Shoot.
			Name:     "quiet",
			Rows:     2,
			Cols:     3,
			Entrance: Cell{1, 1},
			Treasure: Cell{2, 3},
			Pits:     []Cell{{2, 2}},
		},
		{
			Name:     "gauntlet",
			Rows:     4,
			Cols:     4,
			Entrance: Cell{1, 1},
			Treasure: Cell{4, 4},
			Wumpus:   &Cell{3, 4},
			Pits:     []Cell{{2, 2}, {4, 2}, {1, 4}},
		},
	}
}

func (l Layout) inside(c Cell) bool {
	return c.Row >= 1 && c.Row <= l.Rows && c.Col >= 1 && c.Col <= l.Cols
}

func (l Layout) isPit(c Cell) bool {
	return slices.Contains(l.Pits, c)
}

// Validate checks that every feature lies on the grid and that features
// do not share a cell.
func (l Layout) Validate() error {
	if l.Rows < 1 || l.Cols < 1 || l.Rows > 9 || l.Cols > 9 {
		return fmt.Errorf("cave %q: grid %dx%d must be between 1x1 and 9x9", l.Name, l.Rows, l.Cols)
	}

	named := map[string]Cell{
		"entrance": l.Entrance,
		"treasure": l.Treasure,
	}
	if l.Wumpus != nil {
		named["wumpus"] = *l.Wumpus
	}
	for i, p := range l.Pits {
		named[fmt.Sprintf("pit #%d", i+1)] = p
	}

	seen := make(map[Cell]string, len(named))
	for _, what := range slices.Sorted(maps.Keys(named)) {
		c := named[what]
		if !l.inside(c) {
			return fmt.Errorf("cave %q: %s at %s is off the grid", l.Name, what, c)
		}
		if other, ok := seen[c]; ok {
			return fmt.Errorf("cave %q: %s and %s share cell %s", l.Name, other, what, c)
		}
		seen[c] = what
	}
	return nil
}
