package cave

import (
	"fmt"

	"github.com/aretw0/labyrinth/pkg/domain"
)

// Letters of the cave alphabet, in declaration order.
const (
	Up domain.Symbol = iota
	Down
	Left
	Right
	Grab
	Shoot
)

// Alphabet returns the cave alphabet. Shoot is only present when withShoot is set.
// Every letter accepts its Portuguese word, the initial of that word and the English word.
func Alphabet(withShoot bool) *domain.Alphabet {
	defs := []domain.SymbolDef{
		{Name: "Up", Aliases: []string{"cima", "c", "up"}},
		{Name: "Down", Aliases: []string{"baixo", "b", "down"}},
		{Name: "Left", Aliases: []string{"esquerda", "e", "left"}},
		{Name: "Right", Aliases: []string{"direita", "d", "right"}},
		{Name: "Grab", Aliases: []string{"pegar", "p", "grab"}},
	}
	if withShoot {
		defs = append(defs, domain.SymbolDef{Name: "Shoot", Aliases: []string{"atirar", "a", "shoot"}})
	}
	a, err := domain.NewAlphabet(defs...)
	if err != nil {
		panic(err) // static table
	}
	return a
}

// Layer encodes the treasure and wumpus flags of a state.
type Layer byte

const (
	LayerAlive         Layer = 'A' // wumpus alive, no treasure
	LayerAliveTreasure Layer = 'B' // wumpus alive, treasure held
	LayerDead          Layer = 'C' // wumpus dead, no treasure
	LayerDeadTreasure  Layer = 'D' // wumpus dead, treasure held
)

func (l Layer) hasTreasure() bool { return l == LayerAliveTreasure || l == LayerDeadTreasure }
func (l Layer) wumpusAlive() bool { return l == LayerAlive || l == LayerAliveTreasure }

func (l Layer) withTreasure() Layer {
	if l == LayerAlive {
		return LayerAliveTreasure
	}
	return LayerDeadTreasure
}

func (l Layer) withDeadWumpus() Layer {
	if l == LayerAlive {
		return LayerDead
	}
	return LayerDeadTreasure
}

// StateName returns the state name for a cell in a layer, e.g. "B22".
func StateName(layer Layer, c Cell) string {
	return fmt.Sprintf("%c%d%d", layer, c.Row, c.Col)
}

func (l Layout) layers() []Layer {
	if l.Wumpus == nil {
		return []Layer{LayerAlive, LayerAliveTreasure}
	}
	return []Layer{LayerAlive, LayerAliveTreasure, LayerDead, LayerDeadTreasure}
}

// Compile generates the automaton of the layout.
//
// Walls are self-loops, pits have no outgoing transitions, Grab on the
// treasure moves to the treasure layer, and while the wumpus lives its cell
// only answers Shoot. The accepting states are the entrance once the
// treasure is held.
func (l Layout) Compile() (*domain.Automaton, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	layers := l.layers()
	var names []string
	for _, layer := range layers {
		for row := 1; row <= l.Rows; row++ {
			for col := 1; col <= l.Cols; col++ {
				names = append(names, StateName(layer, Cell{row, col}))
			}
		}
	}
	states, err := domain.NewStateSet(names...)
	if err != nil {
		return nil, err
	}

	alphabet := Alphabet(l.Wumpus != nil)
	table := domain.NewTable(states.Len(), alphabet.Len())
	state := func(layer Layer, c Cell) domain.State {
		s, _ := states.Lookup(StateName(layer, c))
		return s
	}

	for _, layer := range layers {
		for row := 1; row <= l.Rows; row++ {
			for col := 1; col <= l.Cols; col++ {
				here := Cell{row, col}
				if err := l.compileCell(table, alphabet, state, layer, here); err != nil {
					return nil, err
				}
			}
		}
	}

	var finals []domain.State
	for _, layer := range layers {
		if layer.hasTreasure() {
			finals = append(finals, state(layer, l.Entrance))
		}
	}

	return domain.NewAutomaton(l.Name, alphabet, states, table, state(LayerAlive, l.Entrance), finals...)
}

func (l Layout) compileCell(table *domain.Table, alphabet *domain.Alphabet, state func(Layer, Cell) domain.State, layer Layer, here Cell) error {
	from := state(layer, here)
	if l.isPit(here) {
		return nil
	}
	if err := table.SetAll(from, from); err != nil {
		return err
	}

	if l.Wumpus != nil && layer.wumpusAlive() && here == *l.Wumpus {
		return table.Set(from, Shoot, state(layer.withDeadWumpus(), here))
	}

	moves := map[domain.Symbol]Cell{
		Up:    {here.Row + 1, here.Col},
		Down:  {here.Row - 1, here.Col},
		Left:  {here.Row, here.Col - 1},
		Right: {here.Row, here.Col + 1},
	}
	for on, to := range moves {
		if l.inside(to) {
			if err := table.Set(from, on, state(layer, to)); err != nil {
				return err
			}
		}
	}

	if here == l.Treasure && !layer.hasTreasure() && alphabet.Contains(Grab) {
		return table.Set(from, Grab, state(layer.withTreasure(), here))
	}
	return nil
}
