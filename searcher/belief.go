package searcher

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"credence/game"
)

var ErrEmptyBeliefState = errors.New("no possible world is consistent with the observations")

// World is one possible state of the game, weighted relative to the other
// worlds of the same belief. Weights are never modified in place.
type World struct {
	State  game.State
	Weight *big.Rat
}

// Belief is an agent's weighted set of possible worlds. All worlds of a belief
// share the same turn.
type Belief []World

var one = big.NewRat(1, 1)

// NewBelief weights each starting state by its prior weight.
func NewBelief(starts []game.Outcome) Belief {
	belief := make(Belief, 0, len(starts))
	for _, start := range starts {
		belief = append(belief, World{State: start.State, Weight: big.NewRat(int64(start.Weight), 1)})
	}
	return belief
}

// Certain is the belief holding a single world.
func Certain(state game.State) Belief {
	return Belief{{State: state, Weight: one}}
}

// Filter keeps the worlds satisfying holds, weights unchanged.
func (b Belief) Filter(holds game.Predicate) (Belief, error) {
	filtered := make(Belief, 0, len(b))
	for _, world := range b {
		if holds(world.State) {
			filtered = append(filtered, world)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %d worlds excluded", ErrEmptyBeliefState, len(b))
	}
	return filtered, nil
}

// Advance branches every world over the other agents' legal moves with agent
// committed to move. A world's weight is split evenly among its branches.
func Advance(g game.Game, b Belief, agent int, move game.Move) Belief {
	advanced := make(Belief, 0, len(b))
	for _, world := range b {
		next := game.PossibleStatesAfterMove(g, world.State, agent, move)
		share := new(big.Rat).Quo(world.Weight, big.NewRat(int64(len(next)), 1))
		for _, state := range next {
			advanced = append(advanced, World{State: state, Weight: share})
		}
	}
	return advanced
}

// Turn is the shared turn of the worlds.
func (b Belief) Turn() (int, error) {
	if len(b) == 0 {
		return 0, ErrEmptyBeliefState
	}
	return b[0].State.Turn(), nil
}

// Total is the sum of all weights.
func (b Belief) Total() *big.Rat {
	return b.WeightOf(func(game.State) bool { return true })
}

// WeightOf sums the weights of the worlds satisfying holds.
func (b Belief) WeightOf(holds game.Predicate) *big.Rat {
	sum := new(big.Rat)
	for _, world := range b {
		if holds(world.State) {
			sum.Add(sum, world.Weight)
		}
	}
	return sum
}

// All reports whether holds is true in every world.
func (b Belief) All(holds game.Predicate) bool {
	for _, world := range b {
		if !holds(world.State) {
			return false
		}
	}
	return true
}

// Probability is the normalized weight of the worlds satisfying holds.
func (b Belief) Probability(holds game.Predicate) *big.Rat {
	total := b.Total()
	if total.Sign() == 0 {
		return new(big.Rat)
	}
	return new(big.Rat).Quo(b.WeightOf(holds), total)
}

// Equal compares worlds by key and weight, in order.
func (b Belief) Equal(other Belief) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i].State.Key() != other[i].State.Key() || b[i].Weight.Cmp(other[i].Weight) != 0 {
			return false
		}
	}
	return true
}

func (b Belief) clone() Belief {
	c := make(Belief, len(b))
	copy(c, b)
	return c
}

func (b Belief) String() string {
	parts := make([]string, len(b))
	for i, world := range b {
		parts[i] = fmt.Sprintf("%s=%s", world.State.Key(), world.Weight.RatString())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
