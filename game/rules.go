package game

import (
	"errors"
	"fmt"

	"credence/utils"

	"golang.org/x/exp/rand"
)

var ErrInvalidTerminalAccess = errors.New("utilities requested on a non-terminal state")

// TerminalAccess returns the error states report when Utilities is called too early.
func TerminalAccess(state State) error {
	return fmt.Errorf("%w: turn %d, state %q", ErrInvalidTerminalAccess, state.Turn(), state.Key())
}

// PossibleStatesAfterMove lists every state reachable when agent plays move and
// every other agent plays any of its legal moves.
func PossibleStatesAfterMove(g Game, state State, agent int, move Move) []State {
	legal := state.LegalMoves()
	options := make([][]Move, len(legal))
	copy(options, legal)
	options[agent] = []Move{move}

	combinations := utils.CartesianProduct(options)
	states := make([]State, 0, len(combinations))
	for _, combination := range combinations {
		states = append(states, g.Next(state, combination))
	}
	return states
}

// ClaimsFromMove groups the claims in a combined move by receiver.
func ClaimsFromMove(g Game, move CombinedMove) [][]Claim {
	claims := make([][]Claim, g.NumAgents())
	for sender, m := range move {
		statement, ok := g.IsClaim(m)
		if !ok {
			continue
		}
		for _, receiver := range statement.Receivers {
			claims[receiver] = append(claims[receiver], Claim{Sender: sender, Holds: statement.Holds, ID: statement.ID})
		}
	}
	return claims
}

// PreviousState returns the state a state was in before the given 1-based turn was played.
func PreviousState(g Game, state State, turn int) State {
	if turn <= 1 {
		return g.Root(state)
	}
	return g.History(state)[turn-2].Next
}

// ChooseWeighted draws an outcome with probability proportional to its weight.
func ChooseWeighted(rng *rand.Rand, outcomes []Outcome) Outcome {
	total := 0
	for _, outcome := range outcomes {
		total += outcome.Weight
	}
	if total <= 0 {
		panic("cannot choose from outcomes without positive weight")
	}

	sampled := rng.Intn(total)
	for _, outcome := range outcomes {
		if sampled < outcome.Weight {
			return outcome
		}
		sampled -= outcome.Weight
	}
	return outcomes[len(outcomes)-1] // Unreachable with positive weights
}

// Conjunction holds when every predicate holds.
func Conjunction(predicates ...Predicate) Predicate {
	return func(state State) bool {
		for _, holds := range predicates {
			if !holds(state) {
				return false
			}
		}
		return true
	}
}
