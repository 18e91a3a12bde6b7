package searcher

import (
	"fmt"
	"math/big"

	"credence/game"
)

// Utilities is the expected payoff of every agent from state on, assuming each
// agent plays its best moves given what it believes.
func (s *Solver) Utilities(state game.State) ([]*big.Rat, error) {
	return s.utilitiesOf(state)
}

func (s *Solver) utilitiesOf(state game.State) ([]*big.Rat, error) {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		return nil, fmt.Errorf("%w: %d at %q", ErrDepthExceeded, s.maxDepth, state.Key())
	}

	if state.IsTerminal() {
		payoffs, err := state.Utilities()
		if err != nil {
			return nil, err
		}
		utilities := make([]*big.Rat, len(payoffs))
		for i, payoff := range payoffs {
			utilities[i] = big.NewRat(int64(payoff), 1)
		}
		return utilities, nil
	}

	legal := state.LegalMoves()
	var choosers []int
	for agent, moves := range legal {
		if len(moves) > 1 {
			choosers = append(choosers, agent)
		}
	}

	switch len(choosers) {
	case 0:
		move := make(game.CombinedMove, len(legal))
		for agent, moves := range legal {
			move[agent] = moves[0]
		}
		return s.utilitiesOf(s.game.Next(state, move))
	case 1:
	default:
		return nil, fmt.Errorf("%w: agents %v at %q", ErrUnsupportedSimultaneousChoice, choosers, state.Key())
	}

	chooser := choosers[0]
	belief, err := s.beliefAt(state, chooser)
	if err != nil {
		return nil, err
	}
	moves, err := s.BestMoves(chooser, legal[chooser], nil, belief)
	if err != nil {
		return nil, err
	}

	// An agent indifferent between its best moves plays each of them equally often
	sums := make([]*big.Rat, s.game.NumAgents())
	for i := range sums {
		sums[i] = new(big.Rat)
	}
	for _, move := range moves {
		utilities, err := s.utilityWithChoice(state, chooser, move)
		if err != nil {
			return nil, err
		}
		for i, u := range utilities {
			sums[i].Add(sums[i], u)
		}
	}
	count := big.NewRat(int64(len(moves)), 1)
	for i := range sums {
		sums[i].Quo(sums[i], count)
	}
	return sums, nil
}

// utilityWithChoice values state when agent plays move and every other agent
// plays its only legal move. The returned slice must not be modified.
func (s *Solver) utilityWithChoice(state game.State, agent int, move game.Move) ([]*big.Rat, error) {
	key := moveKey{state: state.Key(), agent: agent, move: move}
	if s.cacheable() {
		if utilities, ok := s.moveValues[key]; ok {
			s.metrics.AddCacheHit()
			return utilities, nil
		}
		s.metrics.AddCacheMiss()
	}

	legal := state.LegalMoves()
	combined := make(game.CombinedMove, len(legal))
	for other, moves := range legal {
		if other == agent {
			combined[other] = move
			continue
		}
		if len(moves) != 1 {
			return nil, fmt.Errorf("%w: agents %d and %d at %q", ErrUnsupportedSimultaneousChoice, agent, other, state.Key())
		}
		combined[other] = moves[0]
	}

	s.metrics.AddEvaluation()
	utilities, err := s.utilitiesOf(s.game.Next(state, combined))
	if err != nil {
		return nil, err
	}

	if s.cacheable() {
		s.moveValues[key] = utilities
	}
	return utilities, nil
}

// BestMoves returns every legal move maximising agent's belief-weighted expected
// utility, in legal order. A nil signature skips the signature cache.
func (s *Solver) BestMoves(agent int, legal []game.Move, signature Signature, belief Belief) ([]game.Move, error) {
	if len(legal) == 1 {
		return []game.Move{legal[0]}, nil
	}
	if len(belief) == 0 {
		return nil, fmt.Errorf("%w: agent %d choosing among %d moves", ErrEmptyBeliefState, agent, len(legal))
	}

	var key string
	if signature != nil && s.cacheable() {
		key = signature.key(agent)
		if moves, ok := s.bestMoves[key]; ok {
			s.metrics.AddCacheHit()
			return moves, nil
		}
		s.metrics.AddCacheMiss()
	}

	var best []game.Move
	var max *big.Rat
	for _, move := range legal {
		sum := new(big.Rat)
		for _, world := range belief {
			utilities, err := s.utilityWithChoice(world.State, agent, move)
			if err != nil {
				return nil, err
			}
			sum.Add(sum, new(big.Rat).Mul(world.Weight, utilities[agent]))
		}

		switch {
		case max == nil || sum.Cmp(max) > 0:
			max = sum
			best = []game.Move{move}
		case sum.Cmp(max) == 0:
			best = append(best, move)
		}
	}

	if key != "" {
		s.bestMoves[key] = best
	}
	return best, nil
}
