// Package agent provides the archetypes that can take a seat in a game.
package agent

import (
	"errors"
	"fmt"

	"credence/engine"
	"credence/searcher"

	"golang.org/x/exp/rand"
)

const (
	Proposed = "proposed"
	Trusting = "trusting"
	Random   = "random"
	Truthful = "truthful"
)

// Archetypes lists every archetype New accepts.
var Archetypes = []string{Random, Truthful, Trusting, Proposed}

var ErrUnknownArchetype = errors.New("unknown agent archetype")

// New creates an agent of the named archetype. Solver options only affect the
// reasoning archetypes.
func New(name string, seed uint64, options ...searcher.Option) (engine.Agent, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case Proposed:
		return NewReasoning(rng, options...), nil
	case Trusting:
		literal := append(append([]searcher.Option{}, options...), searcher.WithLiteralClaims())
		return NewReasoning(rng, literal...), nil
	case Random:
		return NewRandom(rng), nil
	case Truthful:
		return NewTruthful(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
}
