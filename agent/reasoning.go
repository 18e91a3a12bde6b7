package agent

import (
	"credence/game"
	"credence/searcher"
	"credence/utils"

	"golang.org/x/exp/rand"
)

// Reasoning plays uniformly at random among its best moves. Its solver, and so
// its caches, survive from one playout to the next of the same game.
type Reasoning struct {
	*searcher.Mind
	solver  *searcher.Solver
	options []searcher.Option
	rng     *rand.Rand
}

func NewReasoning(rng *rand.Rand, options ...searcher.Option) *Reasoning {
	return &Reasoning{options: options, rng: rng}
}

func (a *Reasoning) Initialize(g game.Game, index int, starts []game.Outcome) error {
	if a.solver == nil || a.solver.Game() != g {
		a.solver = searcher.NewSolver(g, a.options...)
	}
	a.Mind = searcher.NewMind(a.solver)
	return a.Mind.Initialize(g, index, starts)
}

func (a *Reasoning) RequestMove(legal []game.Move) (game.Move, error) {
	best, err := a.BestMoves(legal)
	if err != nil {
		return 0, err
	}
	move := utils.Choose(a.rng, best)
	a.Commit(move)
	return move, nil
}
