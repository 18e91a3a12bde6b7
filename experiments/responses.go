package experiments

import (
	"credence/agent"
	"credence/engine"
	"credence/game"
	"credence/games/investigation"
	"credence/searcher"
	"credence/utils"

	"golang.org/x/exp/rand"
)

// Response is what a reasoning detective would guess after hearing two claims.
type Response struct {
	First, Second game.Move
	Best          []game.Move
}

// InvestigationResponses asks a reasoning detective for its best guesses after
// every combination of suspects' claims.
func InvestigationResponses(seed uint64, options ...searcher.Option) ([]Response, error) {
	g := investigation.New()
	detective := agent.NewReasoning(rand.New(rand.NewSource(seed)), options...)
	root := g.InitialStates()[0].State

	var responses []Response
	for _, claims := range utils.CartesianProduct([][]game.Move{investigation.Claims, investigation.Claims}) {
		state := g.Next(root, game.CombinedMove{investigation.NoOp, claims[0], investigation.NoOp})
		state = g.Next(state, game.CombinedMove{investigation.NoOp, investigation.NoOp, claims[1]})

		if err := engine.Replay(g, state, investigation.Detective, detective); err != nil {
			return nil, err
		}
		best, err := detective.BestMoves(state.LegalMoves()[investigation.Detective])
		if err != nil {
			return nil, err
		}
		responses = append(responses, Response{First: claims[0], Second: claims[1], Best: best})
	}
	return responses, nil
}
