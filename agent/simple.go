package agent

import (
	"credence/game"
	"credence/searcher"
	"credence/utils"

	"golang.org/x/exp/rand"
)

// RandomAgent plays uniformly at random and ignores everything it hears.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Initialize(game.Game, int, []game.Outcome) error { return nil }

func (a *RandomAgent) RequestMove(legal []game.Move) (game.Move, error) {
	return utils.Choose(a.rng, legal), nil
}

func (a *RandomAgent) ReceivePercept(game.Percept) error { return nil }

func (a *RandomAgent) ReceiveClaims([]game.Claim) error { return nil }

// TruthfulAgent makes a claim it knows to be true whenever it can, otherwise it
// plays at random. It tracks what it perceives but does not model anyone, and
// ignores claims.
type TruthfulAgent struct {
	rng    *rand.Rand
	game   game.Game
	index  int
	worlds searcher.Belief
}

func NewTruthful(rng *rand.Rand) *TruthfulAgent {
	return &TruthfulAgent{rng: rng}
}

func (a *TruthfulAgent) Initialize(g game.Game, index int, starts []game.Outcome) error {
	a.game, a.index = g, index
	a.worlds = searcher.NewBelief(starts)
	return nil
}

func (a *TruthfulAgent) RequestMove(legal []game.Move) (game.Move, error) {
	var claims []game.Move
	for _, move := range legal {
		statement, ok := a.game.IsClaim(move)
		if ok && a.worlds.All(statement.Holds) {
			claims = append(claims, move)
		}
	}

	options := legal
	if len(claims) > 0 {
		options = claims
	}
	move := utils.Choose(a.rng, options)
	a.worlds = searcher.Advance(a.game, a.worlds, a.index, move)
	return move, nil
}

func (a *TruthfulAgent) ReceivePercept(percept game.Percept) error {
	worlds, err := a.worlds.Filter(percept.Holds)
	if err != nil {
		return err
	}
	a.worlds = worlds
	return nil
}

func (a *TruthfulAgent) ReceiveClaims([]game.Claim) error { return nil }
