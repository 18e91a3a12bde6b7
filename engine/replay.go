package engine

import (
	"fmt"

	"credence/game"
)

// Replay feeds agent the history of state as seen from seat index: its
// perceived initial states, then per step its own recorded move as the only
// legal option, its percepts and its claims.
func Replay(g game.Game, state game.State, index int, agent Agent) error {
	if err := agent.Initialize(g, index, g.PerceivedInitialStates(g.Root(state), index)); err != nil {
		return err
	}

	for _, step := range g.History(state) {
		own := step.Move[index]
		played, err := agent.RequestMove([]game.Move{own})
		if err != nil {
			return err
		}
		if played != own {
			return fmt.Errorf("%w: replaying agent %d played %s instead of %s", ErrIllegalMove, index, g.MoveName(played), g.MoveName(own))
		}

		for _, percept := range g.Percepts(step.Next, step.Move)[index] {
			if err := agent.ReceivePercept(percept); err != nil {
				return err
			}
		}
		if err := agent.ReceiveClaims(game.ClaimsFromMove(g, step.Move)[index]); err != nil {
			return err
		}
	}
	return nil
}
