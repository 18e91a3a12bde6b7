package games

import (
	"testing"

	"credence/game"
	"credence/utils"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("every registered game is named after its key", func(t *testing.T) {
		for _, name := range Names() {
			g, err := Lookup(name)
			require.NoError(t, err)
			require.Equal(t, name, g.Name())
		}
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := Lookup("chess")
		require.ErrorIs(t, err, ErrUnknownGame)
	})
}

// reachable enumerates every state reachable from the game's roots.
func reachable(g game.Game) []game.State {
	var states []game.State
	frontier := make([]game.State, 0)
	for _, outcome := range g.InitialStates() {
		frontier = append(frontier, outcome.State)
	}
	for len(frontier) > 0 {
		state := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		states = append(states, state)
		if state.IsTerminal() {
			continue
		}
		for _, move := range utils.CartesianProduct(state.LegalMoves()) {
			frontier = append(frontier, g.Next(state, move))
		}
	}
	return states
}

func TestPayoffs(t *testing.T) {
	for _, name := range Names() {
		g, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name+" pays every agent between 0 and 100 at every terminal state", func(t *testing.T) {
			terminals := 0
			for _, state := range reachable(g) {
				utilities, err := state.Utilities()
				if !state.IsTerminal() {
					require.ErrorIs(t, err, game.ErrInvalidTerminalAccess)
					continue
				}
				terminals++
				require.NoError(t, err)
				require.Len(t, utilities, g.NumAgents())
				for _, u := range utilities {
					require.GreaterOrEqual(t, u, 0)
					require.LessOrEqual(t, u, 100)
				}
			}
			require.Positive(t, terminals)
		})

		t.Run(name+" keeps states comparable by key", func(t *testing.T) {
			seen := make(map[game.StateKey]bool)
			for _, state := range reachable(g) {
				require.False(t, seen[state.Key()], "duplicate key %q", state.Key())
				seen[state.Key()] = true

				history := g.History(state)
				require.Len(t, history, state.Turn())
				if len(history) > 0 {
					require.Equal(t, state.Key(), history[len(history)-1].Next.Key())
				}
				require.Equal(t, 0, g.Root(state).Turn())
			}
		})

		t.Run(name+" sends one percept list per agent after every ply", func(t *testing.T) {
			for _, state := range reachable(g) {
				if state.Turn() == 0 {
					continue
				}
				history := g.History(state)
				percepts := g.Percepts(state, history[len(history)-1].Move)
				require.Len(t, percepts, g.NumAgents())
				for _, forAgent := range percepts {
					for _, percept := range forAgent {
						require.True(t, percept.Holds(state), "a percept must hold in the state that produced it")
					}
				}
			}
		})

		t.Run(name+" lets every agent consider the actual initial state possible", func(t *testing.T) {
			for _, outcome := range g.InitialStates() {
				for agent := 0; agent < g.NumAgents(); agent++ {
					perceived := g.PerceivedInitialStates(outcome.State, agent)
					keys := make([]game.StateKey, 0, len(perceived))
					for _, p := range perceived {
						keys = append(keys, p.State.Key())
					}
					require.Contains(t, keys, outcome.State.Key())
				}
			}
		})
	}
}
