package engine

import (
	"fmt"

	"credence/game"
	"credence/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Engine struct {
	Game   game.Game
	Agents []Agent
}

func New(g game.Game, agents ...Agent) (*Engine, error) {
	if len(agents) != g.NumAgents() {
		return nil, fmt.Errorf("%w: %s needs %d, got %d", ErrAgentCount, g.Name(), g.NumAgents(), len(agents))
	}
	return &Engine{Game: g, Agents: agents}, nil
}

// Play runs a playout from an initial state drawn from the game's prior.
func (e *Engine) Play(rng *rand.Rand) (Result, error) {
	return e.Run(game.ChooseWeighted(rng, e.Game.InitialStates()).State)
}

// PlayFiltered is Play restricted to the initial states satisfying filter.
func (e *Engine) PlayFiltered(rng *rand.Rand, filter game.Predicate) (Result, error) {
	var outcomes []game.Outcome
	for _, outcome := range e.Game.InitialStates() {
		if filter(outcome.State) {
			outcomes = append(outcomes, outcome)
		}
	}
	if len(outcomes) == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrNoInitialState, e.Game.Name())
	}
	return e.Run(game.ChooseWeighted(rng, outcomes).State)
}

// Run executes the entire game loop from initial until a terminal state is reached.
func (e *Engine) Run(initial game.State) (Result, error) {
	g := e.Game
	for i, agent := range e.Agents {
		if err := agent.Initialize(g, i, g.PerceivedInitialStates(initial, i)); err != nil {
			return Result{}, fmt.Errorf("initializing agent %d: %w", i, err)
		}
	}

	state := initial
	for !state.IsTerminal() {
		if state.Turn() >= MaxTurns {
			return Result{}, fmt.Errorf("%w: %s after %d turns", ErrTooManyTurns, g.Name(), state.Turn())
		}

		legal := state.LegalMoves()
		move := make(game.CombinedMove, len(e.Agents))
		for i, agent := range e.Agents {
			m, err := agent.RequestMove(legal[i])
			if err != nil {
				return Result{}, fmt.Errorf("agent %d at turn %d: %w", i, state.Turn(), err)
			}
			if !utils.Contains(legal[i], m) {
				return Result{}, fmt.Errorf("%w: agent %d played %s at turn %d", ErrIllegalMove, i, g.MoveName(m), state.Turn())
			}
			move[i] = m
		}

		state = g.Next(state, move)
		log.Trace().Msgf("%s turn %d: %s", g.Name(), state.Turn(), describe(g, move))

		if err := e.dispatch(state, move); err != nil {
			return Result{}, err
		}
	}

	utilities, err := state.Utilities()
	if err != nil {
		return Result{}, err
	}
	return Result{Initial: initial, Final: state, Utilities: utilities}, nil
}

func (e *Engine) dispatch(next game.State, move game.CombinedMove) error {
	percepts := e.Game.Percepts(next, move)
	claims := game.ClaimsFromMove(e.Game, move)
	for i, agent := range e.Agents {
		for _, percept := range percepts[i] {
			if err := agent.ReceivePercept(percept); err != nil {
				return fmt.Errorf("agent %d percept %d: %w", i, percept.ID, err)
			}
		}
		if err := agent.ReceiveClaims(claims[i]); err != nil {
			return fmt.Errorf("agent %d claims: %w", i, err)
		}
	}
	return nil
}

func describe(g game.Game, move game.CombinedMove) string {
	names := make([]string, len(move))
	for i, m := range move {
		names[i] = g.MoveName(m)
	}
	return fmt.Sprint(names)
}
