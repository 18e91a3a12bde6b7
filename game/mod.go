package game

import "fmt"

// Move is one action token from a game's finite alphabet. Games declare their
// moves as typed constants starting at zero so a move doubles as its own index.
type Move int

// CombinedMove holds one move per agent, indexed by agent.
type CombinedMove []Move

// StateKey identifies a state by its hidden facts and its full move history.
// Two states are equal iff their keys are equal.
type StateKey string

// Predicate is a truth condition over states, used for percepts and claims.
type Predicate func(State) bool

// State should be immutable - operations on State always return a new copy
type State interface {
	// LegalMoves lists the legal moves of every agent, indexed by agent
	LegalMoves() [][]Move
	IsTerminal() bool
	// Turn is the number of plies already played
	Turn() int
	// Utilities returns the payoff of every agent; only defined on terminal states
	Utilities() ([]int, error)
	Key() StateKey
}

// Outcome is one weighted branch of a prior over hidden facts. ID is stable and
// is recorded in history signatures.
type Outcome struct {
	State  State
	Weight int
	ID     int
}

// Percept is an observation an agent receives after a transition.
type Percept struct {
	Holds Predicate
	ID    int
}

// Statement is what a claim move asserts and to whom.
type Statement struct {
	Receivers []int
	Holds     Predicate
	ID        int
}

// Claim is a statement as delivered to one receiver.
type Claim struct {
	Sender int
	Holds  Predicate
	ID     int
}

// Step is one entry of a state's history: the combined move played and the state it produced.
type Step struct {
	Move CombinedMove
	Next State
}

// Game is the rule set of one game. Implementations are stateless.
type Game interface {
	Name() string
	NumAgents() int

	// InitialStates enumerates the prior over hidden facts
	InitialStates() []Outcome
	// PerceivedInitialStates is the prior as seen by agent given the actual initial state
	PerceivedInitialStates(actual State, agent int) []Outcome
	// Root returns the initial state a state descends from
	Root(state State) State

	// Percepts lists, per agent, what each agent observes after move produced next
	Percepts(next State, move CombinedMove) [][]Percept
	IsClaim(move Move) (Statement, bool)
	Next(state State, move CombinedMove) State
	History(state State) []Step

	MoveName(move Move) string
}

// Names is a helper for games that describe their moves with a fixed table.
type Names []string

func (n Names) Of(move Move) string {
	if int(move) < 0 || int(move) >= len(n) {
		return fmt.Sprintf("MOVE_%d", int(move))
	}
	return n[move]
}
