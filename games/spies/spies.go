// Package spies implements a cooperative two-agent game: the handler (agent 1)
// knows which wire defuses the bomb and tells the field agent (agent 0), who
// then cuts one. Both win or lose together.
package spies

import "credence/game"

const (
	CutRed game.Move = iota
	CutBlue
	NoOp
	ClaimRed
	ClaimBlue
)

var names = game.Names{"CUT_RED", "CUT_BLUE", "NO_OP", "CLAIM_RED", "CLAIM_BLUE"}

const (
	FieldAgent = 0
	Handler    = 1
)

type Game struct{}

func New() *Game {
	return &Game{}
}

func (g *Game) Name() string { return "cooperative-spies" }

func (g *Game) NumAgents() int { return 2 }

func (g *Game) MoveName(m game.Move) string { return names.Of(m) }

func (g *Game) InitialStates() []game.Outcome {
	return []game.Outcome{
		{State: newState(true), Weight: 1, ID: 300},
		{State: newState(false), Weight: 1, ID: 301},
	}
}

func (g *Game) PerceivedInitialStates(actual game.State, agent int) []game.Outcome {
	if agent == FieldAgent {
		return g.InitialStates()
	}
	var perceived []game.Outcome
	for _, outcome := range g.InitialStates() {
		if of(outcome.State).red == of(actual).red {
			perceived = append(perceived, outcome)
		}
	}
	return perceived
}

func (g *Game) Root(s game.State) game.State { return of(s).root }

func (g *Game) History(s game.State) []game.Step { return of(s).path.Steps() }

func (g *Game) Next(s game.State, move game.CombinedMove) game.State {
	return of(s).next(move)
}

func (g *Game) Percepts(next game.State, _ game.CombinedMove) [][]game.Percept {
	seen := of(next).path.Move(0)[Handler]
	return [][]game.Percept{
		{{Holds: func(s game.State) bool { return of(s).path.Move(0)[Handler] == seen }, ID: 201 + int(seen)}},
		{{Holds: func(game.State) bool { return true }, ID: 200}},
	}
}

func (g *Game) IsClaim(move game.Move) (game.Statement, bool) {
	switch move {
	case ClaimRed:
		return game.Statement{Receivers: []int{FieldAgent}, Holds: IsRed, ID: 100}, true
	case ClaimBlue:
		return game.Statement{Receivers: []int{FieldAgent}, Holds: IsBlue, ID: 101}, true
	default:
		return game.Statement{}, false
	}
}

// IsRed holds when the red wire is the one to cut.
func IsRed(s game.State) bool  { return of(s).red }
func IsBlue(s game.State) bool { return !of(s).red }

type State struct {
	root *State
	path game.Path
	red  bool
}

func newState(red bool) *State {
	s := &State{red: red}
	s.root = s
	return s
}

func of(s game.State) *State {
	return s.(*State)
}

func (s *State) next(move game.CombinedMove) *State {
	n := &State{root: s.root, red: s.red}
	n.path = s.path.Extend(move, n)
	return n
}

func (s *State) LegalMoves() [][]game.Move {
	if s.Turn() == 0 {
		return [][]game.Move{{NoOp}, {ClaimRed, ClaimBlue}}
	}
	return [][]game.Move{{CutRed, CutBlue}, {NoOp}}
}

func (s *State) IsTerminal() bool { return s.Turn() == 2 }
func (s *State) Turn() int        { return s.path.Len() }

func (s *State) Utilities() ([]int, error) {
	if !s.IsTerminal() {
		return nil, game.TerminalAccess(s)
	}
	utility := 0
	if (s.path.Last()[FieldAgent] == CutRed) == s.red {
		utility = 100
	}
	return []int{utility, utility}, nil
}

func (s *State) Key() game.StateKey {
	if s.red {
		return s.path.Key("red")
	}
	return s.path.Key("blue")
}
