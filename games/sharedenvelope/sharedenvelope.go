// Package sharedenvelope implements a three-agent game around one prize hidden
// in one of two envelopes. Agent 0 knows where it is and tells agents 1 and 2.
// Agent 2 picks an envelope. Usually the game is cooperative and ends there with
// everyone paid alike; one time in ten agent 0 is a saboteur, paid when agent 2
// picks wrong, and agent 1, who knows whether the game is cooperative, picks
// again afterwards.
package sharedenvelope

import (
	"fmt"

	"credence/game"
)

const (
	ChooseFirst game.Move = iota
	ChooseSecond
	NoOp
	ClaimInFirst
	ClaimInSecond
)

var names = game.Names{"CHOOSE_FIRST", "CHOOSE_SECOND", "NO_OP", "CLAIM_IN_FIRST", "CLAIM_IN_SECOND"}

const (
	Insider  = 0
	Observer = 1
	Picker   = 2
)

type Game struct{}

func New() *Game {
	return &Game{}
}

func (g *Game) Name() string { return "probable-shared-envelope" }

func (g *Game) NumAgents() int { return 3 }

func (g *Game) MoveName(m game.Move) string { return names.Of(m) }

func (g *Game) InitialStates() []game.Outcome {
	return []game.Outcome{
		{State: NewState(true, true), Weight: 9, ID: 300},
		{State: NewState(true, false), Weight: 9, ID: 301},
		{State: NewState(false, true), Weight: 1, ID: 302},
		{State: NewState(false, false), Weight: 1, ID: 303},
	}
}

func (g *Game) PerceivedInitialStates(actual game.State, agent int) []game.Outcome {
	a := of(actual)
	var perceived []game.Outcome
	for _, outcome := range g.InitialStates() {
		s := of(outcome.State)
		switch {
		case agent == Insider && (s.cooperative != a.cooperative || s.inFirst != a.inFirst):
			continue
		case agent == Observer && s.cooperative != a.cooperative:
			continue
		}
		perceived = append(perceived, outcome)
	}
	return perceived
}

func (g *Game) Root(s game.State) game.State { return of(s).root }

func (g *Game) History(s game.State) []game.Step { return of(s).path.Steps() }

func (g *Game) Next(s game.State, move game.CombinedMove) game.State {
	return of(s).next(move)
}

// Percepts shows agents 1 and 2 the claim after the first ply; after the second
// everyone learns whether the game is over.
func (g *Game) Percepts(next game.State, _ game.CombinedMove) [][]game.Percept {
	n := of(next)
	if n.Turn() == 1 {
		seen := n.path.Move(0)[Insider]
		sawClaim := game.Percept{Holds: func(s game.State) bool { return of(s).path.Move(0)[Insider] == seen }, ID: 203 + int(seen)}
		return [][]game.Percept{
			{{Holds: func(game.State) bool { return true }, ID: 200}},
			{sawClaim},
			{sawClaim},
		}
	}

	terminal := n.IsTerminal()
	id := 202
	if terminal {
		id = 201
	}
	ended := game.Percept{Holds: func(s game.State) bool { return s.IsTerminal() == terminal }, ID: id}
	return [][]game.Percept{{ended}, {ended}, {ended}}
}

func (g *Game) IsClaim(move game.Move) (game.Statement, bool) {
	switch move {
	case ClaimInFirst:
		return game.Statement{Receivers: []int{Observer, Picker}, Holds: IsInFirst, ID: 100}, true
	case ClaimInSecond:
		return game.Statement{Receivers: []int{Observer, Picker}, Holds: IsInSecond, ID: 101}, true
	default:
		return game.Statement{}, false
	}
}

func IsInFirst(s game.State) bool { return of(s).inFirst }

func IsInSecond(s game.State) bool { return !of(s).inFirst }

// IsCooperative holds when agent 0 shares everyone's payoff.
func IsCooperative(s game.State) bool { return of(s).cooperative }

type State struct {
	root                 *State
	path                 game.Path
	cooperative, inFirst bool
}

// NewState returns an initial state.
func NewState(cooperative, inFirst bool) *State {
	s := &State{cooperative: cooperative, inFirst: inFirst}
	s.root = s
	return s
}

func of(s game.State) *State {
	return s.(*State)
}

func (s *State) next(move game.CombinedMove) *State {
	n := &State{root: s.root, cooperative: s.cooperative, inFirst: s.inFirst}
	n.path = s.path.Extend(move, n)
	return n
}

func (s *State) LegalMoves() [][]game.Move {
	noOp := []game.Move{NoOp}
	choice := []game.Move{ChooseFirst, ChooseSecond}
	switch {
	case s.IsTerminal():
		return nil
	case s.Turn() == 0:
		return [][]game.Move{{ClaimInFirst, ClaimInSecond}, noOp, noOp}
	case s.Turn() == 1:
		return [][]game.Move{noOp, noOp, choice}
	case s.Turn() == 2:
		return [][]game.Move{noOp, choice, noOp}
	default:
		return nil
	}
}

func (s *State) IsTerminal() bool {
	if s.cooperative {
		return s.Turn() == 2
	}
	return s.Turn() == 3
}

func (s *State) Turn() int { return s.path.Len() }

func (s *State) Utilities() ([]int, error) {
	if !s.IsTerminal() {
		return nil, game.TerminalAccess(s)
	}

	found := func(choice game.Move) bool { return (choice == ChooseFirst) == s.inFirst }
	if s.cooperative {
		u := score(found(s.path.Last()[Picker]))
		return []int{u, u, u}, nil
	}

	picked := found(s.path.Move(1)[Picker])
	return []int{score(!picked), score(found(s.path.Last()[Observer])), score(picked)}, nil
}

func (s *State) Key() game.StateKey {
	return s.path.Key(fmt.Sprintf("%t/%t", s.cooperative, s.inFirst))
}

func score(won bool) int {
	if won {
		return 100
	}
	return 0
}
