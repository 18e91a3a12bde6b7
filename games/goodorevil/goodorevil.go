// Package goodorevil implements a two-agent game where an informed advisor
// (agent 1) tells a guesser (agent 0) whether a subject is good or evil. The
// advisor is paid whenever the guesser says "good", whatever the truth.
package goodorevil

import (
	"credence/game"
)

const (
	GuessGood game.Move = iota
	GuessEvil
	NoOp
	ClaimGood
	ClaimEvil
)

var names = game.Names{"GUESS_GOOD", "GUESS_EVIL", "NO_OP", "CLAIM_GOOD", "CLAIM_EVIL"}

const (
	Guesser = 0
	Advisor = 1
)

type Game struct {
	name                   string
	goodWeight, evilWeight int
}

// New returns the game with a uniform prior over the subject's nature.
func New() *Game {
	return &Game{name: "good-or-evil", goodWeight: 1, evilWeight: 1}
}

// NewWeighted returns the game where the subject is evil three times out of four.
func NewWeighted() *Game {
	return &Game{name: "weighted-good-or-evil", goodWeight: 1, evilWeight: 3}
}

func (g *Game) Name() string { return g.name }

func (g *Game) NumAgents() int { return 2 }

func (g *Game) MoveName(m game.Move) string { return names.Of(m) }

func (g *Game) InitialStates() []game.Outcome {
	return []game.Outcome{
		{State: newState(true), Weight: g.goodWeight, ID: 300},
		{State: newState(false), Weight: g.evilWeight, ID: 301},
	}
}

func (g *Game) PerceivedInitialStates(actual game.State, agent int) []game.Outcome {
	if agent == Guesser {
		return g.InitialStates()
	}
	var perceived []game.Outcome
	for _, outcome := range g.InitialStates() {
		if of(outcome.State).good == of(actual).good {
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

// Percepts lets the guesser see which claim the advisor made.
func (g *Game) Percepts(next game.State, _ game.CombinedMove) [][]game.Percept {
	seen := of(next).path.Move(0)[Advisor]
	return [][]game.Percept{
		{{Holds: func(s game.State) bool { return of(s).path.Move(0)[Advisor] == seen }, ID: 201 + int(seen)}},
		{{Holds: func(game.State) bool { return true }, ID: 200}},
	}
}

func (g *Game) IsClaim(move game.Move) (game.Statement, bool) {
	switch move {
	case ClaimGood:
		return game.Statement{Receivers: []int{Guesser}, Holds: IsGood, ID: 100}, true
	case ClaimEvil:
		return game.Statement{Receivers: []int{Guesser}, Holds: IsEvil, ID: 101}, true
	default:
		return game.Statement{}, false
	}
}

func IsGood(s game.State) bool { return of(s).good }
func IsEvil(s game.State) bool { return !of(s).good }

type State struct {
	root *State
	path game.Path
	good bool
}

func newState(good bool) *State {
	s := &State{good: good}
	s.root = s
	return s
}

func of(s game.State) *State {
	return s.(*State)
}

func (s *State) next(move game.CombinedMove) *State {
	n := &State{root: s.root, good: s.good}
	n.path = s.path.Extend(move, n)
	return n
}

func (s *State) LegalMoves() [][]game.Move {
	if s.Turn() == 0 {
		return [][]game.Move{{NoOp}, {ClaimGood, ClaimEvil}}
	}
	return [][]game.Move{{GuessGood, GuessEvil}, {NoOp}}
}

func (s *State) IsTerminal() bool { return s.Turn() == 2 }
func (s *State) Turn() int        { return s.path.Len() }

func (s *State) Utilities() ([]int, error) {
	if !s.IsTerminal() {
		return nil, game.TerminalAccess(s)
	}
	guessedGood := s.path.Last()[Guesser] == GuessGood
	return []int{score(guessedGood == s.good), score(guessedGood)}, nil
}

func (s *State) Key() game.StateKey {
	if s.good {
		return s.path.Key("good")
	}
	return s.path.Key("evil")
}

func score(won bool) int {
	if won {
		return 100
	}
	return 0
}
