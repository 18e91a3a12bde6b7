// Package investigation implements a three-agent game: two suspects, each of
// whom may be innocent or guilty and knows both facts, make one claim each to a
// detective, who then names the guilty parties.
//
// The detective is paid for an exact guess. An innocent suspect is paid when
// the detective is right; a guilty one is paid when no guilty suspect is named.
package investigation

import (
	"fmt"

	"credence/game"
)

const (
	NoOp game.Move = iota
	ClaimBothInnocent
	ClaimFirstEvil
	ClaimSecondEvil
	ClaimBothEvil
	GuessBothInnocent
	GuessFirstEvil
	GuessSecondEvil
	GuessBothEvil
)

var names = game.Names{
	"NO_OP",
	"CLAIM_BOTH_INNOCENT", "CLAIM_FIRST_EVIL", "CLAIM_SECOND_EVIL", "CLAIM_BOTH_EVIL",
	"GUESS_BOTH_INNOCENT", "GUESS_FIRST_EVIL", "GUESS_SECOND_EVIL", "GUESS_BOTH_EVIL",
}

const (
	Detective     = 0
	FirstSuspect  = 1
	SecondSuspect = 2
)

// Claims lists the claims a suspect may make.
var Claims = []game.Move{ClaimBothInnocent, ClaimFirstEvil, ClaimSecondEvil, ClaimBothEvil}

// Guesses lists the detective's options.
var Guesses = []game.Move{GuessBothInnocent, GuessFirstEvil, GuessSecondEvil, GuessBothEvil}

type Game struct{}

func New() *Game {
	return &Game{}
}

func (g *Game) Name() string { return "one-shot-investigation" }

func (g *Game) NumAgents() int { return 3 }

func (g *Game) MoveName(m game.Move) string { return names.Of(m) }

func (g *Game) InitialStates() []game.Outcome {
	return []game.Outcome{
		{State: NewState(true, true), Weight: 1, ID: 300},
		{State: NewState(false, true), Weight: 1, ID: 301},
		{State: NewState(true, false), Weight: 1, ID: 302},
		{State: NewState(false, false), Weight: 1, ID: 303},
	}
}

func (g *Game) PerceivedInitialStates(actual game.State, agent int) []game.Outcome {
	if agent == Detective {
		return g.InitialStates()
	}
	a := of(actual)
	var perceived []game.Outcome
	for _, outcome := range g.InitialStates() {
		if s := of(outcome.State); s.firstInnocent == a.firstInnocent && s.secondInnocent == a.secondInnocent {
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

// Percepts lets the detective see the claim made on the last ply.
func (g *Game) Percepts(next game.State, _ game.CombinedMove) [][]game.Percept {
	n := of(next)
	watched := SecondSuspect
	if n.Turn() == 1 {
		watched = FirstSuspect
	}
	seen := n.path.Move(n.Turn() - 1)[watched]
	always := game.Percept{Holds: func(game.State) bool { return true }, ID: 200}
	return [][]game.Percept{
		{{Holds: func(s game.State) bool { return of(s).path.Move(s.Turn() - 1)[watched] == seen }, ID: 201 + int(seen)}},
		{always},
		{always},
	}
}

func (g *Game) IsClaim(move game.Move) (game.Statement, bool) {
	var holds game.Predicate
	switch move {
	case ClaimBothInnocent:
		holds = func(s game.State) bool { return of(s).matches(true, true) }
	case ClaimFirstEvil:
		holds = func(s game.State) bool { return of(s).matches(false, true) }
	case ClaimSecondEvil:
		holds = func(s game.State) bool { return of(s).matches(true, false) }
	case ClaimBothEvil:
		holds = func(s game.State) bool { return of(s).matches(false, false) }
	default:
		return game.Statement{}, false
	}
	return game.Statement{Receivers: []int{Detective}, Holds: holds, ID: 100 + int(move-ClaimBothInnocent)}, true
}

type State struct {
	root                          *State
	path                          game.Path
	firstInnocent, secondInnocent bool
}

// NewState returns an initial state with the given innocence of each suspect.
func NewState(firstInnocent, secondInnocent bool) *State {
	s := &State{firstInnocent: firstInnocent, secondInnocent: secondInnocent}
	s.root = s
	return s
}

func of(s game.State) *State {
	return s.(*State)
}

func (s *State) matches(firstInnocent, secondInnocent bool) bool {
	return s.firstInnocent == firstInnocent && s.secondInnocent == secondInnocent
}

func (s *State) next(move game.CombinedMove) *State {
	n := &State{root: s.root, firstInnocent: s.firstInnocent, secondInnocent: s.secondInnocent}
	n.path = s.path.Extend(move, n)
	return n
}

func (s *State) LegalMoves() [][]game.Move {
	noOp := []game.Move{NoOp}
	switch s.Turn() {
	case 0:
		return [][]game.Move{noOp, Claims, noOp}
	case 1:
		return [][]game.Move{noOp, noOp, Claims}
	case 2:
		return [][]game.Move{Guesses, noOp, noOp}
	default:
		return nil
	}
}

func (s *State) IsTerminal() bool { return s.Turn() == 3 }
func (s *State) Turn() int        { return s.path.Len() }

func (s *State) Utilities() ([]int, error) {
	if !s.IsTerminal() {
		return nil, game.TerminalAccess(s)
	}

	guess := s.path.Last()[Detective]
	right := (guess == GuessBothInnocent && s.matches(true, true)) ||
		(guess == GuessFirstEvil && s.matches(false, true)) ||
		(guess == GuessSecondEvil && s.matches(true, false)) ||
		(guess == GuessBothEvil && s.matches(false, false))

	guiltyNamed := false
	switch guess {
	case GuessFirstEvil:
		guiltyNamed = !s.firstInnocent
	case GuessSecondEvil:
		guiltyNamed = !s.secondInnocent
	case GuessBothEvil:
		guiltyNamed = !s.firstInnocent || !s.secondInnocent
	}

	suspect := func(innocent bool) int {
		if innocent {
			return score(right)
		}
		return score(!guiltyNamed)
	}
	return []int{score(right), suspect(s.firstInnocent), suspect(s.secondInnocent)}, nil
}

func (s *State) Key() game.StateKey {
	return s.path.Key(fmt.Sprintf("%t/%t", s.firstInnocent, s.secondInnocent))
}

func score(won bool) int {
	if won {
		return 100
	}
	return 0
}
