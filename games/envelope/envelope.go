// Package envelope implements a cooperative two-agent game with two envelopes
// holding 0, 25, 50, 75 or 100 each. The informed agent (1) makes one claim
// about an envelope's contents; the chooser (0) then opens one and both are paid
// its contents.
package envelope

import (
	"fmt"
	"strconv"
	"strings"

	"credence/game"
)

const (
	NoOp game.Move = iota
	ChooseFirst
	ChooseSecond
	ClaimFirstHas0
	ClaimFirstHas25
	ClaimFirstHas50
	ClaimFirstHas75
	ClaimFirstHas100
	ClaimSecondHas0
	ClaimSecondHas25
	ClaimSecondHas50
	ClaimSecondHas75
	ClaimSecondHas100
)

var names = game.Names{
	"NO_OP", "CHOOSE_FIRST", "CHOOSE_SECOND",
	"CLAIM_FIRST_HAS_0", "CLAIM_FIRST_HAS_25", "CLAIM_FIRST_HAS_50", "CLAIM_FIRST_HAS_75", "CLAIM_FIRST_HAS_100",
	"CLAIM_SECOND_HAS_0", "CLAIM_SECOND_HAS_25", "CLAIM_SECOND_HAS_50", "CLAIM_SECOND_HAS_75", "CLAIM_SECOND_HAS_100",
}

// Amounts is the set of possible contents of each envelope.
var Amounts = []int{0, 25, 50, 75, 100}

const (
	Chooser  = 0
	Informed = 1
)

var claims = []game.Move{
	ClaimFirstHas0, ClaimFirstHas25, ClaimFirstHas50, ClaimFirstHas75, ClaimFirstHas100,
	ClaimSecondHas0, ClaimSecondHas25, ClaimSecondHas50, ClaimSecondHas75, ClaimSecondHas100,
}

type Game struct {
	name    string
	amounts []int
}

// New returns the game over every pair of amounts.
func New() *Game {
	return &Game{name: "envelope", amounts: Amounts}
}

// NewWithAmounts restricts the possible contents, e.g. to {0, 100}. Claims about
// other amounts remain legal but are never true. The game is named after its
// amounts, e.g. "envelope-0-100".
func NewWithAmounts(amounts ...int) *Game {
	parts := []string{"envelope"}
	for _, amount := range amounts {
		parts = append(parts, strconv.Itoa(amount))
	}
	return &Game{name: strings.Join(parts, "-"), amounts: amounts}
}

func (g *Game) Name() string { return g.name }

func (g *Game) NumAgents() int { return 2 }

func (g *Game) MoveName(m game.Move) string { return names.Of(m) }

func (g *Game) InitialStates() []game.Outcome {
	outcomes := make([]game.Outcome, 0, len(g.amounts)*len(g.amounts))
	for _, first := range g.amounts {
		for _, second := range g.amounts {
			outcomes = append(outcomes, game.Outcome{State: NewState(first, second), Weight: 1, ID: 300 + len(outcomes)})
		}
	}
	return outcomes
}

func (g *Game) PerceivedInitialStates(actual game.State, agent int) []game.Outcome {
	if agent == Chooser {
		return g.InitialStates()
	}
	a := of(actual)
	var perceived []game.Outcome
	for _, outcome := range g.InitialStates() {
		if s := of(outcome.State); s.first == a.first && s.second == a.second {
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
	seen := of(next).path.Move(0)[Informed]
	return [][]game.Percept{
		{{Holds: func(s game.State) bool { return of(s).path.Move(0)[Informed] == seen }, ID: 201 + int(seen)}},
		{{Holds: func(game.State) bool { return true }, ID: 200}},
	}
}

func (g *Game) IsClaim(move game.Move) (game.Statement, bool) {
	if move < ClaimFirstHas0 || move > ClaimSecondHas100 {
		return game.Statement{}, false
	}
	offset := int(move - ClaimFirstHas0)
	amount := Amounts[offset%len(Amounts)]
	holds := func(s game.State) bool { return of(s).first == amount }
	if offset >= len(Amounts) {
		holds = func(s game.State) bool { return of(s).second == amount }
	}
	return game.Statement{Receivers: []int{Chooser}, Holds: holds, ID: 100 + offset}, true
}

type State struct {
	root          *State
	path          game.Path
	first, second int
}

// NewState returns an initial state with the given envelope contents.
func NewState(first, second int) *State {
	s := &State{first: first, second: second}
	s.root = s
	return s
}

func of(s game.State) *State {
	return s.(*State)
}

func (s *State) Contents() (first, second int) {
	return s.first, s.second
}

func (s *State) next(move game.CombinedMove) *State {
	n := &State{root: s.root, first: s.first, second: s.second}
	n.path = s.path.Extend(move, n)
	return n
}

func (s *State) LegalMoves() [][]game.Move {
	if s.Turn() == 0 {
		return [][]game.Move{{NoOp}, claims}
	}
	return [][]game.Move{{ChooseFirst, ChooseSecond}, {NoOp}}
}

func (s *State) IsTerminal() bool { return s.Turn() == 2 }
func (s *State) Turn() int        { return s.path.Len() }

func (s *State) Utilities() ([]int, error) {
	if !s.IsTerminal() {
		return nil, game.TerminalAccess(s)
	}
	utility := s.second
	if s.path.Last()[Chooser] == ChooseFirst {
		utility = s.first
	}
	return []int{utility, utility}, nil
}

func (s *State) Key() game.StateKey {
	return s.path.Key(fmt.Sprintf("%d/%d", s.first, s.second))
}
