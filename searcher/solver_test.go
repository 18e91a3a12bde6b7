package searcher

import (
	"math/big"
	"testing"

	"credence/experiments/metrics"
	"credence/game"
	"credence/games"
	"credence/games/goodorevil"
	"credence/games/investigation"
	"credence/games/spies"

	"github.com/stretchr/testify/require"
)

// listen plays state's history into a fresh mind for agent, stopping before the
// claims of the last ply so callers can compare before and after.
func listen(t *testing.T, s *Solver, state game.State, agent int) (*Mind, []game.Claim) {
	g := s.Game()
	mind := NewMind(s)
	require.NoError(t, mind.Initialize(g, agent, g.PerceivedInitialStates(g.Root(state), agent)))

	history := g.History(state)
	var claims []game.Claim
	for i, step := range history {
		mind.Commit(step.Move[agent])
		for _, percept := range g.Percepts(step.Next, step.Move)[agent] {
			require.NoError(t, mind.ReceivePercept(percept))
		}
		claims = game.ClaimsFromMove(g, step.Move)[agent]
		if i < len(history)-1 {
			require.NoError(t, mind.ReceiveClaims(claims))
		}
	}
	return mind, claims
}

func TestScenarios(t *testing.T) {
	t.Run("a claim the sender would make whatever the truth leaves the belief unchanged", func(t *testing.T) {
		g := goodorevil.New()
		s := NewSolver(g)
		good := g.InitialStates()[0].State
		state := g.Next(good, game.CombinedMove{goodorevil.NoOp, goodorevil.ClaimGood})

		belief, err := s.Replay(state, goodorevil.Guesser)
		require.NoError(t, err)
		require.Len(t, belief, 2)
		require.Equal(t, 0, belief.WeightOf(goodorevil.IsGood).Cmp(belief.WeightOf(goodorevil.IsEvil)))
	})

	t.Run("an uninformed detective is indifferent between every guess", func(t *testing.T) {
		g := investigation.New()
		s := NewSolver(g)
		var belief Belief
		for _, outcome := range g.InitialStates() {
			state := g.Next(outcome.State, game.CombinedMove{investigation.NoOp, investigation.ClaimBothInnocent, investigation.NoOp})
			state = g.Next(state, game.CombinedMove{investigation.NoOp, investigation.NoOp, investigation.ClaimBothInnocent})
			belief = append(belief, World{State: state, Weight: big.NewRat(1, 1)})
		}

		moves, err := s.BestMoves(investigation.Detective, investigation.Guesses, nil, belief)
		require.NoError(t, err)
		require.Equal(t, investigation.Guesses, moves)
	})

	t.Run("verifying a claim discounts the world where the sender would have said otherwise", func(t *testing.T) {
		g := spies.New()
		s := NewSolver(g)
		red := g.InitialStates()[0].State
		state := g.Next(red, game.CombinedMove{spies.NoOp, spies.ClaimRed})
		mind, claims := listen(t, s, state, spies.FieldAgent)
		legal := state.LegalMoves()[spies.FieldAgent]

		before, err := mind.BestMoves(legal)
		require.NoError(t, err)
		require.Equal(t, []game.Move{spies.CutRed, spies.CutBlue}, before)

		require.NoError(t, mind.ReceiveClaims(claims))
		belief := mind.Belief()
		require.Equal(t, 0, belief.WeightOf(spies.IsRed).Cmp(big.NewRat(1, 2)))
		require.Equal(t, 0, belief.WeightOf(spies.IsBlue).Cmp(big.NewRat(1, 2000)))

		after, err := mind.BestMoves(legal)
		require.NoError(t, err)
		require.Equal(t, []game.Move{spies.CutRed}, after)
	})
}

func TestRevise(t *testing.T) {
	g := spies.New()
	state := g.Next(g.InitialStates()[1].State, game.CombinedMove{spies.NoOp, spies.ClaimRed})

	t.Run("the discount is configurable", func(t *testing.T) {
		s := NewSolver(g, WithDiscount(10))
		mind, claims := listen(t, s, state, spies.FieldAgent)
		require.NoError(t, mind.ReceiveClaims(claims))
		require.Equal(t, 0, mind.Belief().WeightOf(spies.IsBlue).Cmp(big.NewRat(1, 20)))
	})

	t.Run("literal agents accept the claim at face value", func(t *testing.T) {
		s := NewSolver(g, WithLiteralClaims())
		belief, err := s.Replay(state, spies.FieldAgent)
		require.NoError(t, err)
		require.Len(t, belief, 1)
		require.True(t, spies.IsRed(belief[0].State))
	})

	t.Run("no claims leave the belief untouched", func(t *testing.T) {
		s := NewSolver(g)
		mind, _ := listen(t, s, state, spies.FieldAgent)
		before := mind.Belief()
		require.NoError(t, mind.ReceiveClaims(nil))
		require.True(t, before.Equal(mind.Belief()))
	})

	t.Run("revisions are cached by signature", func(t *testing.T) {
		collector := metrics.NewCollector()
		s := NewSolver(g, WithMetrics(collector))
		first, err := s.Replay(state, spies.FieldAgent)
		require.NoError(t, err)
		revisions := collector.Complete().Revisions

		second, err := s.Replay(state, spies.FieldAgent)
		require.NoError(t, err)
		require.True(t, first.Equal(second))
		require.Equal(t, revisions, collector.Complete().Revisions)
		require.Positive(t, collector.Complete().CacheHits)
	})
}

func TestReplay(t *testing.T) {
	g := goodorevil.NewWeighted()
	s := NewSolver(g)
	state := g.Next(g.InitialStates()[1].State, game.CombinedMove{goodorevil.NoOp, goodorevil.ClaimGood})
	state = g.Next(state, game.CombinedMove{goodorevil.GuessGood, goodorevil.NoOp})

	t.Run("replaying twice gives equal beliefs", func(t *testing.T) {
		for agent := 0; agent < g.NumAgents(); agent++ {
			first, err := s.Replay(state, agent)
			require.NoError(t, err)
			second, err := NewSolver(g).Replay(state, agent)
			require.NoError(t, err)
			require.True(t, first.Equal(second), "%s != %s", first, second)
		}
	})

	t.Run("the informed agent knows the truth but not the guess", func(t *testing.T) {
		belief, err := s.Replay(state, goodorevil.Advisor)
		require.NoError(t, err)
		require.Len(t, belief, 2)
		require.Equal(t, 0, belief.Probability(goodorevil.IsEvil).Cmp(big.NewRat(1, 1)))
	})
}

func TestCaching(t *testing.T) {
	for _, name := range []string{"good-or-evil", "weighted-good-or-evil", "cooperative-spies", "envelope-0-100", "probable-shared-envelope"} {
		g, err := games.Lookup(name)
		require.NoError(t, err)

		t.Run(name+" is valued alike with and without caches", func(t *testing.T) {
			cached := NewSolver(g)
			uncached := NewSolver(g, WithoutCaches())
			for _, outcome := range g.InitialStates() {
				want, err := uncached.Utilities(outcome.State)
				require.NoError(t, err)
				// Twice, so the second pass reads from the caches
				for i := 0; i < 2; i++ {
					got, err := cached.Utilities(outcome.State)
					require.NoError(t, err)
					require.Len(t, got, len(want))
					for agent := range want {
						require.Equal(t, 0, want[agent].Cmp(got[agent]), "agent %d: %s != %s", agent, want[agent], got[agent])
					}
				}
			}
		})
	}
}

// pennies lets both agents choose at once.
type pennies struct{}

func (pennies) Name() string { return "pennies" }

func (pennies) NumAgents() int { return 2 }

func (pennies) InitialStates() []game.Outcome {
	return []game.Outcome{{State: &penniesState{}, Weight: 1, ID: 300}}
}

func (p pennies) PerceivedInitialStates(game.State, int) []game.Outcome {
	return p.InitialStates()
}

func (pennies) Root(game.State) game.State { return &penniesState{} }

func (pennies) Percepts(game.State, game.CombinedMove) [][]game.Percept {
	return [][]game.Percept{nil, nil}
}

func (pennies) IsClaim(game.Move) (game.Statement, bool) { return game.Statement{}, false }

func (pennies) Next(s game.State, move game.CombinedMove) game.State {
	n := &penniesState{}
	n.path = s.(*penniesState).path.Extend(move, n)
	return n
}

func (pennies) History(s game.State) []game.Step { return s.(*penniesState).path.Steps() }

func (pennies) MoveName(m game.Move) string { return game.Names{"HEADS", "TAILS"}.Of(m) }

type penniesState struct {
	path game.Path
}

func (s *penniesState) LegalMoves() [][]game.Move {
	return [][]game.Move{{0, 1}, {0, 1}}
}

func (s *penniesState) IsTerminal() bool { return s.path.Len() == 1 }

func (s *penniesState) Turn() int { return s.path.Len() }

func (s *penniesState) Utilities() ([]int, error) {
	if s.path.Last()[0] == s.path.Last()[1] {
		return []int{100, 0}, nil
	}
	return []int{0, 100}, nil
}

func (s *penniesState) Key() game.StateKey { return s.path.Key("") }

func TestErrors(t *testing.T) {
	t.Run("simultaneous choices are rejected", func(t *testing.T) {
		_, err := NewSolver(pennies{}).Utilities(&penniesState{})
		require.ErrorIs(t, err, ErrUnsupportedSimultaneousChoice)
	})

	t.Run("lookahead deeper than the bound fails", func(t *testing.T) {
		g := goodorevil.New()
		_, err := NewSolver(g, WithMaxDepth(1)).Utilities(g.InitialStates()[0].State)
		require.ErrorIs(t, err, ErrDepthExceeded)
	})

	t.Run("choosing without any possible world fails", func(t *testing.T) {
		g := goodorevil.New()
		_, err := NewSolver(g).BestMoves(goodorevil.Guesser, []game.Move{goodorevil.GuessGood, goodorevil.GuessEvil}, nil, nil)
		require.ErrorIs(t, err, ErrEmptyBeliefState)
	})
}
