package investigation

import (
	"testing"

	"credence/game"

	"github.com/stretchr/testify/require"
)

func play(g *Game, start *State, first, second, guess game.Move) game.State {
	var s game.State = start
	s = g.Next(s, game.CombinedMove{NoOp, first, NoOp})
	s = g.Next(s, game.CombinedMove{NoOp, NoOp, second})
	return g.Next(s, game.CombinedMove{guess, NoOp, NoOp})
}

func TestUtilities(t *testing.T) {
	g := New()

	t.Run("a right guess pays the detective and the innocent", func(t *testing.T) {
		s := play(g, NewState(true, false), ClaimBothInnocent, ClaimBothInnocent, GuessSecondEvil)
		utilities, err := s.Utilities()
		require.NoError(t, err)
		require.Equal(t, []int{100, 100, 0}, utilities)
	})

	t.Run("a guilty suspect is paid when nobody guilty is named", func(t *testing.T) {
		s := play(g, NewState(false, true), ClaimSecondEvil, ClaimFirstEvil, GuessSecondEvil)
		utilities, err := s.Utilities()
		require.NoError(t, err)
		require.Equal(t, []int{0, 100, 0}, utilities)
	})
}

func TestPercepts(t *testing.T) {
	g := New()
	s := g.Next(NewState(true, true), game.CombinedMove{NoOp, ClaimFirstEvil, NoOp})
	percepts := g.Percepts(s, game.CombinedMove{NoOp, ClaimFirstEvil, NoOp})

	t.Run("the detective sees which claim was made", func(t *testing.T) {
		require.Equal(t, 201+int(ClaimFirstEvil), percepts[Detective][0].ID)
		other := g.Next(NewState(false, false), game.CombinedMove{NoOp, ClaimBothEvil, NoOp})
		require.False(t, percepts[Detective][0].Holds(other))
	})

	t.Run("suspects learn nothing new", func(t *testing.T) {
		require.Equal(t, 200, percepts[FirstSuspect][0].ID)
		require.Equal(t, 200, percepts[SecondSuspect][0].ID)
	})
}
