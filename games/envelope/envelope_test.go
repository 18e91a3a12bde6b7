package envelope

import (
	"testing"

	"credence/game"

	"github.com/stretchr/testify/require"
)

func TestUtilities(t *testing.T) {
	g := NewWithAmounts(0, 100)
	start := NewState(100, 0)
	claimed := g.Next(start, game.CombinedMove{NoOp, ClaimFirstHas100})

	t.Run("choosing the full envelope pays both agents 100", func(t *testing.T) {
		utilities, err := g.Next(claimed, game.CombinedMove{ChooseFirst, NoOp}).Utilities()
		require.NoError(t, err)
		require.Equal(t, []int{100, 100}, utilities)
	})

	t.Run("choosing the empty envelope pays both agents nothing", func(t *testing.T) {
		utilities, err := g.Next(claimed, game.CombinedMove{ChooseSecond, NoOp}).Utilities()
		require.NoError(t, err)
		require.Equal(t, []int{0, 0}, utilities)
	})

	t.Run("payoffs are not defined before the choice", func(t *testing.T) {
		_, err := claimed.Utilities()
		require.ErrorIs(t, err, game.ErrInvalidTerminalAccess)
	})
}

func TestClaims(t *testing.T) {
	g := New()

	t.Run("claims are addressed to the chooser", func(t *testing.T) {
		statement, ok := g.IsClaim(ClaimSecondHas75)
		require.True(t, ok)
		require.Equal(t, []int{Chooser}, statement.Receivers)
		require.True(t, statement.Holds(NewState(0, 75)))
		require.False(t, statement.Holds(NewState(75, 0)))
	})

	t.Run("choices are not claims", func(t *testing.T) {
		_, ok := g.IsClaim(ChooseFirst)
		require.False(t, ok)
	})

	t.Run("the chooser considers every pair of amounts possible", func(t *testing.T) {
		require.Len(t, g.PerceivedInitialStates(NewState(25, 50), Chooser), 25)
		require.Len(t, g.PerceivedInitialStates(NewState(25, 50), Informed), 1)
	})

	t.Run("restricted games are named after their amounts", func(t *testing.T) {
		require.Equal(t, "envelope-0-100", NewWithAmounts(0, 100).Name())
		require.Len(t, NewWithAmounts(0, 100).InitialStates(), 4)
	})
}
