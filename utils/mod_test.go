package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCartesianProduct(t *testing.T) {
	t.Run("combining sequences in lexicographic order", func(t *testing.T) {
		got := CartesianProduct([][]int{{1, 2}, {3}, {4, 5}})

		require.Equal(t, [][]int{{1, 3, 4}, {1, 3, 5}, {2, 3, 4}, {2, 3, 5}}, got)
	})

	t.Run("empty input yields the single empty combination", func(t *testing.T) {
		require.Equal(t, [][]int{{}}, CartesianProduct[int](nil))
	})

	t.Run("an empty sequence yields no combinations", func(t *testing.T) {
		require.Empty(t, CartesianProduct([][]int{{1}, {}}))
	})
}

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]string{"a", "b"}, "c"))
	require.True(t, Contains([]int{3, 4}, 4))
	require.False(t, Contains([]int{}, 4))
}

func TestChoose(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		require.Contains(t, []int{1, 2, 3}, Choose(rng, []int{1, 2, 3}))
	}
	require.Panics(t, func() { Choose(rng, []int{}) })
}
