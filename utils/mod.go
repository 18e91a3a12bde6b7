package utils

import "golang.org/x/exp/rand"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func Contains[T comparable](slice []T, item T) bool {
	return FindIndex(slice, item) >= 0
}

// CartesianProduct returns every sequence picking one element from each input,
// in lexicographic order of the inputs.
func CartesianProduct[T any](sequences [][]T) [][]T {
	product := [][]T{{}}
	for _, sequence := range sequences {
		next := make([][]T, 0, len(product)*len(sequence))
		for _, prefix := range product {
			for _, item := range sequence {
				combination := make([]T, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, item))
			}
		}
		product = next
	}
	return product
}

// Choose picks a uniformly random element. Panics on an empty slice.
func Choose[T any](rng *rand.Rand, slice []T) T {
	if len(slice) == 0 {
		panic("cannot choose from an empty slice")
	}
	return slice[rng.Intn(len(slice))]
}
