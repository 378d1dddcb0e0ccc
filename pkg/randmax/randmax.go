// Package randmax implements a randomised argmax over a slice: given a
// scoring function, it returns the index of one of the highest-scoring
// elements, choosing uniformly among ties without shuffling the input or
// allocating.
package randmax

import (
	"math"
	"math/rand"
)

// strides is a table of primes between 101 and 197. Since each is prime,
// the only way one of them
// fails to be coprime with a given n is if it divides n exactly -- picking
// the first one in the table that doesn't is enough to guarantee a full
// walk of the slice.
var strides = [...]int{
	101, 103, 107, 109, 113, 127, 131, 137, 139, 149,
	151, 157, 163, 167, 173, 179, 181, 191, 193, 197,
}

func strideFor(n int, rng *rand.Rand) int {
	if n <= 1 {
		return 1
	}

	// Try the primes in a random rotation so the walk order itself varies
	// between calls, not just the starting offset.
	start := rng.Intn(len(strides))
	for i := range strides {
		p := strides[(start+i)%len(strides)]
		if n%p != 0 {
			return p
		}
	}
	return 1
}

// Index returns the index of one element of items (len(items) must be > 0)
// whose score, as reported by score, is maximal. score is called exactly
// once per element. If K elements tie for the maximum, each is returned
// with probability approximately 1/K across repeated calls: the walk starts
// at a uniformly random offset and advances by a stride drawn from a small
// table of primes, so the order in which tied maxima are encountered is
// effectively randomised, and ties are broken by keeping only strictly
// greater scores.
func Index[T any](items []T, rng *rand.Rand, score func(T) float64) int {
	n := len(items)
	if n == 0 {
		panic("randmax: Index called on empty slice")
	}
	if n == 1 {
		return 0
	}

	stride := strideFor(n, rng)
	idx := rng.Intn(n)
	best := -1
	bestScore := math.Inf(-1)

	for range n {
		s := score(items[idx])
		if s > bestScore {
			bestScore = s
			best = idx
		}
		idx = (idx + stride) % n
	}
	return best
}
