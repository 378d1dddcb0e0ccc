package randmax

import (
	"math/rand"
	"testing"
)

func TestIndexSingleMax(t *testing.T) {
	items := []int{3, 7, 1, 9, 5}
	rng := rand.New(rand.NewSource(1))
	idx := Index(items, rng, func(v int) float64 { return float64(v) })
	if items[idx] != 9 {
		t.Fatalf("Index returned %d, want the element scoring 9", items[idx])
	}
}

func TestIndexSingleElement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idx := Index([]string{"only"}, rng, func(string) float64 { return 0 })
	if idx != 0 {
		t.Fatalf("Index = %d, want 0", idx)
	}
}

// Over many trials with a uniform score function, each element should be
// returned with frequency within statistical bounds of 1/N.
func TestIndexFairness(t *testing.T) {
	const n = 6
	const trials = 60000
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	counts := make([]int, n)
	rng := rand.New(rand.NewSource(42))
	for range trials {
		idx := Index(items, rng, func(int) float64 { return 1.0 })
		counts[idx]++
	}

	expected := float64(trials) / float64(n)
	for i, c := range counts {
		ratio := float64(c) / expected
		if ratio < 0.8 || ratio > 1.2 {
			t.Fatalf("element %d chosen %d times, expected ~%.0f (ratio %.2f)", i, c, expected, ratio)
		}
	}
}

func TestIndexStrictlyGreaterOnly(t *testing.T) {
	// Two elements tie for the max; the other scores lower. Repeated trials
	// must only ever pick one of the two tied elements.
	items := []int{1, 10, 10, 2}
	rng := rand.New(rand.NewSource(7))
	for range 1000 {
		idx := Index(items, rng, func(v int) float64 { return float64(v) })
		if items[idx] != 10 {
			t.Fatalf("Index returned element scoring %d, want 10", items[idx])
		}
	}
}
