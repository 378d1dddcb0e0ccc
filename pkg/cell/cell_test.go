package cell

import (
	"sync"
	"testing"
)

func TestPeekEmpty(t *testing.T) {
	var c Cell[int]
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek on empty cell should report absent")
	}
}

func TestTryPublishSingleWinner(t *testing.T) {
	var c Cell[string]
	got := c.TryPublish("first")
	if *got != "first" {
		t.Fatalf("expected first publish to win, got %q", *got)
	}

	got2 := c.TryPublish("second")
	if *got2 != "first" {
		t.Fatalf("expected second publish to lose and observe %q, got %q", "first", *got2)
	}

	v, ok := c.Peek()
	if !ok || v != "first" {
		t.Fatalf("Peek() = (%v, %v), want (first, true)", v, ok)
	}
}

// Under N concurrent publishers, exactly one value survives and every
// subsequent Peek observes it.
func TestTryPublishConcurrent(t *testing.T) {
	const n = 64
	var c Cell[int]
	var wg sync.WaitGroup
	results := make([]int, n)

	wg.Add(n)
	for i := range n {
		go func(i int) {
			defer wg.Done()
			results[i] = *c.TryPublish(i)
		}(i)
	}
	wg.Wait()

	winner, ok := c.Peek()
	if !ok {
		t.Fatal("cell empty after concurrent publishes")
	}
	for i, r := range results {
		if r != winner {
			t.Fatalf("goroutine %d observed %d, want winning value %d", i, r, winner)
		}
	}
}
