package mcts

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/mseiler/gomoku-mcts/pkg/cell"
	"github.com/mseiler/gomoku-mcts/pkg/randmax"
)

// Result is the signed reward produced by a rollout or computed during
// backpropagation, from the perspective of whichever player made the move
// that led to the node it is applied to: +1 win, -1 loss, 0 draw. The two
// extreme values double as proven-outcome sentinels (see ResultProvenWin /
// ResultProvenLoss) rather than tagging every reward with a separate enum --
// the same trick the reference engine uses for its signed counters, kept
// here only at the boundary between rollout and finalisation.
type Result int64

const (
	// ResultProvenWin/ResultProvenLoss are sentinel rewards: a rollout or a
	// terminal-position check returns one of these only when the *leaf*
	// itself is already decided, never as a shallow heuristic estimate.
	ResultProvenWin  Result = math.MaxInt64
	ResultProvenLoss Result = -math.MaxInt64
)

// Outcome is a node's proven-result flag: unknown, or a proven win/loss for
// whoever made the move that reached the node. Once set to a proven value it
// is never revised.
type Outcome int32

const (
	OutcomeUnknown Outcome = iota
	OutcomeProvenWin
	OutcomeProvenLoss
)

// Node is a vertex of the persistent search tree: "the position reached by
// playing Move from the parent." All counters are plain atomics so reads
// never block a concurrent writer; the children slice is published exactly
// once through a lock-free cell.
type Node struct {
	Move Move

	// visits is a monotonically non-decreasing touch count: PreUpdate bumps
	// it the instant a worker enters the node (virtual loss), well before
	// the simulation that touched it has finished.
	visits int64
	// score is the cumulative signed reward from the perspective of the
	// player who made Move, biased by -1 per in-flight simulation (virtual
	// loss) until FinaliseUpdate cancels it.
	score int64
	// outcome is written at most once, from OutcomeUnknown to a proven
	// value, via compare-and-swap.
	outcome int32

	children cell.Cell[[]*Node]
}

// NewRootNode returns a fresh, unexpanded true-root node (no Move of its
// own).
func NewRootNode() *Node {
	return &Node{}
}

// Visits returns the node's touch count.
func (n *Node) Visits() int64 { return atomic.LoadInt64(&n.visits) }

// Score returns the node's cumulative signed reward.
func (n *Node) Score() int64 { return atomic.LoadInt64(&n.score) }

// Winner returns the node's proven-outcome flag. Reads are relaxed: a stale
// OutcomeUnknown merely under-uses proof information for one iteration.
func (n *Node) Winner() Outcome { return Outcome(atomic.LoadInt32(&n.outcome)) }

func (n *Node) setWinner(o Outcome) {
	atomic.CompareAndSwapInt32(&n.outcome, int32(OutcomeUnknown), int32(o))
}

// Children returns the node's materialised children and true, or nil and
// false if the node has not been expanded yet.
func (n *Node) Children() ([]*Node, bool) { return n.children.Peek() }

// Expand publishes children as this node's child set, unless another worker
// already won the race to expand it first; either way the surviving slice
// is returned.
func (n *Node) Expand(children []*Node) []*Node {
	return *n.children.TryPublish(children)
}

// PreUpdate applies virtual loss: a worker calls this the instant it commits
// to descending into n, before the simulation beneath it has produced a
// result, so concurrent selectors steer away from the same path.
func (n *Node) PreUpdate() {
	atomic.AddInt64(&n.visits, 1)
	atomic.AddInt64(&n.score, -1)
}

// FinaliseUpdate completes the update started by PreUpdate. A proven
// sentinel result instead sets the node's Outcome (seq-cst, one-shot); any
// other result is added to score as result+1, the +1 cancelling the virtual
// loss PreUpdate applied. Returns result unchanged, for convenience when
// chaining into a caller's own return.
func (n *Node) FinaliseUpdate(result Result) Result {
	switch result {
	case ResultProvenWin:
		n.setWinner(OutcomeProvenWin)
	case ResultProvenLoss:
		n.setWinner(OutcomeProvenLoss)
	default:
		atomic.AddInt64(&n.score, int64(result)+1)
	}
	return result
}

// Walk follows children matching the given sequence of moves, returning the
// reached node, or nil if any step lands on a node that has not been
// expanded yet.
func (n *Node) Walk(moves []Move) *Node {
	node := n
	for _, m := range moves {
		children, ok := node.children.Peek()
		if !ok {
			return nil
		}
		var next *Node
		for _, c := range children {
			if c.Move == m {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// BestChild returns the child selected by UCT among n's children, or nil if
// n is unexpanded or (transiently) has no children at all. explorationC is
// the UCB1-style exploration constant; 0 disables exploration entirely.
func (n *Node) BestChild(explorationC float64, rng *rand.Rand) *Node {
	children, ok := n.children.Peek()
	if !ok || len(children) == 0 {
		return nil
	}

	logParent := math.Max(0, math.Log2(float64(n.Visits())))
	score := func(c *Node) float64 {
		switch c.Winner() {
		case OutcomeProvenWin:
			return math.Inf(1)
		case OutcomeProvenLoss:
			return -1
		}

		visits := c.Visits()
		if visits <= 0 {
			if explorationC > 0 {
				return math.Inf(1)
			}
			return 0
		}

		winRatio := (float64(c.Score()) + float64(visits)) / (2 * float64(visits))
		return winRatio + explorationC*math.Sqrt(2*logParent/float64(visits))
	}

	return children[randmax.Index(children, rng, score)]
}
