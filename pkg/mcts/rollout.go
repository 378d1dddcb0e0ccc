package mcts

import "math/rand"

const centre = BoardSize / 2

// centreWeight favours moves near the middle of the board: the centre cell
// gets weight 15, the corners weight 1.
func centreWeight(m Move) int {
	dr, dc := m.Row()-centre, m.Col()-centre
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return BoardSize - (dr + dc)
}

// weightedRandomMove picks one of moves with probability proportional to
// centreWeight, favouring central squares during random playouts.
func weightedRandomMove(moves []Move, rng *rand.Rand) Move {
	total := 0
	for _, m := range moves {
		total += centreWeight(m)
	}

	target := rng.Intn(total)
	for _, m := range moves {
		target -= centreWeight(m)
		if target < 0 {
			return m
		}
	}
	// Unreachable for a non-empty, correctly-weighted slice.
	return moves[len(moves)-1]
}

// rollout performs a weighted-random playout from ops's current state until
// terminal or maxDepth plies have been played, returning the signed outcome
// from the perspective of the player who made the move into the leaf (the
// same convention as Result).
//
// ops is cloned before any moves are played: the caller's own oracle state
// (and its ability to Undo back up the selection path) is left untouched.
// The proven-outcome sentinels are returned only when the very first
// terminal check -- on the unmodified leaf -- finds the position already
// decided; every subsequent terminal detection during the playout returns a
// shallow +-1/0 reward instead.
func rollout(ops Game, maxDepth int, rng *rand.Rand) Result {
	sim := ops.Clone()
	sign := Result(1)

	for depth, firstCall := maxDepth, true; ; depth, firstCall = depth-1, false {
		if term, terminal := sim.Winner(); terminal {
			switch {
			case firstCall && term == PlayerJustMoved:
				return sign * ResultProvenWin
			case firstCall && term == PlayerToMove:
				return sign * ResultProvenLoss
			case term == PlayerJustMoved:
				return sign * 1
			case term == PlayerToMove:
				return sign * -1
			default: // Draw
				return 0
			}
		}

		if depth == 0 {
			return 0
		}

		move := weightedRandomMove(sim.GenerateMoves(), rng)
		sim.Apply(move)
		sign = -sign
	}
}
