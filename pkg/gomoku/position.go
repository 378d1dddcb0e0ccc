// Package gomoku is the concrete Game oracle the search core consumes: the
// rules of five-in-a-row on a 15x15 board. It is a pure, externally supplied
// collaborator from the core's point of view -- move generation,
// application, undo and winner detection -- and knows nothing about search.
package gomoku

import (
	"github.com/mseiler/gomoku-mcts/pkg/mcts"
)

// Player identifies a stone colour, or the empty cell.
type Player int8

const (
	None Player = iota
	Black
	White
)

// Position is a 15x15 Gomoku board plus enough history to undo moves and to
// find the stone that was placed last, which winner detection scans from.
type Position struct {
	board [mcts.NumCells]Player
	moves []mcts.Move
}

// NewPosition returns an empty board with Black to move.
func NewPosition() *Position {
	return &Position{moves: make([]mcts.Move, 0, mcts.NumCells)}
}

// Turn reports which colour is to move: Black on an even-length history,
// White on odd, per the data model's parity rule.
func (p *Position) Turn() Player {
	if len(p.moves)%2 == 0 {
		return Black
	}
	return White
}

// Ply returns the number of moves played so far.
func (p *Position) Ply() int { return len(p.moves) }

// At returns the stone (or None) occupying m.
func (p *Position) At(m mcts.Move) Player { return p.board[m] }

// GenerateMoves returns every empty cell, in increasing index order.
func (p *Position) GenerateMoves() []mcts.Move {
	moves := make([]mcts.Move, 0, mcts.NumCells-len(p.moves))
	for i := 0; i < mcts.NumCells; i++ {
		if p.board[i] == None {
			moves = append(moves, mcts.Move(i))
		}
	}
	return moves
}

// Apply plays move for the player currently to move.
func (p *Position) Apply(move mcts.Move) {
	p.board[move] = p.Turn()
	p.moves = append(p.moves, move)
}

// Undo reverses the most recent Apply. move must be the move that was just
// played (the last entry of the history), matching the Game contract's
// "reverse the last apply" semantics.
func (p *Position) Undo(move mcts.Move) {
	n := len(p.moves)
	p.board[move] = None
	p.moves = p.moves[:n-1]
}

// Winner reports the game's terminal state, if any, scanning for a
// five-in-a-row through the last-placed stone (see Position.wins) and
// falling back to a full-board draw.
func (p *Position) Winner() (mcts.TerminalResult, bool) {
	if len(p.moves) == 0 {
		return mcts.NotTerminal, false
	}

	last := p.moves[len(p.moves)-1]
	mover := p.board[last]
	if p.wins(last, mover) {
		return mcts.PlayerJustMoved, true
	}
	if len(p.moves) == mcts.NumCells {
		return mcts.Draw, true
	}
	return mcts.NotTerminal, false
}

// Clone returns a deep copy sharing no memory with the receiver.
func (p *Position) Clone() mcts.Game {
	clone := &Position{board: p.board}
	clone.moves = append(make([]mcts.Move, 0, cap(p.moves)), p.moves...)
	return clone
}

var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// wins reports whether player has an unbroken run of at least 5 stones
// through cell last, along the row, column or either diagonal. Runs in O(1)
// time: each of the four lines is scanned outward from last by at most
// BoardSize-1 cells in each direction.
func (p *Position) wins(last mcts.Move, player Player) bool {
	row, col := last.Row(), last.Col()

	for _, d := range directions {
		count := 1
		count += p.countDirection(row, col, d[0], d[1], player)
		count += p.countDirection(row, col, -d[0], -d[1], player)
		if count >= 5 {
			return true
		}
	}
	return false
}

func (p *Position) countDirection(row, col, dr, dc int, player Player) int {
	n := 0
	for {
		row, col = row+dr, col+dc
		if row < 0 || row >= mcts.BoardSize || col < 0 || col >= mcts.BoardSize {
			break
		}
		if p.board[mcts.NewMove(row, col)] != player {
			break
		}
		n++
	}
	return n
}
