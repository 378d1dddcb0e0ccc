package gomoku

import (
	"fmt"

	"github.com/mseiler/gomoku-mcts/pkg/mcts"
)

// FormatMove renders m in human notation: a column letter a-o followed by a
// row number 0-14, e.g. "h7" for the board centre.
func FormatMove(m mcts.Move) string {
	return fmt.Sprintf("%c%d", 'a'+m.Col(), m.Row())
}

// ParseMove parses the notation produced by FormatMove.
func ParseMove(s string) (mcts.Move, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("gomoku: invalid move %q", s)
	}

	col := int(s[0] - 'a')
	if col < 0 || col >= mcts.BoardSize {
		return 0, fmt.Errorf("gomoku: invalid column in move %q", s)
	}

	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil {
		return 0, fmt.Errorf("gomoku: invalid row in move %q: %w", s, err)
	}
	if row < 0 || row >= mcts.BoardSize {
		return 0, fmt.Errorf("gomoku: row out of range in move %q", s)
	}

	return mcts.NewMove(row, col), nil
}

// String renders a player for display.
func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}
