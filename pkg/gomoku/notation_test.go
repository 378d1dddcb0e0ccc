package gomoku

import (
	"testing"

	"github.com/mseiler/gomoku-mcts/pkg/mcts"
)

func TestFormatParseMoveRoundTrip(t *testing.T) {
	for row := 0; row < mcts.BoardSize; row++ {
		for col := 0; col < mcts.BoardSize; col++ {
			m := mcts.NewMove(row, col)
			s := FormatMove(m)
			got, err := ParseMove(s)
			if err != nil {
				t.Fatalf("ParseMove(%q) returned error: %v", s, err)
			}
			if got != m {
				t.Fatalf("round-trip mismatch for (%d,%d): formatted %q, parsed back %d", row, col, s, got)
			}
		}
	}
}

func TestFormatMoveCentre(t *testing.T) {
	if got, want := FormatMove(mcts.CentreMove), "h7"; got != want {
		t.Fatalf("FormatMove(centre) = %q, want %q", got, want)
	}
}

func TestParseMoveRejectsOutOfRange(t *testing.T) {
	if _, err := ParseMove("p7"); err == nil {
		t.Fatalf("expected error for out-of-range column")
	}
	if _, err := ParseMove("a20"); err == nil {
		t.Fatalf("expected error for out-of-range row")
	}
}
