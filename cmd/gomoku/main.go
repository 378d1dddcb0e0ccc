// Command gomoku is a terminal front-end for the concurrent MCTS engine: it
// plays Gomoku against a human on standard input/output, letting the engine
// keep searching in the background between moves instead of restarting per
// turn.
//
// What it shows:
//   - Wiring the Game oracle (pkg/gomoku) into the search core (pkg/mcts).
//   - Starting persistent worker goroutines once and sliding the current
//     position forward after every move, rather than rebuilding the tree.
//   - Styling terminal output with termenv instead of raw ANSI escapes.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/mseiler/gomoku-mcts/pkg/gomoku"
	"github.com/mseiler/gomoku-mcts/pkg/mcts"
)

var (
	profile    = termenv.ColorProfile()
	blackStyle = termenv.Style{}.Foreground(profile.Color("0")).Bold()
	whiteStyle = termenv.Style{}.Foreground(profile.Color("15")).Bold()
	gridStyle  = termenv.Style{}.Foreground(profile.Color("8"))
)

func printBoard(pos *gomoku.Position) {
	fmt.Print("   ")
	for col := 0; col < mcts.BoardSize; col++ {
		fmt.Printf("%c ", 'a'+col)
	}
	fmt.Println()

	for row := 0; row < mcts.BoardSize; row++ {
		fmt.Printf("%2d ", row)
		for col := 0; col < mcts.BoardSize; col++ {
			switch pos.At(mcts.NewMove(row, col)) {
			case gomoku.Black:
				fmt.Print(blackStyle.Styled("X") + " ")
			case gomoku.White:
				fmt.Print(whiteStyle.Styled("O") + " ")
			default:
				fmt.Print(gridStyle.Styled(".") + " ")
			}
		}
		fmt.Println()
	}
}

func readHumanMove(pos *gomoku.Position, scanner *bufio.Scanner) mcts.Move {
	for {
		fmt.Print("enter a move (e.g. \"h7\"): ")
		if !scanner.Scan() {
			fmt.Println()
			os.Exit(0)
		}

		text := strings.TrimSpace(scanner.Text())
		move, err := gomoku.ParseMove(text)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if pos.At(move) != gomoku.None {
			fmt.Println("that square is already taken")
			continue
		}
		return move
	}
}

func main() {
	pos := gomoku.NewPosition()

	opts := mcts.DefaultOptions()
	opts.Verbose = true
	opts.RolloutsBeforeExpanding = 10
	opts.MaxRolloutDepth = mcts.NumCells

	engine := mcts.NewEngine(pos.Clone(), opts)
	engine.SetTimeout(2 * time.Second)
	engine.StartWorkers()
	defer engine.Stop()

	var history []mcts.Move
	printBoard(pos)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		move := engine.ChooseMove(history)
		pos.Apply(move)
		history = append(history, move)
		fmt.Printf("engine plays %s\n", gomoku.FormatMove(move))
		printBoard(pos)

		if term, terminal := pos.Winner(); terminal {
			announceResult(term, pos)
			return
		}

		humanMove := readHumanMove(pos, scanner)
		pos.Apply(humanMove)
		history = append(history, humanMove)
		printBoard(pos)

		if term, terminal := pos.Winner(); terminal {
			announceResult(term, pos)
			return
		}
	}
}

func announceResult(term mcts.TerminalResult, pos *gomoku.Position) {
	switch term {
	case mcts.Draw:
		fmt.Println("it's a draw")
	case mcts.PlayerJustMoved:
		winner := gomoku.Black
		if pos.Ply()%2 == 0 {
			winner = gomoku.White
		}
		fmt.Printf("%s wins\n", winner)
	}
}
