// game.go - Move-list and interactive play
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/session"
)

const commandHelp = `  e2e4 | e2 e4   move the piece on e2 to e4
  select e2       select the piece on e2
  click e4        click a square (select, reselect or move)
  deselect        clear the selection
  moves           list the legal moves of the side to move
  board           print the board
  fen             print the position as FEN
  help            print this list
  quit            leave
`

// game drives one session from the command line.
type game struct {
	cfg   *config.Config
	arb   *engine.Arbiter
	state session.State
	draw  *renderer
	out   io.Writer
}

func newGame(cfg *config.Config, arb *engine.Arbiter, state session.State) *game {
	return &game{
		cfg:   cfg,
		arb:   arb,
		state: state,
		draw:  newRenderer(cfg.Output),
		out:   cfg.OutputFile,
	}
}

// playMoves plays a whitespace separated move list and prints the final
// position. The first rejected move stops play with an error naming it.
func (g *game) playMoves(list string) error {
	moves, err := processing.ParseMoveList(list)
	if err != nil {
		return err
	}
	analysis, err := processing.AnalyzeMoves(g.state, moves, g.arb)
	if err != nil {
		return err
	}
	g.state = analysis.Final

	if g.cfg.Output.ShowBoard {
		g.printBoard()
	}
	g.printStatus()
	if analysis.RepetitionDetected() {
		fmt.Fprintln(g.out, "position repeated three times")
	}
	if analysis.HasInsufficientMaterial {
		fmt.Fprintln(g.out, "insufficient material")
	}
	if g.cfg.Verbosity > 0 {
		fmt.Fprintf(g.cfg.LogFile, "Played %d plies, %d checks\n", analysis.Plies, analysis.Checks)
	}
	fmt.Fprintln(g.out, g.state.FEN())
	return nil
}

// interact reads commands from in until quit or end of input.
func (g *game) interact(in io.Reader) error {
	if g.cfg.Output.ShowBoard {
		g.printBoard()
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(g.out, "%s> ", g.state.Player())
		if !scanner.Scan() {
			fmt.Fprintln(g.out)
			return scanner.Err()
		}
		if quit := g.command(scanner.Text()); quit {
			return nil
		}
	}
}

// command executes one interactive line and reports whether to stop.
func (g *game) command(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(g.out, commandHelp)
	case "board":
		g.printBoard()
	case "fen":
		fmt.Fprintln(g.out, g.state.FEN())
	case "moves":
		g.printMoves()
	case "deselect":
		g.state = g.state.Deselect()
	case "select", "click":
		if len(fields) != 2 {
			fmt.Fprintf(g.out, "usage: %s <square>\n", fields[0])
			return false
		}
		sq, err := chess.ParseSquare(fields[1])
		if err != nil {
			fmt.Fprintf(g.out, "error: %v\n", err)
			return false
		}
		if fields[0] == "select" {
			g.apply(g.state.Select(sq))
		} else {
			g.apply(g.state.Click(sq, g.arb))
		}
	default:
		mv, err := chess.ParseMove(strings.Join(fields, ""))
		if err != nil {
			fmt.Fprintf(g.out, "error: %v (type help for commands)\n", err)
			return false
		}
		g.apply(g.state.Move(mv.From, mv.To, g.arb))
	}
	return false
}

// apply adopts next and reports the outcome. A committed move is
// recognised by the ply counter advancing.
func (g *game) apply(next session.State, out engine.Outcome) {
	moved := next.Ply() != g.state.Ply()
	g.state = next
	if !out.Valid {
		fmt.Fprintf(g.out, "rejected: %s (%s)\n", out.Message, out.Reason)
		return
	}
	if !moved {
		return
	}
	if out.Promotion {
		fmt.Fprintln(g.out, "pawn reached the last row")
	}
	if g.cfg.Output.ShowBoard {
		g.printBoard()
	}
	g.printStatus()
}

func (g *game) printBoard() {
	var selected *chess.Square
	if p, ok := g.state.SelectedPiece(); ok {
		sq := p.Position
		selected = &sq
	}
	g.draw.render(g.out, g.state.Snapshot(), selected)
}

// printStatus reports check, checkmate and stalemate for the side to move.
func (g *game) printStatus() {
	player := g.state.Player()
	switch {
	case g.state.IsCheckmate(player):
		fmt.Fprintf(g.out, "checkmate, %s wins\n", player.Opposite())
	case g.state.IsChecked(player):
		fmt.Fprintf(g.out, "%s is in check\n", player)
	case engine.IsStalemate(g.state.Snapshot(), g.state.Status(), player):
		fmt.Fprintln(g.out, "stalemate")
	}
}

func (g *game) printMoves() {
	moves := g.state.LegalMoves()
	names := make([]string, len(moves))
	for i, mv := range moves {
		names[i] = mv.String()
	}
	slices.Sort(names)
	fmt.Fprintln(g.out, strings.Join(names, " "))
}
