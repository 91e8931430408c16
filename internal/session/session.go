// Package session threads the state of one game between moves: the board,
// check bookkeeping, whose turn it is and which piece is selected.
//
// State is a value. Every operation returns a new State and leaves the
// receiver untouched, so a host may keep old states for display or retry.
package session

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// State is one snapshot of a game in progress.
type State struct {
	board    *chess.Board
	status   engine.GameStatus
	player   chess.Colour
	selected chess.Piece
	ply      int
}

// New returns a game at the standard starting position with White to move.
func New() State {
	return FromBoard(chess.NewInitialBoard(), chess.White)
}

// FromBoard starts a game from an arbitrary position. The board is copied.
func FromBoard(board *chess.Board, toMove chess.Colour) State {
	b := board.Copy()
	return State{
		board:  b,
		status: engine.NewGameStatus(b),
		player: toMove,
	}
}

// FromFEN starts a game from a FEN position.
func FromFEN(fen string) (State, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return State{}, err
	}
	return FromBoard(board, toMove), nil
}

// Click interprets a click on sq the way a board UI would.
//
// With a piece selected, a click on any other square not holding a piece of
// the selected colour is a move attempt. Otherwise a click on one of the
// current player's pieces selects it, and anything else is rejected because
// the current player needs to move.
func (s State) Click(sq chess.Square, arb *engine.Arbiter) (State, engine.Outcome) {
	target, occupied := s.board.At(sq)
	if !s.selected.IsEmpty() && sq != s.selected.Position && !(occupied && target.Colour == s.selected.Colour) {
		return s.attempt(sq, arb)
	}
	return s.Select(sq)
}

// Select makes the current player's piece on sq the selected piece.
func (s State) Select(sq chess.Square) (State, engine.Outcome) {
	p, ok := s.board.At(sq)
	if !ok {
		return s, engine.Outcome{Reason: engine.ReasonNoSelection, Message: s.player.String() + " needs to move"}
	}
	if p.Colour != s.player {
		return s, engine.Outcome{Reason: engine.ReasonWrongTurn, Message: s.player.String() + " needs to move"}
	}
	s.selected = p
	return s, engine.Outcome{Valid: true}
}

// Deselect clears the selection.
func (s State) Deselect() State {
	s.selected = chess.Piece{}
	return s
}

// Move selects the piece on from and attempts to move it to to. Unlike Click,
// a target holding one of the mover's own pieces is rejected rather than
// selected. A rejected move returns the receiver unchanged.
func (s State) Move(from, to chess.Square, arb *engine.Arbiter) (State, engine.Outcome) {
	sel, out := s.Select(from)
	if !out.Valid {
		return s, out
	}
	next, out := sel.attempt(to, arb)
	if !out.Valid {
		return s, out
	}
	return next, out
}

// attempt hands the selected piece to the arbiter and commits the result.
func (s State) attempt(sq chess.Square, arb *engine.Arbiter) (State, engine.Outcome) {
	if s.selected.Colour != s.player {
		return s, engine.Outcome{Reason: engine.ReasonWrongTurn, Message: s.player.String() + " needs to move"}
	}
	board, status, out := arb.AttemptMove(s.selected, sq, s.board, s.status)
	if !out.Valid {
		return s, out
	}
	return State{
		board:  board,
		status: status,
		player: s.player.Opposite(),
		ply:    s.ply + 1,
	}, out
}

// Player returns the colour to move.
func (s State) Player() chess.Colour {
	return s.player
}

// SelectedPiece returns the selected piece, if any.
func (s State) SelectedPiece() (chess.Piece, bool) {
	return s.selected, !s.selected.IsEmpty()
}

// IsChecked reports whether colour's king was attacked after the last move.
func (s State) IsChecked(colour chess.Colour) bool {
	return s.status.IsChecked(colour)
}

// IsCheckmate reports whether colour was found checkmated.
func (s State) IsCheckmate(colour chess.Colour) bool {
	return s.status.IsCheckmate(colour)
}

// Status returns the check bookkeeping.
func (s State) Status() engine.GameStatus {
	return s.status
}

// Ply returns the number of moves committed in this session.
func (s State) Ply() int {
	return s.ply
}

// Snapshot returns a copy of the board.
func (s State) Snapshot() *chess.Board {
	return s.board.Copy()
}

// LegalMoves lists the moves the current player may make.
func (s State) LegalMoves() []chess.Move {
	return engine.LegalMoves(s.board, s.status, s.player)
}

// FEN returns the position in FEN. The move number counts from the start of
// the session.
func (s State) FEN() string {
	return engine.BoardToFEN(s.board, s.player, s.ply/2+1)
}
