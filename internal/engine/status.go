package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CheckState holds the check flags of one colour.
type CheckState struct {
	IsChecked   bool
	IsCheckmate bool
}

// GameStatus is the check bookkeeping of a game, indexed by chess.Colour.
// It is only changed by the Arbiter when a move is committed; KingPosition
// of a colour moves only when that colour's king moves.
type GameStatus struct {
	Check        [chess.NumColours]CheckState
	KingPosition [chess.NumColours]chess.Square
}

// NewGameStatus derives king positions and current check flags from board.
// Checkmate flags are left false.
func NewGameStatus(board *chess.Board) GameStatus {
	var status GameStatus
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if sq, ok := board.FindKing(colour); ok {
			status.KingPosition[colour] = sq
			status.Check[colour].IsChecked = !IsKingSafe(sq, colour, board).Valid
		}
	}
	return status
}

// King returns the recorded king square of colour.
func (s GameStatus) King(colour chess.Colour) chess.Square {
	return s.KingPosition[colour]
}

// IsChecked reports whether colour's king was attacked after the last move.
func (s GameStatus) IsChecked(colour chess.Colour) bool {
	return s.Check[colour].IsChecked
}

// IsCheckmate reports whether colour was found checkmated. It is only ever
// true when the arbiter runs with checkmate detection enabled.
func (s GameStatus) IsCheckmate(colour chess.Colour) bool {
	return s.Check[colour].IsCheckmate
}
