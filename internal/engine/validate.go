package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Validate checks the geometry and path of moving piece to target by
// dispatching on the piece type. It knows nothing about turn order or check.
func Validate(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	switch piece.Type {
	case chess.Pawn:
		return ValidatePawnMove(piece, target, board)
	case chess.Knight:
		return ValidateKnightMove(piece, target, board)
	case chess.Bishop:
		return ValidateBishopMove(piece, target, board)
	case chess.Rook:
		return ValidateRookMove(piece, target, board)
	case chess.Queen:
		return ValidateQueenMove(piece, target, board)
	case chess.King:
		return ValidateKingMove(piece, target, board)
	case chess.Empty:
		return reject(ReasonNoSelection, "no piece to move")
	default:
		panic(fmt.Sprintf("engine: unknown piece type %d", piece.Type))
	}
}

// checkTarget performs the checks shared by every validator: the target is on
// the board, differs from the source and does not hold a piece of the mover's
// colour.
func checkTarget(piece chess.Piece, target chess.Square, board *chess.Board) (Outcome, bool) {
	if !target.OnBoard() {
		return reject(ReasonGeometry, "target %s is off the board", target), false
	}
	if target == piece.Position {
		return reject(ReasonGeometry, "piece must move to a different square"), false
	}
	if p, ok := board.At(target); ok && p.Colour == piece.Colour {
		return reject(ReasonCapturePolicy, "cannot capture a %s of the same colour", p.Type), false
	}
	return Outcome{}, true
}
