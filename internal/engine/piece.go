package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ValidateKnightMove accepts exactly the eight L-shaped deltas. Knights jump,
// so occupancy between the squares is irrelevant.
func ValidateKnightMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}
	delta := [2]int{target.Row - piece.Position.Row, target.Col - piece.Position.Col}
	if !slices.Contains(knightOffsets, delta) {
		return reject(ReasonGeometry, "invalid move direction for the knight")
	}
	return valid()
}

// ValidateBishopMove accepts diagonal moves with an empty path.
func ValidateBishopMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}
	if !isDiagonal(piece.Position, target) {
		return reject(ReasonGeometry, "bishop can only move diagonally")
	}
	return slide(piece, target, board)
}

// ValidateRookMove accepts straight moves along a row or column with an empty path.
func ValidateRookMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}
	if !isStraight(piece.Position, target) {
		return reject(ReasonGeometry, "rook can only move in a straight line")
	}
	return slide(piece, target, board)
}

// ValidateQueenMove accepts any rook or bishop move.
func ValidateQueenMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}
	if !isStraight(piece.Position, target) && !isDiagonal(piece.Position, target) {
		return reject(ReasonGeometry, "queen can only move straight or diagonally")
	}
	return slide(piece, target, board)
}

func slide(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if blocker, blocked := pathBlocker(board, piece.Position, target); blocked {
		return reject(ReasonBlockedPath, "path is blocked at %s", blocker)
	}
	return valid()
}

func isDiagonal(from, to chess.Square) bool {
	dr, dc := abs(to.Row-from.Row), abs(to.Col-from.Col)
	return dr == dc && dr != 0
}

func isStraight(from, to chess.Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	return (dr == 0) != (dc == 0)
}
