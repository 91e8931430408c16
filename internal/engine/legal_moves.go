package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns every move of colour that the arbiter would accept on
// board, in row-major order of source then target. Castling follows the
// arbiter's rules, so a castle out of or through check is included.
func LegalMoves(board *chess.Board, status GameStatus, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		for _, target := range legalTargets(board, status, piece, false) {
			moves = append(moves, chess.Move{From: piece.Position, To: target})
		}
	}
	return moves
}

// LegalTargets returns the squares piece may legally move to.
func LegalTargets(board *chess.Board, status GameStatus, piece chess.Piece) []chess.Square {
	return legalTargets(board, status, piece, false)
}

// HasLegalMoves returns true if colour has at least one legal move.
func HasLegalMoves(board *chess.Board, status GameStatus, colour chess.Colour) bool {
	for _, piece := range board.Pieces(colour) {
		if len(legalTargets(board, status, piece, true)) > 0 {
			return true
		}
	}
	return false
}

func legalTargets(board *chess.Board, status GameStatus, piece chess.Piece, firstOnly bool) []chess.Square {
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			target := chess.Sq(row, col)
			if _, _, out := decide(piece, target, board, status); !out.Valid {
				continue
			}
			targets = append(targets, target)
			if firstOnly {
				return targets
			}
		}
	}
	return targets
}

// IsStalemate returns true if colour is not in check and has no legal move.
func IsStalemate(board *chess.Board, status GameStatus, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !HasLegalMoves(board, status, colour)
}
