package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// IsKingSafe reports whether the king of the given colour standing on king is
// free from attack on board. Threats are looked for in a fixed order (pawns,
// knights, sliding pieces, the enemy king) and the first one found is reported
// with ReasonKingSafety.
//
// The board is only read, so any candidate position may be probed.
func IsKingSafe(king chess.Square, colour chess.Colour, board *chess.Board) Outcome {
	enemy := colour.Opposite()

	// Enemy pawns attack from the row behind them in their direction of travel.
	pawnRow := -enemy.Forward()
	for _, dc := range []int{-1, 1} {
		sq := king.Offset(pawnRow, dc)
		if p, ok := board.At(sq); ok && p.Colour == enemy && p.Type == chess.Pawn {
			return threatenedBy(p)
		}
	}

	for _, off := range knightOffsets {
		sq := king.Offset(off[0], off[1])
		if p, ok := board.At(sq); ok && p.Colour == enemy && p.Type == chess.Knight {
			return threatenedBy(p)
		}
	}

	if p, ok := slidingAttacker(board, king, enemy, straightDirs, chess.Rook); ok {
		return threatenedBy(p)
	}
	if p, ok := slidingAttacker(board, king, enemy, diagonalDirs, chess.Bishop); ok {
		return threatenedBy(p)
	}

	for _, off := range kingOffsets {
		sq := king.Offset(off[0], off[1])
		if p, ok := board.At(sq); ok && p.Colour == enemy && p.Type == chess.King {
			return threatenedBy(p)
		}
	}

	return valid()
}

// slidingAttacker walks each ray from sq and returns the first occupant if it
// is an enemy queen or an enemy piece of the ray's own slider type.
func slidingAttacker(board *chess.Board, sq chess.Square, enemy chess.Colour, dirs [][2]int, slider chess.PieceType) (chess.Piece, bool) {
	for _, dir := range dirs {
		cur := sq.Offset(dir[0], dir[1])
		for cur.OnBoard() {
			if p, ok := board.At(cur); ok {
				if p.Colour == enemy && (p.Type == slider || p.Type == chess.Queen) {
					return p, true
				}
				break // Blocked
			}
			cur = cur.Offset(dir[0], dir[1])
		}
	}
	return chess.Piece{}, false
}

func threatenedBy(p chess.Piece) Outcome {
	return reject(ReasonKingSafety, "king is threatened by a %s %s on %s", p.Colour, p.Type, p.Position)
}

// IsInCheck returns true if the given colour's king is attacked on board.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return !IsKingSafe(king, colour, board).Valid
}
