package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

const (
	kingStartCol      = 4
	kingsideRookCol   = 7
	queensideRookCol  = 0
	kingsideKingTo    = 6
	queensideKingTo   = 2
	kingsideRookTo    = 5
	queensideRookTo   = 3
	castlingKingShift = 2
)

// ValidateKingMove accepts a single step in any direction, or a two-square
// horizontal step which is treated as castling. On a successful castle the
// outcome carries the rook relocation in ExtraMoves.
func ValidateKingMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}

	dr := target.Row - piece.Position.Row
	dc := target.Col - piece.Position.Col
	if abs(dr) <= 1 && abs(dc) <= 1 {
		return valid()
	}
	if dr != 0 || abs(dc) != castlingKingShift {
		return reject(ReasonGeometry, "invalid move direction for the king")
	}

	queenside := dc < 0
	out := CanCastle(piece, board, queenside)
	if !out.Valid {
		return out
	}
	out.ExtraMoves = []chess.Move{castleRookMove(piece.Colour, queenside)}
	return out
}

// castleRookMove returns the rook hop that accompanies castling: for White
// h1->f1 (7,7)->(7,5) or a1->d1 (7,0)->(7,3), mirrored on row 0 for Black.
func castleRookMove(colour chess.Colour, queenside bool) chess.Move {
	row := colour.HomeRow()
	if queenside {
		return chess.Move{From: chess.Sq(row, queensideRookCol), To: chess.Sq(row, queensideRookTo)}
	}
	return chess.Move{From: chess.Sq(row, kingsideRookCol), To: chess.Sq(row, kingsideRookTo)}
}

// CanCastle checks the castling preconditions in order, reporting the first
// that fails: the king is unmoved and on its start square, the corner holds an
// unmoved rook of the same colour, and every square the king and rook travel
// over is empty.
//
// Attacks on the king's start, transit or destination squares are not
// examined here. The arbiter's king-safety guard rejects a castle that ends in
// check, but castling out of or through check is accepted.
func CanCastle(king chess.Piece, board *chess.Board, queenside bool) Outcome {
	if king.HasMoved {
		return reject(ReasonCastling, "king has already moved")
	}
	row := king.Colour.HomeRow()
	if king.Position != chess.Sq(row, kingStartCol) {
		return reject(ReasonCastling, "king is not on its starting square")
	}

	rookMove := castleRookMove(king.Colour, queenside)
	rook, ok := board.At(rookMove.From)
	if !ok {
		return reject(ReasonCastling, "no piece on the rook's starting square %s", rookMove.From)
	}
	if rook.Colour != king.Colour {
		return reject(ReasonCastling, "the piece on %s belongs to the opponent", rookMove.From)
	}
	if rook.Type != chess.Rook {
		return reject(ReasonCastling, "the piece on %s is a %s, not a rook", rookMove.From, rook.Type)
	}
	if rook.HasMoved {
		return reject(ReasonCastling, "rook has already moved")
	}

	kingTo := chess.Sq(row, kingsideKingTo)
	if queenside {
		kingTo = chess.Sq(row, queensideKingTo)
	}
	if out := castlingPathClear(board, king.Position, kingTo, king.Colour, "king's"); !out.Valid {
		return out
	}
	return castlingPathClear(board, rookMove.From, rookMove.To, king.Colour, "rook's")
}

// castlingPathClear checks every square after from up to and including to.
func castlingPathClear(board *chess.Board, from, to chess.Square, colour chess.Colour, who string) Outcome {
	for _, sq := range squaresToward(from, to) {
		p, ok := board.At(sq)
		if !ok {
			continue
		}
		if p.Colour == colour {
			return reject(ReasonCastling, "%s path blocked by a %s of the same colour on %s", who, p.Type, sq)
		}
		return reject(ReasonCastling, "%s path blocked by an opponent's %s on %s", who, p.Type, sq)
	}
	return valid()
}
