package engine

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceTypes = map[nchess.PieceType]chess.PieceType{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

// NewBoardFromFEN decodes a FEN string into a board and the side to move.
//
// FEN carries no per-piece history, so HasMoved is inferred: pawns off their
// start row have moved, and kings and rooks have moved unless a castling right
// still names them. En passant and clock fields are accepted and ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	fen = strings.TrimSpace(fen)
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, chess.White, &errors.FENError{
			Err:   fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err),
			Field: "fen",
			Value: fen,
		}
	}
	pos := nchess.NewGame(opt).Position()

	board := chess.NewBoard()
	for sq, p := range pos.Board().SquareMap() {
		pieceType, ok := fenPieceTypes[p.Type()]
		if !ok {
			continue
		}
		colour := chess.White
		if p.Color() == nchess.Black {
			colour = chess.Black
		}
		at := chess.Sq(chess.BoardSize-1-int(sq.Rank()), int(sq.File()))
		board.Set(at, chess.NewPiece(colour, pieceType))
	}
	inferHasMoved(board, pos.CastleRights())

	toMove := chess.White
	if pos.Turn() == nchess.Black {
		toMove = chess.Black
	}
	return board, toMove, nil
}

func inferHasMoved(board *chess.Board, rights nchess.CastleRights) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		nc := nchess.White
		if colour == chess.Black {
			nc = nchess.Black
		}
		kingside := rights.CanCastle(nc, nchess.KingSide)
		queenside := rights.CanCastle(nc, nchess.QueenSide)
		home := colour.HomeRow()

		for _, p := range board.Pieces(colour) {
			switch p.Type {
			case chess.Pawn:
				p.HasMoved = p.Position.Row != colour.PawnRow()
			case chess.King:
				p.HasMoved = p.Position != chess.Sq(home, kingStartCol) || !(kingside || queenside)
			case chess.Rook:
				unmoved := (kingside && p.Position == chess.Sq(home, kingsideRookCol)) ||
					(queenside && p.Position == chess.Sq(home, queensideRookCol))
				p.HasMoved = !unmoved
			default:
				continue
			}
			board.Set(p.Position, p)
		}
	}
}

// BoardToFEN converts a board to a FEN string. The castling field is derived
// from the HasMoved flags of kings and rooks on their start squares; en
// passant is always "-" and the halfmove clock 0.
func BoardToFEN(board *chess.Board, toMove chess.Colour, fullmove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	if fullmove < 1 {
		fullmove = 1
	}
	fmt.Fprintf(&sb, " - 0 %d", fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder, row 0 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := board.At(chess.Sq(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, queenside := range []bool{false, true} {
			if !castlingPiecesUnmoved(board, colour, queenside) {
				continue
			}
			letter := byte('K')
			if queenside {
				letter = 'Q'
			}
			if colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// castlingPiecesUnmoved reports whether colour's king and the rook of the
// given side are unmoved on their start squares.
func castlingPiecesUnmoved(board *chess.Board, colour chess.Colour, queenside bool) bool {
	king, ok := board.At(chess.Sq(colour.HomeRow(), kingStartCol))
	if !ok || king.Type != chess.King || king.Colour != colour || king.HasMoved {
		return false
	}
	rook, ok := board.At(castleRookMove(colour, queenside).From)
	return ok && rook.Type == chess.Rook && rook.Colour == colour && !rook.HasMoved
}
