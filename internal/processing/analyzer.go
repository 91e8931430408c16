// Package processing replays move lists through the arbiter and reports what
// happened along the way.
package processing

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// GameAnalysis holds analysis results from replaying a move list.
type GameAnalysis struct {
	Final     session.State
	Plies     int
	Checks    int      // Moves that left the opponent in check
	Positions []uint64 // Zobrist hashes, starting position first

	HasPromotion            bool // A pawn reached the last row
	HasRepetition           bool // Some position occurred three times
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool // Judged on the final position
}

// RepetitionDetected returns true if the replay has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// ParseMoveList splits text on whitespace and parses each move in long
// algebraic form. The error names the ply of the first bad move.
func ParseMoveList(text string) ([]chess.Move, error) {
	fields := strings.Fields(text)
	moves := make([]chess.Move, 0, len(fields))
	for i, f := range fields {
		mv, err := chess.ParseMove(f)
		if err != nil {
			return nil, errors.Wrapf(err, "ply %d", i+1)
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// AnalyzeMoves plays moves from start through arb. It stops at the first
// rejected move and returns the analysis so far together with a
// *errors.MoveError describing the rejection.
func AnalyzeMoves(start session.State, moves []chess.Move, arb *engine.Arbiter) (*GameAnalysis, error) {
	analysis := &GameAnalysis{Final: start}

	posHash := positionHash(start)
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}

	state := start
	for _, mv := range moves {
		next, out := state.Move(mv.From, mv.To, arb)
		if !out.Valid {
			analysis.Final = state
			return analysis, out.MoveErr(state.Ply()+1, mv.From, mv.To)
		}
		state = next
		analysis.Plies++

		if state.IsChecked(state.Player()) {
			analysis.Checks++
		}
		if out.Promotion {
			analysis.HasPromotion = true
		}

		posHash = positionHash(state)
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++

		// 3-fold repetition
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}

		// 5-fold repetition
		if positionCount[posHash] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.HasInsufficientMaterial = HasInsufficientMaterial(state.Snapshot())
	analysis.Final = state
	return analysis, nil
}

func positionHash(s session.State) uint64 {
	return hashing.GenerateZobristHash(s.Snapshot(), s.Player())
}

// HasInsufficientMaterial returns true if neither side can possibly mate:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with bishops on the same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minor [chess.NumColours][]chess.Piece

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			switch p.Type {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			default:
				minor[colour] = append(minor[colour], p)
			}
		}
	}

	white, black := minor[chess.White], minor[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true // The lone minor piece is a bishop or knight
	case len(white) == 1 && len(black) == 1:
		return white[0].Type == chess.Bishop && black[0].Type == chess.Bishop &&
			isLightSquare(white[0].Position) == isLightSquare(black[0].Position)
	}
	return false
}

// isLightSquare returns true for light squares; a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}
