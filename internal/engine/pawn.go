package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnStep is one entry of the pawn direction table. Rows are expressed in
// units of the colour's forward direction.
type pawnStep struct {
	rows    int
	cols    int
	capture bool
}

var pawnSteps = []pawnStep{
	{rows: 1, cols: 0},                 // Forward one
	{rows: 2, cols: 0},                 // Forward two, first move only
	{rows: 1, cols: 1, capture: true},  // Diagonal capture
	{rows: 1, cols: -1, capture: true}, // Diagonal capture
}

// ValidatePawnMove checks pawn geometry: forward moves onto empty squares,
// a double step from the home row, and diagonal captures. A move reaching the
// last row sets Outcome.Promotion; the pawn itself is not replaced.
func ValidatePawnMove(piece chess.Piece, target chess.Square, board *chess.Board) Outcome {
	if out, ok := checkTarget(piece, target, board); !ok {
		return out
	}

	from := piece.Position
	fwd := piece.Colour.Forward()
	dr := target.Row - from.Row
	dc := target.Col - from.Col

	var step *pawnStep
	for i := range pawnSteps {
		if pawnSteps[i].rows*fwd == dr && pawnSteps[i].cols == dc {
			step = &pawnSteps[i]
			break
		}
	}
	if step == nil {
		return reject(ReasonGeometry, "invalid move direction for the pawn")
	}

	_, occupied := board.At(target)
	if !step.capture && occupied {
		return reject(ReasonCapturePolicy, "pawns cannot capture on a forward move")
	}
	if step.capture && !occupied {
		if isEnPassantShape(piece, target, board) {
			out := reject(ReasonUnsupported, "en passant is not supported")
			out.EnPassant = true
			return out
		}
		return reject(ReasonCapturePolicy, "pawns can only move diagonally when capturing")
	}

	if step.rows == 2 {
		if from.Row != piece.Colour.PawnRow() {
			return reject(ReasonGeometry, "pawns can only move two squares forward on their first move")
		}
		if blocker, blocked := pathBlocker(board, from, target); blocked {
			return reject(ReasonBlockedPath, "pawns cannot move through other pieces (%s)", blocker)
		}
	}

	out := valid()
	out.Promotion = target.Row == piece.Colour.LastRow()
	return out
}

// isEnPassantShape reports whether an enemy pawn stands beside the capturing
// pawn on the target file, on the row an en passant victim would occupy.
func isEnPassantShape(piece chess.Piece, target chess.Square, board *chess.Board) bool {
	beside := chess.Sq(piece.Position.Row, target.Col)
	p, ok := board.At(beside)
	return ok && p.Type == chess.Pawn && p.Colour != piece.Colour
}
