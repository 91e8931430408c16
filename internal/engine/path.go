package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pathBlocker steps from one square towards another by the unit direction of
// their delta and returns the first occupied square strictly between them.
// The endpoints are never inspected. from and to must share a row, column or
// diagonal.
func pathBlocker(board *chess.Board, from, to chess.Square) (chess.Square, bool) {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	cur := from.Offset(rowDir, colDir)
	for cur != to && cur.OnBoard() {
		if _, ok := board.At(cur); ok {
			return cur, true
		}
		cur = cur.Offset(rowDir, colDir)
	}
	return chess.Square{}, false
}

// isPathClear reports whether no piece stands strictly between from and to.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	_, blocked := pathBlocker(board, from, to)
	return !blocked
}

// squaresToward lists the squares from the one after from up to and including
// to, stepping by the unit direction of the delta.
func squaresToward(from, to chess.Square) []chess.Square {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	var squares []chess.Square
	for cur := from; cur != to && cur.OnBoard(); {
		cur = cur.Offset(rowDir, colDir)
		squares = append(squares, cur)
	}
	return squares
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
