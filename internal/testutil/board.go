package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var diagramPieces = map[byte]chess.PieceType{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// MustBoard builds a board from an eight-row diagram, row 0 first, using FEN
// letters and '.' for empty squares:
//
//	board := testutil.MustBoard(t,
//		"....k...",
//		"........",
//		...
//		"....K..R",
//	)
//
// Pawns off their start row are marked as moved; every other piece is unmoved.
func MustBoard(t testing.TB, rows ...string) *chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("MustBoard: got %d rows, want %d", len(rows), chess.BoardSize)
	}

	board := chess.NewBoard()
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("MustBoard: row %d is %q, want %d squares", row, line, chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			colour := chess.Black
			if c >= 'A' && c <= 'Z' {
				colour = chess.White
				c += 'a' - 'A'
			}
			pieceType, ok := diagramPieces[c]
			if !ok {
				t.Fatalf("MustBoard: unknown piece %q at row %d col %d", line[col], row, col)
			}
			p := chess.NewPiece(colour, pieceType)
			p.HasMoved = pieceType == chess.Pawn && row != colour.PawnRow()
			board.Set(chess.Sq(row, col), p)
		}
	}
	return board
}

// MarkMoved sets HasMoved on the piece standing on sq.
func MarkMoved(t testing.TB, board *chess.Board, sq chess.Square) {
	t.Helper()
	p, ok := board.At(sq)
	if !ok {
		t.Fatalf("MarkMoved: no piece on %s", sq)
	}
	p.HasMoved = true
	board.Set(sq, p)
}

// MustSquare parses an algebraic square name or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustPiece returns the piece standing on the named square or fails the test.
func MustPiece(t testing.TB, board *chess.Board, name string) chess.Piece {
	t.Helper()
	p, ok := board.At(MustSquare(t, name))
	if !ok {
		t.Fatalf("no piece on %s", name)
	}
	return p
}

// AssertBoardEqual reports every differing square between want and got.
func AssertBoardEqual(t testing.TB, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		if msg := formatMessage(msgAndArgs...); msg != "" {
			t.Errorf("%s: board mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("board mismatch (-want +got):\n%s", diff)
		}
	}
}
