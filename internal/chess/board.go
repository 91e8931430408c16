package chess

import "strings"

// backRank is the piece order of both back ranks from the a-file to the h-file.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of optional pieces. A cell holding the zero Piece is empty.
//
// Invariant: a piece's Position always equals the index of the cell that holds it.
// Set maintains this; callers must not write Squares directly with a stale Position.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position:
// Black on rows 0 and 1, White on rows 6 and 7.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	for col := 0; col < BoardSize; col++ {
		b.Set(Sq(Black.HomeRow(), col), B(backRank[col]))
		b.Set(Sq(Black.PawnRow(), col), B(Pawn))
		b.Set(Sq(White.PawnRow(), col), W(Pawn))
		b.Set(Sq(White.HomeRow(), col), W(backRank[col]))
	}
}

// At returns the piece on sq and whether the square is occupied.
// Off-board squares report as empty.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	p := b.Squares[sq.Row][sq.Col]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	_, occupied := b.At(sq)
	return sq.OnBoard() && !occupied
}

// Set places a piece on sq, rewriting its Position to sq.
func (b *Board) Set(sq Square, p Piece) {
	if !sq.OnBoard() {
		return
	}
	if p.IsEmpty() {
		b.Squares[sq.Row][sq.Col] = Piece{}
		return
	}
	p.Position = sq
	b.Squares[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Relocate moves whatever stands on m.From to m.To, capturing any occupant of
// m.To and marking the moved piece as moved. It reports false if m.From is empty.
func (b *Board) Relocate(m Move) bool {
	p, ok := b.At(m.From)
	if !ok || !m.To.OnBoard() {
		return false
	}
	p.HasMoved = true
	b.Clear(m.From)
	b.Set(m.To, p)
	return true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.Type == King && p.Colour == colour {
				return p.Position, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Squares[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of FEN letters, '.' for empty squares,
// row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
