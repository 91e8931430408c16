// Package chess provides the core board model: colours, pieces, squares and the 8x8 board.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// HomeRow returns the row holding the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// Forward returns the row delta of a forward pawn step: -1 for White, +1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// LastRow returns the row on which the colour's pawns promote.
func (c Colour) LastRow() int {
	return c.Opposite().HomeRow()
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Empty PieceType = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"empty", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// BoardSize is the number of rows and columns of the board.
const BoardSize = 8

// Square is a board coordinate. Row 0 is Black's back rank (rank 8),
// row 7 is White's (rank 1); Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by dr rows and dc columns.
// The result may be off the board.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// String returns the algebraic name of the square (e.g. "e2"),
// or the raw coordinates when the square is off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

// ParseSquare converts algebraic notation ("e2") into a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// Move is a relocation of whatever stands on From to To.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form (e.g. "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses long algebraic notation ("e2e4", optionally "e2-e4").
func ParseMove(text string) (Move, error) {
	if len(text) == 5 && (text[2] == '-' || text[2] == ' ') {
		text = text[:2] + text[3:]
	}
	if len(text) != 4 {
		return Move{}, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// Piece is a piece standing on the board. The zero value (Type == Empty) is no piece.
type Piece struct {
	Type     PieceType
	Colour   Colour
	Position Square
	HasMoved bool
}

// IsEmpty reports whether p is the no-piece value.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Letter returns the FEN letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a description such as "white knight on g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Type, p.Position)
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Colour: colour}
}

// W creates an unmoved white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates an unmoved black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}
