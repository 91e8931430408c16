package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Arbiter decides moves and builds the resulting position. It holds no game
// state, so one Arbiter may serve many games; callers own board and status.
type Arbiter struct {
	observer        Observer
	detectCheckmate bool
}

// Option configures an Arbiter.
type Option func(*Arbiter)

// WithObserver installs a diagnostic hook. A nil observer disables events.
func WithObserver(o Observer) Option {
	return func(a *Arbiter) {
		if o == nil {
			o = nopObserver{}
		}
		a.observer = o
	}
}

// WithCheckmateDetection makes the arbiter search for a legal reply whenever a
// committed move gives check, setting IsCheckmate when none exists.
func WithCheckmateDetection(enabled bool) Option {
	return func(a *Arbiter) {
		a.detectCheckmate = enabled
	}
}

// NewArbiter creates an Arbiter. By default it emits no events and leaves
// checkmate flags false.
func NewArbiter(opts ...Option) *Arbiter {
	a := &Arbiter{observer: nopObserver{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AttemptMove validates moving piece to target and, if the move is legal,
// returns the new board and status. The inputs are never modified: a rejected
// move returns board and status unchanged together with the reason.
//
// The sequence is: piece validation, candidate board (extra moves first, then
// the piece), king position update, own king safety on the candidate, then
// check detection against the opponent.
func (a *Arbiter) AttemptMove(piece chess.Piece, target chess.Square, board *chess.Board, status GameStatus) (*chess.Board, GameStatus, Outcome) {
	candidate, next, out := decide(piece, target, board, status)
	if !out.Valid {
		a.observer.Observe(Event{Kind: EventRejected, Piece: piece, Target: target, Outcome: out})
		return board, status, out
	}

	mover := piece.Colour
	enemy := mover.Opposite()
	next.Check[mover] = CheckState{}
	next.Check[enemy] = CheckState{}

	if king, ok := kingSquare(candidate, next, enemy); ok && !IsKingSafe(king, enemy, candidate).Valid {
		next.Check[enemy].IsChecked = true
		a.observer.Observe(Event{Kind: EventCheck, Piece: piece, Target: target, Outcome: out})
		if a.detectCheckmate && !HasLegalMoves(candidate, next, enemy) {
			next.Check[enemy].IsCheckmate = true
			a.observer.Observe(Event{Kind: EventCheckmate, Piece: piece, Target: target, Outcome: out})
		}
	}

	a.observer.Observe(Event{Kind: EventCommitted, Piece: piece, Target: target, Outcome: out})
	if out.Promotion {
		a.observer.Observe(Event{Kind: EventPromotion, Piece: piece, Target: target, Outcome: out})
	}
	return candidate, next, out
}

// decide runs validation and the own-king guard. On success it returns the
// candidate board and status; otherwise the rejecting outcome and nil.
func decide(piece chess.Piece, target chess.Square, board *chess.Board, status GameStatus) (*chess.Board, GameStatus, Outcome) {
	if p, ok := board.At(piece.Position); !ok || p.Type != piece.Type || p.Colour != piece.Colour {
		return nil, status, reject(ReasonNoSelection, "no %s %s on %s", piece.Colour, piece.Type, piece.Position)
	}

	out := Validate(piece, target, board)
	if !out.Valid {
		return nil, status, out
	}

	candidate, next := applyMove(board, status, piece, target, out.ExtraMoves)

	if king, ok := kingSquare(candidate, next, piece.Colour); ok {
		if safe := IsKingSafe(king, piece.Colour, candidate); !safe.Valid {
			return nil, status, reject(ReasonKingSafety, "move leaves own king in check: %s", safe.Message)
		}
	}
	return candidate, next, out
}

// applyMove builds the candidate board: extra moves in order, then the piece
// itself, capturing whatever stood on target.
func applyMove(board *chess.Board, status GameStatus, piece chess.Piece, target chess.Square, extra []chess.Move) (*chess.Board, GameStatus) {
	candidate := board.Copy()
	for _, m := range extra {
		candidate.Relocate(m)
	}

	moved := piece
	moved.HasMoved = true
	candidate.Clear(piece.Position)
	candidate.Set(target, moved)

	next := status
	if piece.Type == chess.King {
		next.KingPosition[piece.Colour] = target
	}
	return candidate, next
}

// kingSquare returns the square of colour's king, trusting status when it
// agrees with the board and searching the board otherwise.
func kingSquare(board *chess.Board, status GameStatus, colour chess.Colour) (chess.Square, bool) {
	sq := status.King(colour)
	if p, ok := board.At(sq); ok && p.Type == chess.King && p.Colour == colour {
		return sq, true
	}
	return board.FindKing(colour)
}
