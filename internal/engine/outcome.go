package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Reason classifies why a move was rejected.
type Reason int

const (
	ReasonNone          Reason = iota // Move accepted
	ReasonWrongTurn                   // Not this colour's turn
	ReasonNoSelection                 // No piece selected, or the source square is empty
	ReasonGeometry                    // Delta not permitted for the piece type
	ReasonBlockedPath                 // A piece stands between source and destination
	ReasonCapturePolicy               // Pawn forward capture, empty diagonal, own-piece capture
	ReasonCastling                    // A castling precondition failed
	ReasonKingSafety                  // The mover's king is attacked after the move
	ReasonUnsupported                 // Recognised rule that is not executed (en passant)
)

// String returns the category name used in logs and errors.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWrongTurn:
		return "wrong-turn"
	case ReasonNoSelection:
		return "no-selection"
	case ReasonGeometry:
		return "geometry"
	case ReasonBlockedPath:
		return "blocked-path"
	case ReasonCapturePolicy:
		return "capture-policy"
	case ReasonCastling:
		return "castling"
	case ReasonKingSafety:
		return "king-safety"
	case ReasonUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Outcome is the result of a validation or threat query. A fresh value is
// built for every call and never retained by the engine.
type Outcome struct {
	Valid   bool
	Reason  Reason
	Message string

	// ExtraMoves holds secondary relocations the primary move requires,
	// applied in order before the primary move (the castling rook hop).
	ExtraMoves []chess.Move

	// Promotion is set when a pawn move reaches the last row. The pawn is
	// not replaced; hosts decide what to do with the flag.
	Promotion bool

	// EnPassant is set when a pawn diagonal onto an empty square looks like
	// an en passant capture. Such moves are rejected.
	EnPassant bool
}

// valid returns an accepting outcome.
func valid() Outcome {
	return Outcome{Valid: true}
}

// reject returns a rejecting outcome with a formatted message.
func reject(reason Reason, format string, args ...interface{}) Outcome {
	return Outcome{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Err converts a rejected outcome into a *errors.MoveError wrapping
// errors.ErrIllegalMove. It returns nil for a valid outcome.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	return &errors.MoveError{
		Err:     errors.ErrIllegalMove,
		Reason:  o.Reason.String(),
		Message: o.Message,
	}
}

// MoveErr is like Err but also records the attempted move and ply.
func (o Outcome) MoveErr(ply int, from, to chess.Square) error {
	if o.Valid {
		return nil
	}
	return &errors.MoveError{
		Err:     errors.ErrIllegalMove,
		PlyNum:  ply,
		From:    from.String(),
		To:      to.String(),
		Reason:  o.Reason.String(),
		Message: o.Message,
	}
}
