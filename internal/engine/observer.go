package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// EventKind identifies what an arbiter Event reports.
type EventKind int

const (
	EventRejected  EventKind = iota // Move refused; Outcome holds the reason
	EventCommitted                  // Move applied
	EventCheck                      // The opponent's king is attacked after a committed move
	EventCheckmate                  // The opponent has no legal reply while in check
	EventPromotion                  // A committed pawn move reached the last row
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRejected:
		return "rejected"
	case EventCommitted:
		return "committed"
	case EventCheck:
		return "check"
	case EventCheckmate:
		return "checkmate"
	case EventPromotion:
		return "promotion"
	default:
		return "unknown"
	}
}

// Event is a diagnostic emitted by the Arbiter while it decides a move.
type Event struct {
	Kind    EventKind
	Piece   chess.Piece
	Target  chess.Square
	Outcome Outcome
}

// Observer receives arbiter diagnostics. Observers must not modify the
// engine's inputs; they are hooks, not part of the move contract.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(e Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// LogObserver writes events as text lines. Verbosity 0 writes nothing,
// 1 writes rejections, checks and checkmates, 2 writes every event.
type LogObserver struct {
	w         io.Writer
	verbosity int
}

// NewLogObserver creates a LogObserver writing to w.
func NewLogObserver(w io.Writer, verbosity int) *LogObserver {
	return &LogObserver{w: w, verbosity: verbosity}
}

// Observe writes e if the verbosity level allows it.
func (l *LogObserver) Observe(e Event) {
	if l == nil || l.w == nil || l.verbosity <= 0 {
		return
	}
	switch e.Kind {
	case EventRejected:
		fmt.Fprintf(l.w, "Rejected %s to %s: %s (%s).\n", e.Piece, e.Target, e.Outcome.Message, e.Outcome.Reason)
	case EventCheck:
		fmt.Fprintf(l.w, "Check: %s king is attacked after %s to %s.\n", e.Piece.Colour.Opposite(), e.Piece, e.Target)
	case EventCheckmate:
		fmt.Fprintf(l.w, "Checkmate: %s has no legal move.\n", e.Piece.Colour.Opposite())
	default:
		if l.verbosity < 2 {
			return
		}
		if e.Kind == EventPromotion {
			fmt.Fprintf(l.w, "Pawn on %s reached the last row; promotion is not applied.\n", e.Target)
			return
		}
		fmt.Fprintf(l.w, "Moved %s to %s.\n", e.Piece, e.Target)
	}
}

// nopObserver discards every event.
type nopObserver struct{}

func (nopObserver) Observe(Event) {}
