// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
//
// Illegal moves are ordinary results of the engine, not failures; they only
// become errors here when a host asks for one (see engine.Outcome.Err).
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a malformed square or move name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a lookup of an unknown game.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameExists indicates a game name that is already taken.
	ErrGameExists = errors.New("game already exists")
)

// MoveError wraps a rejected move with its context: ply, squares and the
// rejection category. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err     error  // The underlying error, usually ErrIllegalMove
	PlyNum  int    // Ply at which the move was attempted (0 if not applicable)
	From    string // Source square in algebraic form (if known)
	To      string // Destination square in algebraic form (if known)
	Reason  string // Rejection category, e.g. "blocked-path"
	Message string // Human readable explanation
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	msg := strings.Join(parts, ", ")
	if e.Message != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Message
	}

	if e.Err != nil {
		if msg == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports which field of a FEN string could not be decoded.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name, e.g. "placement"
	Value string // The offending text
}

// Error returns a formatted error message with the field and value.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
