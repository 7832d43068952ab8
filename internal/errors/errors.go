// Package errors provides sentinel errors and error types for the chesscore tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidBoardSize indicates a raw board array that does not hold 64 fields.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrInvalidFieldValue indicates a raw field byte above the largest encodable value.
	ErrInvalidFieldValue = errors.New("invalid field value")

	// ErrInvalidSquare indicates a square index outside 0-63.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveKind indicates a move kind outside the encodable bit range.
	ErrInvalidMoveKind = errors.New("invalid move kind")

	// ErrInvalidPromotion indicates an unknown promotion kind.
	ErrInvalidPromotion = errors.New("invalid promotion kind")

	// ErrPromotionWithoutPromotionMove indicates a promotion kind supplied
	// for a move that is not a promotion.
	ErrPromotionWithoutPromotionMove = errors.New("cannot encode a promotion kind without a promotion move")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that could not be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidFEN indicates a FEN string that could not be parsed.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError wraps errors with the square (and field byte, when known)
// that caused them. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type SquareError struct {
	Err    error // The underlying error
	Square int   // Offending square index
	Value  int   // Offending field byte (-1 if not applicable)
	Role   string
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	var parts []string

	if e.Role != "" {
		parts = append(parts, fmt.Sprintf("%s square %d", e.Role, e.Square))
	} else {
		parts = append(parts, fmt.Sprintf("square %d", e.Square))
	}

	if e.Value >= 0 {
		parts = append(parts, fmt.Sprintf("value %d", e.Value))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with the position in a move sequence where they
// occurred, including ply number and move text.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
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
