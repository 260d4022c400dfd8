package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidConfiguration = errors.New("vertex count must be positive")
	ErrInvalidVertex        = errors.New("vertex out of range")
	ErrInvalidEdge          = errors.New("self-loops are not permitted")
)

// Error provides structured error information for graph operations.
type Error struct {
	Op    string // Operation that failed (e.g., "AddEdge", "SetEdgeWeight")
	U     int    // First vertex involved (if applicable)
	V     int    // Second vertex involved (-1 when the operation takes one vertex)
	Cause error  // Underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.V >= 0 {
		return fmt.Sprintf("%s (%d,%d): %v", e.Op, e.U, e.V, e.Cause)
	}
	return fmt.Sprintf("%s %d: %v", e.Op, e.U, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// vertexError builds an ErrInvalidVertex error for a single-vertex operation.
func vertexError(op string, v int) error {
	return &Error{Op: op, U: v, V: -1, Cause: ErrInvalidVertex}
}

// edgeError builds an ErrInvalidEdge error for an attempted self-loop.
func edgeError(op string, u, v int) error {
	return &Error{Op: op, U: u, V: v, Cause: ErrInvalidEdge}
}

// IsInvalidVertex returns true if the error stems from an out-of-range vertex id.
func IsInvalidVertex(err error) bool {
	return errors.Is(err, ErrInvalidVertex)
}

// IsInvalidEdge returns true if the error stems from an attempted self-loop.
func IsInvalidEdge(err error) bool {
	return errors.Is(err, ErrInvalidEdge)
}
