// Package errors provides sentinel errors and error types for chessboard-go.
// Parse failures carry their input and offset while still allowing
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates square text that is not a file A-H
	// followed by a rank 1-8.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidPlacement indicates a malformed piece-placement string.
	ErrInvalidPlacement = errors.New("invalid placement")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError describes where and why a piece of text could not be decoded.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Offset   int    // Byte offset of the offending character (-1 if not applicable)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with the input and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" || e.Offset >= 0 {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Offset >= 0 {
			loc += fmt.Sprintf(" at offset %d", e.Offset)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, ": "))
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
