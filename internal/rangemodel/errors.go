package rangemodel

import (
	"errors"
	"fmt"
)

// ErrUnbounded is wrapped by iteration errors on ranges with an infinite end.
var ErrUnbounded = errors.New("cannot enumerate an unbounded range")

// FormatError reports malformed range text.
type FormatError struct {
	Input  string
	Reason string
	Err    error
}

// Error fulfills the error interface.
func (err *FormatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid range %q: %s: %v", err.Input, err.Reason, err.Err)
	}
	return fmt.Sprintf("invalid range %q: %s", err.Input, err.Reason)
}

// Unwrap returns the underlying cause of this error.
func (err *FormatError) Unwrap() error {
	return err.Err
}

// TypeError reports a structurally invalid Range or Bound.
type TypeError struct {
	Message string
}

// Error fulfills the error interface.
func (err *TypeError) Error() string {
	return err.Message
}

// ValidationError reports a DiscontinuousRange that breaks its bound or
// ordering rules.
type ValidationError struct {
	Message string
}

// Error fulfills the error interface.
func (err *ValidationError) Error() string {
	return err.Message
}

func typeErrorf(format string, args ...any) error {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*TypeError)(nil)
	_ error = (*ValidationError)(nil)
)
