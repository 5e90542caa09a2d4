package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound indicates the input file for a day does not exist.
	ErrInputNotFound = errors.New("puzzle: input file not found")
	// ErrEmptyName indicates a pack or day was created without a name.
	ErrEmptyName = errors.New("puzzle: name must not be empty")
)

// PreconditionError reports an assumption about the input that did not hold.
type PreconditionError struct {
	Message string
}

// Error implements the error interface for PreconditionError.
func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Message
}

// Assertf panics with a *PreconditionError when cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(&PreconditionError{Message: fmt.Sprintf(format, args...)})
	}
}

// Failf panics unconditionally with a *PreconditionError.
func Failf(format string, args ...any) {
	panic(&PreconditionError{Message: fmt.Sprintf(format, args...)})
}
