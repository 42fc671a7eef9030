package calculator

import (
	"errors"
	"fmt"
)

// DefaultDivisionByZeroMessage is printed when a division has a zero divisor.
const DefaultDivisionByZeroMessage = "Cannot divide by zero."

var (
	// ErrDivisionByZero matches any division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownOperation is returned by ParseOperation for unrecognized names.
	ErrUnknownOperation = errors.New("unknown operation")
)

// InvalidOperationError is the only failure an arithmetic operation can produce.
type InvalidOperationError struct {
	Op      Operation
	Reason  error
	Message string
}

// Error returns the human readable message.
func (e *InvalidOperationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("invalid operation %s: %v", e.Op, e.Reason)
}

// Unwrap exposes the reason so errors.Is(err, ErrDivisionByZero) works.
func (e *InvalidOperationError) Unwrap() error {
	return e.Reason
}
