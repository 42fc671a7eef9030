// Package calculator provides the basic arithmetic operations.
package calculator

import "fmt"

// Calculator performs binary arithmetic on float64 operands.
// It holds no per-call state; the zero value is ready to use.
type Calculator struct {
	divisionByZeroMessage string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithDivisionByZeroMessage overrides the message carried by the
// division-by-zero error.
func WithDivisionByZeroMessage(msg string) Option {
	return func(c *Calculator) {
		c.divisionByZeroMessage = msg
	}
}

// New creates a calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		divisionByZeroMessage: DefaultDivisionByZeroMessage,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add returns the sum of two numbers.
func (c *Calculator) Add(a, b float64) float64 {
	return Sum(a, b)
}

// Subtract returns the difference of two numbers.
func (c *Calculator) Subtract(a, b float64) float64 {
	return Difference(a, b)
}

// Multiply returns the product of two numbers.
func (c *Calculator) Multiply(a, b float64) float64 {
	return Product(a, b)
}

// Divide returns the quotient of two numbers.
// A zero divisor returns an *InvalidOperationError.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	v, err := Quotient(a, b)
	if err != nil {
		return 0, &InvalidOperationError{
			Op:      OpDivide,
			Reason:  err,
			Message: c.message(),
		}
	}

	return v, nil
}

// Evaluate applies op to the operands.
func (c *Calculator) Evaluate(op Operation, a, b float64) Result {
	r := Result{Op: op, A: a, B: b}

	switch op {
	case OpAdd:
		r.Value = c.Add(a, b)
	case OpSubtract:
		r.Value = c.Subtract(a, b)
	case OpMultiply:
		r.Value = c.Multiply(a, b)
	case OpDivide:
		r.Value, r.Err = c.Divide(a, b)
	default:
		r.Err = fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}

	return r
}

func (c *Calculator) message() string {
	if c == nil || c.divisionByZeroMessage == "" {
		return DefaultDivisionByZeroMessage
	}

	return c.divisionByZeroMessage
}
