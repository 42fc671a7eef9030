package calculator

import "golang.org/x/exp/constraints"

// Number is any real (non-complex) numeric type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns a + b.
func Sum[N Number](a, b N) N {
	return a + b
}

// Difference returns a - b.
func Difference[N Number](a, b N) N {
	return a - b
}

// Product returns a * b.
func Product[N Number](a, b N) N {
	return a * b
}

// Quotient divides a by b in float64 so that integer operands are not
// truncated. A zero divisor yields ErrDivisionByZero and no value.
func Quotient[N Number](a, b N) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return float64(a) / float64(b), nil
}
