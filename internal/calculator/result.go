package calculator

import (
	"math"
	"strconv"
)

// Result is the outcome of one evaluation: either Value or Err is meaningful.
type Result struct {
	Op    Operation
	A, B  float64
	Value float64
	Err   error
}

// Ok reports whether the evaluation succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// FormatValue returns the shortest decimal form of v, so 4.0 prints as "4"
// and 1e6 as "1000000". Magnitudes below 1e-4 or from 1e21 up use an
// exponent, as do Inf and NaN.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-4 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
