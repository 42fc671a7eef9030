package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Add(t *testing.T) {
	calc := New()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive numbers", 5, 3, 8},
		{"negative numbers", -2, -3, -5},
		{"mixed signs", -2, 3, 1},
		{"zero", 0, 5, 5},
		{"fractions", 0.5, 0.25, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Add(tt.a, tt.b))
		})
	}
}

func TestCalculator_Subtract(t *testing.T) {
	calc := New()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive result", 10, 4, 6},
		{"negative result", 3, 5, -2},
		{"zero result", 5, 5, 0},
		{"fractions", 1.5, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Subtract(tt.a, tt.b))
		})
	}
}

func TestCalculator_Multiply(t *testing.T) {
	calc := New()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"positive numbers", 2, 6, 12},
		{"multiply by zero", 5, 0, 0},
		{"negative numbers", -3, -4, 12},
		{"mixed signs", -3, 4, -12},
		{"multiply by one", 7, 1, 7},
		{"fractions", 0.5, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Multiply(tt.a, tt.b))
		})
	}
}

func TestCalculator_Divide(t *testing.T) {
	calc := New()

	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"normal division", 8, 2, 4},
		{"negative dividend", -8, 2, -4},
		{"negative divisor", 8, -2, -4},
		{"both negative", -8, -2, 4},
		{"zero dividend", 0, 5, 0},
		{"non-integral result", 7, 2, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Divide(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_DivideByZero(t *testing.T) {
	tests := []struct {
		name    string
		calc    *Calculator
		a, b    float64
		wantMsg string
	}{
		{"default message", New(), 5, 0, DefaultDivisionByZeroMessage},
		{"zero dividend", New(), 0, 0, DefaultDivisionByZeroMessage},
		{"negative zero divisor", New(), 1, math.Copysign(0, -1), DefaultDivisionByZeroMessage},
		{"custom message", New(WithDivisionByZeroMessage("nope")), 5, 0, "nope"},
		{"zero value calculator", &Calculator{}, 5, 0, DefaultDivisionByZeroMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.calc.Divide(tt.a, tt.b)
			require.Error(t, err)
			assert.Zero(t, got)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, ErrDivisionByZero)

			var invalid *InvalidOperationError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, OpDivide, invalid.Op)
		})
	}
}

func TestCalculator_Properties(t *testing.T) {
	calc := New()
	values := []float64{-7.5, -1, 0, 1, 2, 3.25, 1e9}

	for _, a := range values {
		assert.Equal(t, a, calc.Multiply(a, 1), "multiply(%v, 1)", a)
		assert.Equal(t, a, calc.Subtract(a, 0), "subtract(%v, 0)", a)

		_, err := calc.Divide(a, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero)

		for _, b := range values {
			assert.Equal(t, calc.Add(a, b), calc.Add(b, a), "add(%v, %v)", a, b)
			assert.Equal(t, a+b, calc.Add(a, b))
			assert.Equal(t, a-b, calc.Subtract(a, b))
			assert.Equal(t, a*b, calc.Multiply(a, b))

			if b != 0 {
				got, err := calc.Divide(a, b)
				require.NoError(t, err)
				assert.Equal(t, a/b, got)
			}
		}
	}
}

func TestCalculator_Idempotent(t *testing.T) {
	calc := New()

	for _, op := range Operations() {
		t.Run(op.String(), func(t *testing.T) {
			first := calc.Evaluate(op, 9, 3)
			second := calc.Evaluate(op, 9, 3)
			assert.Equal(t, first, second)
		})
	}

	_, err1 := calc.Divide(5, 0)
	_, err2 := calc.Divide(5, 0)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestCalculator_Evaluate(t *testing.T) {
	calc := New()

	tests := []struct {
		name    string
		op      Operation
		a, b    float64
		want    float64
		wantErr error
	}{
		{"add", OpAdd, 5, 3, 8, nil},
		{"subtract", OpSubtract, 10, 4, 6, nil},
		{"multiply", OpMultiply, 2, 6, 12, nil},
		{"divide", OpDivide, 8, 2, 4, nil},
		{"divide by zero", OpDivide, 5, 0, 0, ErrDivisionByZero},
		{"unknown operation", Operation(42), 1, 1, 0, ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calc.Evaluate(tt.op, tt.a, tt.b)
			assert.Equal(t, tt.op, r.Op)
			assert.Equal(t, tt.a, r.A)
			assert.Equal(t, tt.b, r.B)

			if tt.wantErr != nil {
				assert.False(t, r.Ok())
				assert.ErrorIs(t, r.Err, tt.wantErr)

				return
			}

			assert.True(t, r.Ok())
			assert.Equal(t, tt.want, r.Value)
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{4, "4"},
		{-12, "-12"},
		{3.5, "3.5"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e6, "1000000"},
		{1234568, "1234568"},
		{-2.5e7, "-25000000"},
		{1e-4, "0.0001"},
		{1e-5, "1e-05"},
		{1e21, "1e+21"},
		{0, "0"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestCalculator_NonFiniteOperands(t *testing.T) {
	calc := New()
	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name    string
		op      Operation
		a, b    float64
		wantInf int
		wantNaN bool
	}{
		{"add inf", OpAdd, inf, 1, 1, false},
		{"subtract inf from inf", OpSubtract, inf, inf, 0, true},
		{"multiply inf by negative", OpMultiply, inf, -2, -1, false},
		{"multiply inf by zero", OpMultiply, inf, 0, 0, true},
		{"divide nan", OpDivide, nan, 2, 0, true},
		{"divide by nan", OpDivide, 1, nan, 0, true},
		{"divide inf", OpDivide, inf, 4, 1, false},
		{"divide by inf", OpDivide, 1, inf, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calc.Evaluate(tt.op, tt.a, tt.b)
			require.NoError(t, r.Err)

			switch {
			case tt.wantNaN:
				assert.True(t, math.IsNaN(r.Value), "got %v", r.Value)
			case tt.wantInf != 0:
				assert.True(t, math.IsInf(r.Value, tt.wantInf), "got %v", r.Value)
			default:
				assert.Zero(t, r.Value)
			}
		})
	}
}
