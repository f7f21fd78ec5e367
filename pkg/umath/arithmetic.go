package umath

import (
	"math"
)

// Add returns a + b
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b. It fails with ErrDivisionByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power raises base to exponent. A negative base with a fractional exponent
// yields NaN.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Logarithm returns the logarithm of value in the given base.
//
// Value must be positive and base must be greater than 1. Bases in (0, 1)
// are rejected as well.
func Logarithm(value, base float64) (float64, error) {
	if value <= 0 || base <= 1 {
		return 0, invalidArgument("invalid value or base for logarithm")
	}
	return math.Log(value) / math.Log(base), nil
}
