package umath

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

const (
	// DefaultDerivativeStep is the step h used by Derivative
	DefaultDerivativeStep = 1e-6

	// DefaultIntegrationSteps is the subdivision count used by Integrate
	DefaultIntegrationSteps = 1000
)

// Func is a unary real function. The catalog only calls it for the
// duration of a single operation and never retains it.
type Func func(float64) float64

// Derivative estimates f'(x) with DefaultDerivativeStep.
func Derivative(f Func, x float64) float64 {
	return DerivativeStep(f, x, DefaultDerivativeStep)
}

// DerivativeStep estimates f'(x) with the central difference
//
//	(f(x+h) - f(x-h)) / 2h
//
// A zero h selects DefaultDerivativeStep. The sign of h does not change the
// estimate. Accuracy depends entirely on h; there is no adaptive stepping.
func DerivativeStep(f Func, x, h float64) float64 {
	if h == 0 {
		h = DefaultDerivativeStep
	}
	return fd.Derivative(f, x, &fd.Settings{
		Formula: fd.Central,
		Step:    math.Abs(h),
	})
}

// Integrate approximates the integral of f over [a, b] with
// DefaultIntegrationSteps subdivisions.
func Integrate(f Func, a, b float64) (float64, error) {
	return IntegrateSteps(f, a, b, DefaultIntegrationSteps)
}

// IntegrateSteps approximates the integral of f over [a, b] with a
// left-endpoint Riemann sum over n equal subdivisions.
func IntegrateSteps(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, invalidArgument("number of subdivisions must be positive, got %d", n)
	}

	step := (b - a) / float64(n)
	area := 0.0
	for i := 0; i < n; i++ {
		area += f(a+float64(i)*step) * step
	}
	return area, nil
}
