// Package umath is a catalog of closed-form numeric formulas.
//
// The catalog is organized by topic:
//   - arithmetic: add, subtract, multiply, divide, power, logarithm
//   - algebra: real roots of a·x² + b·x + c = 0
//   - geometry: circles, semicircles, quadrilaterals, regular polygons
//   - trig: sine, cosine and tangent of angles given in degrees
//   - combinatorics: combinations and permutations
//   - calculus: central-difference derivative, left-endpoint Riemann integral
//   - statistics: mean, population variance, standard deviation, median, mode
//   - number theory: GCD and LCM
//
// Every function is pure and safe for concurrent use. Functions with a
// precondition return an error wrapping ErrInvalidArgument or
// ErrDivisionByZero; use errors.Is to tell them apart.
//
// Example Usage:
//
//	area := umath.AreaOfSemicircle(4)
//	angle, err := umath.InteriorAngleOfPolygon(6)
//	if errors.Is(err, umath.ErrInvalidArgument) {
//	    // handle bad input
//	}
package umath
