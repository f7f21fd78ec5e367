package umath

import (
	"math"
)

// QuadraticRoot1 returns the root (-b + √D) / 2a of a·x² + b·x + c = 0.
func QuadraticRoot1(a, b, c float64) (float64, error) {
	d, err := discriminant(a, b, c)
	if err != nil {
		return 0, err
	}
	return (-b + math.Sqrt(d)) / (2 * a), nil
}

// QuadraticRoot2 returns the root (-b - √D) / 2a of a·x² + b·x + c = 0.
func QuadraticRoot2(a, b, c float64) (float64, error) {
	d, err := discriminant(a, b, c)
	if err != nil {
		return 0, err
	}
	return (-b - math.Sqrt(d)) / (2 * a), nil
}

// discriminant rejects linear equations and complex roots.
func discriminant(a, b, c float64) (float64, error) {
	if a == 0 {
		return 0, invalidArgument("leading coefficient must be non-zero")
	}
	d := b*b - 4*a*c
	if d < 0 {
		return 0, invalidArgument("no real roots")
	}
	return d, nil
}
