package umath

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, summed left to right.
func Mean(values []float64) (float64, error) {
	if err := requireSamples(values); err != nil {
		return 0, err
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Variance returns the population variance Σ(xᵢ-mean)²/n.
func Variance(values []float64) (float64, error) {
	mu, err := Mean(values)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, v := range values {
		sum += (v - mu) * (v - mu)
	}
	return sum / float64(len(values)), nil
}

// StandardDeviation returns the square root of the population variance
func StandardDeviation(values []float64) (float64, error) {
	variance, err := Variance(values)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Median returns the middle value of values, averaging the two central
// elements when the length is even. values is not modified.
func Median(values []float64) (float64, error) {
	if err := requireSamples(values); err != nil {
		return 0, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	size := len(sorted)
	if size%2 == 0 {
		return (sorted[size/2-1] + sorted[size/2]) / 2.0, nil
	}
	return sorted[size/2], nil
}

// Mode returns the most frequent value, grouping by exact float equality.
// On ties the value that occurs first in values wins.
func Mode(values []float64) (float64, error) {
	if err := requireSamples(values); err != nil {
		return 0, err
	}

	frequency := make(map[float64]int, len(values))
	for _, v := range values {
		frequency[v]++
	}

	mode := values[0]
	maxCount := 0
	for _, v := range values {
		if count := frequency[v]; count > maxCount {
			maxCount = count
			mode = v
		}
	}
	return mode, nil
}

func requireSamples(values []float64) error {
	if len(values) == 0 {
		return invalidArgument("size must be positive")
	}
	return nil
}
