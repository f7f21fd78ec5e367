package umath

// Combination returns n choose k, n! / (k!(n-k)!).
//
// Results are exact only while n! fits the float64 mantissa (n ≤ 18).
func Combination(n, k int) (float64, error) {
	if k > n || n < 0 || k < 0 {
		return 0, invalidArgument("invalid values for combination")
	}
	return factorialRatio(n, k, true)
}

// Permutation returns the number of ordered selections, n! / (n-k)!.
func Permutation(n, k int) (float64, error) {
	if k > n || n < 0 || k < 0 {
		return 0, invalidArgument("invalid values for permutation")
	}
	return factorialRatio(n, k, false)
}

func factorialRatio(n, k int, unordered bool) (float64, error) {
	num, err := factorial(n)
	if err != nil {
		return 0, err
	}
	rest, err := factorial(n - k)
	if err != nil {
		return 0, err
	}
	if !unordered {
		return num / rest, nil
	}
	kf, err := factorial(k)
	if err != nil {
		return 0, err
	}
	return num / (kf * rest), nil
}

// factorial computes n! in floating point to tolerate large intermediates
func factorial(n int) (float64, error) {
	if n < 0 {
		return 0, invalidArgument("factorial not defined for negative numbers")
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}
