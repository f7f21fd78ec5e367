package umath

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. The result is never negative and GCD(0, 0) is 0.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return abs(a)
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a*b) / GCD(a, b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
